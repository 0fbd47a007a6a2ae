package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/DropLuck_Go/internal/logger"
	"github.com/osse101/DropLuck_Go/internal/simulation"
	"github.com/osse101/DropLuck_Go/internal/validation"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	Environment string
	ServiceName string `validate:"required"`
	Version     string

	Workers            int           `validate:"min=1"`
	Cycles             int64         `validate:"min=1"`
	PValue             float64       `validate:"gt=0,lte=1"`
	Seed               int64         // zero picks a time-based seed
	CheckpointInterval time.Duration `validate:"gt=0"`
	PollInterval       time.Duration `validate:"gt=0"`
	GoalsFile          string
	OutputDir          string

	HTTPPort int `validate:"min=0,max=65535"`

	StoreDriver string `validate:"oneof=none sqlite postgres"`
	SQLitePath  string `validate:"required_if=StoreDriver sqlite"`
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, logger.DefaultServiceName),
		Version:     getEnv(EnvVersion, ""),
		GoalsFile:   getEnv(EnvGoalsFile, ""),
		OutputDir:   getEnv(EnvOutputDir, DefaultOutputDir),
		StoreDriver: getEnv(EnvStoreDriver, DefaultStoreDriver),
		SQLitePath:  getEnv(EnvSQLitePath, DefaultSQLitePath),
		DBUser:      getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:  getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:      getEnv(EnvDBHost, DefaultDBHost),
		DBPort:      getEnv(EnvDBPort, DefaultDBPort),
		DBName:      getEnv(EnvDBName, DefaultDBName),
	}

	var err error
	if cfg.Workers, err = parseInt(EnvWorkers, runtime.NumCPU()); err != nil {
		return nil, err
	}
	if cfg.HTTPPort, err = parseInt(EnvHTTPPort, DefaultHTTPPort); err != nil {
		return nil, err
	}
	if cfg.Cycles, err = parseInt64(EnvCycles, DefaultCycles); err != nil {
		return nil, err
	}
	if cfg.Seed, err = parseInt64(EnvSeed, 0); err != nil {
		return nil, err
	}
	if cfg.PValue, err = parseFloat(EnvPValue, DefaultPValue); err != nil {
		return nil, err
	}
	if cfg.CheckpointInterval, err = parseDuration(EnvCheckpointInterval, DefaultCheckpointInterval); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = parseDuration(EnvPollInterval, DefaultPollInterval); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoggerConfig maps the logging fields onto a logger.Config.
func (c *Config) LoggerConfig() logger.Config {
	cfg := logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, false)
	cfg.LogDir = c.LogDir
	return cfg
}

// SimulationOptions maps the coordinator fields onto simulation options.
// A zero seed keeps the clock-based default.
func (c *Config) SimulationOptions() []simulation.Option {
	opts := []simulation.Option{
		simulation.WithWorkers(c.Workers),
		simulation.WithCheckpointInterval(c.CheckpointInterval),
		simulation.WithPollInterval(c.PollInterval),
	}
	if c.Seed != 0 {
		opts = append(opts, simulation.WithSeed(c.Seed))
	}
	return opts
}

// LoadGoals reads the configured goals file.
func (c *Config) LoadGoals() (simulation.Goals, error) {
	return simulation.LoadGoals(c.GoalsFile)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseInt(key string, def int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func parseInt64(key string, def int64) (int64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func parseFloat(key string, def float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}
