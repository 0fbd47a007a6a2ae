package config

import "time"

// Environment variable names
const (
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvLogDir             = "LOG_DIR"
	EnvEnvironment        = "ENVIRONMENT"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
	EnvWorkers            = "WORKERS"
	EnvCycles             = "CYCLES"
	EnvPValue             = "P_VALUE"
	EnvSeed               = "SEED"
	EnvCheckpointInterval = "CHECKPOINT_INTERVAL"
	EnvPollInterval       = "POLL_INTERVAL"
	EnvGoalsFile          = "GOALS_FILE"
	EnvOutputDir          = "OUTPUT_DIR"
	EnvHTTPPort           = "HTTP_PORT"
	EnvStoreDriver        = "STORE_DRIVER"
	EnvSQLitePath         = "SQLITE_PATH"
	EnvDBUser             = "DB_USER"
	EnvDBPassword         = "DB_PASSWORD"
	EnvDBHost             = "DB_HOST"
	EnvDBPort             = "DB_PORT"
	EnvDBName             = "DB_NAME"
)

// Store drivers
const (
	StoreNone     = "none"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Defaults
const (
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultLogDir             = "logs"
	DefaultEnvironment        = "dev"
	DefaultCycles             = 1_000_000
	DefaultPValue             = 5.902209912719003e-21
	DefaultCheckpointInterval = 2 * time.Second
	DefaultPollInterval       = 5 * time.Second
	DefaultOutputDir          = "data"
	DefaultHTTPPort           = 0
	DefaultStoreDriver        = StoreNone
	DefaultSQLitePath         = "data/dropluck.db"
	DefaultDBUser             = "postgres"
	DefaultDBPassword         = "postgres"
	DefaultDBHost             = "localhost"
	DefaultDBPort             = "5432"
	DefaultDBName             = "dropluck"
)
