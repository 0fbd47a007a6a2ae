package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger installs the process-wide slog default for cfg, writing to stdout
// and, when cfg.LogDir is set, to a rotated log file.
func InitLogger(cfg Config) {
	var out io.Writer = os.Stdout
	slog.SetDefault(New(cfg, out))
}

// InitLoggerWithWriter is InitLogger with an explicit console writer.
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	slog.SetDefault(New(cfg, w))
}

// New builds a logger without touching the global default.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	handlers := []slog.Handler{newHandler(cfg, w, opts)}
	if path := cfg.FilePath(); path != "" {
		file := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    DefaultFileMaxSizeMB,
			MaxBackups: DefaultFileMaxBackups,
			MaxAge:     DefaultFileMaxAgeDays,
		}
		handlers = append(handlers, newHandler(cfg, file, opts))
	}

	var h slog.Handler = handlers[0]
	if len(handlers) > 1 {
		h = newMultiHandler(handlers...)
	}
	return slog.New(h.WithAttrs(cfg.BaseAttributes()))
}

func newHandler(cfg Config, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if cfg.IsJSON() {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Debug logs at debug level on the default logger.
func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }

// Info logs at info level on the default logger.
func Info(msg string, args ...any) { slog.Default().Info(msg, args...) }

// Warn logs at warn level on the default logger.
func Warn(msg string, args ...any) { slog.Default().Warn(msg, args...) }

// Error logs at error level on the default logger.
func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }

// multiHandler fans records out to every enabled handler.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}
