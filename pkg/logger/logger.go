// Package logger provides a structured, levelled logger built on log/slog.
//
// Standard output belongs to the console, so log lines go to stderr, or to a
// size-rotated file when LOG_FILE is configured:
//
//	LOG_FILE=logs/stockroom.log stockroom console
//
// WithCtx returns the logger stored in a context, so every line written
// during a console session carries its session_id:
//
//	log := logger.WithCtx(ctx)
//	log.Info("stock adjusted", "item_number", "1001")
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/shashiranjanraj/stockroom/config"
)

var L *slog.Logger

var (
	mu      sync.Mutex
	rotator *lumberjack.Logger
)

func init() {
	Configure()
}

// Configure rebuilds L from the current configuration and makes it the
// slog default. Call it again after changing LOG_* settings.
func Configure() {
	mu.Lock()
	defer mu.Unlock()

	var out io.Writer = os.Stderr
	if rotator != nil {
		_ = rotator.Close()
		rotator = nil
	}
	if file := config.LogFile(); file != "" {
		rotator = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    16, // megabytes
			MaxBackups: 5,
			MaxAge:     14, // days
		}
		out = rotator
	}

	L = New(out, config.AppEnv(), config.LogLevel())
	slog.SetDefault(L)
}

// New builds a logger writing to w: JSON in production, human-readable text
// otherwise. level ("debug", "info", "warn", "error") overrides the
// environment default when it parses.
func New(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	production := env == "production" || env == "prod"
	if production {
		opts.Level = slog.LevelInfo
	}
	if level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(level)); err == nil {
			opts.Level = l
		}
	}

	if production {
		return slog.New(slog.NewJSONHandler(w, opts)) // structured JSON for log aggregators
	}
	return slog.New(slog.NewTextHandler(w, opts)) // human-readable for dev
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Close releases the log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}

// ─────────────────────────────────────────────
// Context-aware logger
// ─────────────────────────────────────────────

type ctxKey struct{}

// WithCtx returns the logger stored in ctx by InjectLogger, or L.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores log in ctx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
