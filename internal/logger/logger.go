// Package logger wraps a process-wide zerolog logger.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. It writes to stderr until Init is called.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Config controls level, output format and caller reporting
type Config struct {
	Level        string `json:"level" mapstructure:"level"`                 // debug, info, warn, error
	Format       string `json:"format" mapstructure:"format"`               // json or pretty
	TimeFormat   string `json:"time_format" mapstructure:"time_format"`     // defaults to RFC3339
	ReportCaller bool   `json:"report_caller" mapstructure:"report_caller"` // add file:line to every event
}

// Init replaces the process-wide logger according to config.
func Init(config Config) {
	InitWithWriter(config, os.Stderr)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(config Config, out io.Writer) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	output := out
	if config.Format == "pretty" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: config.TimeFormat}
	}

	builder := zerolog.New(output).Level(level).With().Timestamp()
	if config.ReportCaller {
		builder = builder.Caller()
	}

	Logger = builder.Logger()
	log.Logger = Logger
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info-level event.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warn-level event.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error-level event.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Ctx returns the logger stored in ctx, falling back to the process-wide logger.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &Logger
}

// WithContext stores the process-wide logger in ctx.
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}
