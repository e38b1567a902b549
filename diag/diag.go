// Package diag owns the process logger. A Diagnostics value is created
// once in main and handed to the collaborators that log.
package diag

import (
	"fmt"
	"os"

	"github.com/milk9111/platformer/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig holds file logging configuration.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns default file logging settings.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Config selects the level and outputs.
type Config struct {
	Level   string
	Console bool
	File    FileConfig
}

// FromConfig maps the runtime config onto logger settings.
func FromConfig(cfg *config.Config) Config {
	c := Config{Level: "info", Console: true}
	if cfg == nil {
		return c
	}
	c.Level = cfg.Logging.Level
	if cfg.Logging.LogFile != "" {
		c.File = DefaultFileConfig(cfg.Logging.LogFile)
	}
	return c
}

// Diagnostics bundles the logger with the sinks it must flush on exit.
type Diagnostics struct {
	log  *zap.Logger
	file *lumberjack.Logger
}

// New builds a console core and, when a path is configured, a rotated file
// core.
func New(cfg Config) (*Diagnostics, error) {
	lvl, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core

	if cfg.Console {
		consoleEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			CallerKey:        "caller",
			EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
			EncodeLevel:      zapcore.CapitalColorLevelEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), lvl))
	}

	d := &Diagnostics{}
	if cfg.File.Path != "" {
		d.file = &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
			LocalTime:  true,
		}

		fileEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			CallerKey:        "caller",
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(d.file), lvl))
	}

	d.log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return d, nil
}

// NewWithCore wraps an existing core; used by tests and embedders.
func NewWithCore(core zapcore.Core) *Diagnostics {
	return &Diagnostics{log: zap.New(core)}
}

// Logger returns the root logger. A nil Diagnostics yields a no-op logger.
func (d *Diagnostics) Logger() *zap.Logger {
	if d == nil || d.log == nil {
		return zap.NewNop()
	}
	return d.log
}

// Named returns a child logger for a subsystem.
func (d *Diagnostics) Named(name string) *zap.Logger {
	return d.Logger().Named(name)
}

// Close flushes buffered entries and closes the log file.
func (d *Diagnostics) Close() error {
	if d == nil || d.log == nil {
		return nil
	}
	// Sync on a terminal stdout reports EINVAL on some platforms.
	_ = d.log.Sync()
	if d.file != nil {
		if err := d.file.Close(); err != nil {
			return fmt.Errorf("diag: close log file: %w", err)
		}
	}
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("diag: level %q: %w", level, err)
	}
	return lvl, nil
}
