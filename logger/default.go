package logger

import (
	"os"
	"sync"

	"github.com/dnlrv/scriptlog/core"
	"github.com/dnlrv/scriptlog/formatter"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Until Init installs a configured logger, the default has no
	// sinks and echoes every line to stderr.
	defaultLogger = &Logger{
		formatter: formatter.NewRFC3164Formatter(formatter.Config{}),
		threshold: DebugLevel,
		facility:  core.DefaultFacility,
		echo:      os.Stderr,
	}
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Init builds a Logger from cfg and installs it as the default
func Init(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	SetDefault(l)
	return nil
}

// Package-level convenience functions using the default logger

// Write logs a message using the default logger
func Write(msg string, opts ...Option) error {
	return Default().write(msg, opts)
}

// Emerg logs a message at Emergency severity using the default logger
func Emerg(msg string, opts ...Option) error {
	return Default().write(msg, withDefaults(EmergencyLevel, core.EntryError, opts))
}

// Alert logs a message at Alert severity using the default logger
func Alert(msg string, opts ...Option) error {
	return Default().write(msg, withDefaults(AlertLevel, core.EntryError, opts))
}

// Crit logs a message at Critical severity using the default logger
func Crit(msg string, opts ...Option) error {
	return Default().write(msg, withDefaults(CriticalLevel, core.EntryError, opts))
}

// Err logs a message at Error severity using the default logger
func Err(msg string, opts ...Option) error {
	return Default().write(msg, withDefaults(ErrorLevel, core.EntryError, opts))
}

// Warning logs a message at Warning severity using the default logger
func Warning(msg string, opts ...Option) error {
	return Default().write(msg, withDefaults(WarningLevel, core.EntryWarning, opts))
}

// Notice logs a message at Notice severity using the default logger
func Notice(msg string, opts ...Option) error {
	return Default().write(msg, withDefaults(NoticeLevel, core.EntryInformation, opts))
}

// Info logs a message at Informational severity using the default logger
func Info(msg string, opts ...Option) error {
	return Default().write(msg, withDefaults(InformationalLevel, core.EntryInformation, opts))
}

// Debug logs a message at Debug severity using the default logger
func Debug(msg string, opts ...Option) error {
	return Default().write(msg, withDefaults(DebugLevel, core.EntryInformation, opts))
}

// Close closes the default logger's sinks
func Close() error {
	return Default().Close()
}
