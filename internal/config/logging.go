package config

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecotracks/ecotracks/internal/logging"
)

// Logger is used by the config package before the CLI has set up logging.
//
//nolint:gochecknoglobals // Logger is intentionally global for early startup logging
var Logger zerolog.Logger

//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger resets the package Logger to a console logger at level.
// Unparseable levels default to info.
func InitLogger(level string) {
	logMu.Lock()
	defer logMu.Unlock()

	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(logging.ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// GetLogger returns the package logger.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

//nolint:gochecknoinits // The package logs while loading config, before the CLI configures logging.
func init() {
	InitLogger("warn")
}

// ToLoggingConfig converts LoggingConfig to logging.Config.
//
// The conversion applies these rules:
//   - Level, Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global config's Logging section.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
