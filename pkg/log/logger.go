package log

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	lgbmerrors "github.com/Willdata/LightGBM/pkg/errors"
)

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = NewZerologProvider(os.Stderr, LevelInfo)
)

func init() {
	lgbmerrors.SetZerologWarnFunc(func(w error) {
		GetLoggerWithName("warnings").Warn(w.Error(), "warning", w)
	})
}

// SetupLogger configures the default provider from a textual level
// ("debug", "info", "warn", "error") and writes JSON lines to stdout.
func SetupLogger(loglevel string) error {
	level, err := ToLogLevel(loglevel)
	if err != nil {
		return err
	}
	SetProvider(NewZerologProvider(os.Stdout, level))
	return nil
}

// ToLogLevel parses a textual level.
func ToLogLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, lgbmerrors.NewConfigurationError("log_level", "must be one of debug, info, warn, error", level)
	}
}

// SetProvider replaces the default provider. Loggers obtained earlier keep
// writing through the provider they came from.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultProvider = p
}

// SetOutput points the default provider at w, keeping its level.
func SetOutput(w io.Writer) {
	providerMu.Lock()
	defer providerMu.Unlock()
	level := LevelInfo
	if zp, ok := defaultProvider.(*ZerologProvider); ok {
		level = zp.Level()
	}
	defaultProvider = NewZerologProvider(w, level)
}

// SetLevel sets the minimum level of the default provider.
func SetLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	defaultProvider.SetLevel(level)
}

// GetLogger returns a logger from the default provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a logger tagged with the given component name.
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}

func toZerologLevel(l Level) zerolog.Level {
	switch {
	case l <= LevelDebug:
		return zerolog.DebugLevel
	case l <= LevelInfo:
		return zerolog.InfoLevel
	case l <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

