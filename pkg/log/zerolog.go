package log

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// ZerologProvider hands out zerolog-backed loggers sharing one writer and one
// level. Changing the level affects every logger the provider has returned.
type ZerologProvider struct {
	base  zerolog.Logger
	level atomic.Int32
}

// NewZerologProvider creates a provider writing JSON lines to w.
func NewZerologProvider(w io.Writer, level Level) *ZerologProvider {
	p := &ZerologProvider{
		base: zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
	p.level.Store(int32(level))
	return p
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	return &zerologLogger{zl: p.base, provider: p}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return &zerologLogger{
		zl:       p.base.With().Str(ComponentKey, name).Logger(),
		provider: p,
	}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologProvider) SetLevel(level Level) {
	p.level.Store(int32(level))
}

// Level returns the current minimum level.
func (p *ZerologProvider) Level() Level {
	return Level(p.level.Load())
}

type zerologLogger struct {
	zl       zerolog.Logger
	provider *ZerologProvider
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	l.emit(LevelDebug, msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	l.emit(LevelInfo, msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	l.emit(LevelWarn, msg, fields)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	l.emit(LevelError, msg, fields)
}

func (l *zerologLogger) With(fields ...any) Logger {
	return &zerologLogger{
		zl:       l.zl.With().Fields(fields).Logger(),
		provider: l.provider,
	}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return level >= l.provider.Level()
}

func (l *zerologLogger) emit(level Level, msg string, fields []any) {
	if level < l.provider.Level() {
		return
	}
	e := l.zl.WithLevel(toZerologLevel(level))
	if e == nil {
		return
	}
	appendFields(e, fields)
	e.Msg(msg)
}
