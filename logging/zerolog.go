package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// zerologEvent wraps zerolog.Event to implement Event.
type zerologEvent struct {
	event *zerolog.Event
}

func (e *zerologEvent) Field(key string, value interface{}) Event {
	e.event = e.event.Interface(key, value)
	return e
}

func (e *zerologEvent) Fields(fields ...Field) Event {
	for _, field := range fields {
		e.event = e.event.Interface(field.Key, field.Value)
	}
	return e
}

func (e *zerologEvent) Err(err error) Event {
	e.event = e.event.Err(err)
	return e
}

func (e *zerologEvent) Msg(msg string) {
	e.event.Msg(msg)
}

func (e *zerologEvent) Msgf(format string, v ...interface{}) {
	e.event.Msgf(format, v...)
}

// ZerologAdapter implements Adapter on top of zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
	level  Level
}

// NewZerologAdapter creates an adapter backed by the global zerolog logger.
func NewZerologAdapter() Adapter {
	return &ZerologAdapter{logger: log.Logger, level: InfoLevel}
}

// NewZerologAdapterWithLogger creates an adapter backed by a custom logger.
func NewZerologAdapterWithLogger(logger zerolog.Logger) Adapter {
	return &ZerologAdapter{logger: logger, level: InfoLevel}
}

// SetLevel sets the minimum emitted level.
func (z *ZerologAdapter) SetLevel(level Level) Adapter {
	z.level = level
	z.logger = z.logger.Level(convertLevel(level))
	return z
}

// GetLevel returns the current minimum level.
func (z *ZerologAdapter) GetLevel() Level {
	return z.level
}

// Trace returns a trace level event.
func (z *ZerologAdapter) Trace() Event { return &zerologEvent{event: z.logger.Trace()} }

// Debug returns a debug level event.
func (z *ZerologAdapter) Debug() Event { return &zerologEvent{event: z.logger.Debug()} }

// Info returns an info level event.
func (z *ZerologAdapter) Info() Event { return &zerologEvent{event: z.logger.Info()} }

// Warn returns a warn level event.
func (z *ZerologAdapter) Warn() Event { return &zerologEvent{event: z.logger.Warn()} }

// Error returns an error level event.
func (z *ZerologAdapter) Error() Event { return &zerologEvent{event: z.logger.Error()} }

// WithPackage returns a derived adapter whose events carry a package field.
func (z *ZerologAdapter) WithPackage(pkg string) Adapter {
	return &ZerologAdapter{
		logger: z.logger.With().Str("package", pkg).Logger(),
		level:  z.level,
	}
}

// Enabled reports whether the adapter emits events.
func (z *ZerologAdapter) Enabled() bool {
	return z.level != DisabledLevel
}

func convertLevel(level Level) zerolog.Level {
	switch level {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case DisabledLevel:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
