package logging

// noopEvent discards everything.
type noopEvent struct{}

func (e noopEvent) Field(string, interface{}) Event { return e }
func (e noopEvent) Fields(...Field) Event           { return e }
func (e noopEvent) Err(error) Event                 { return e }
func (e noopEvent) Msg(string)                      {}
func (e noopEvent) Msgf(string, ...interface{})     {}

// NoOpAdapter discards all events. It is the default backend so that library
// packages stay silent until an application installs a real adapter.
type NoOpAdapter struct {
	level Level
}

// NewNoOpAdapter creates a discarding adapter.
func NewNoOpAdapter() Adapter {
	return &NoOpAdapter{level: DisabledLevel}
}

// SetLevel records the level without effect.
func (n *NoOpAdapter) SetLevel(level Level) Adapter {
	n.level = level
	return n
}

// GetLevel returns the recorded level.
func (n *NoOpAdapter) GetLevel() Level { return n.level }

// Trace returns a discarding event.
func (n *NoOpAdapter) Trace() Event { return noopEvent{} }

// Debug returns a discarding event.
func (n *NoOpAdapter) Debug() Event { return noopEvent{} }

// Info returns a discarding event.
func (n *NoOpAdapter) Info() Event { return noopEvent{} }

// Warn returns a discarding event.
func (n *NoOpAdapter) Warn() Event { return noopEvent{} }

// Error returns a discarding event.
func (n *NoOpAdapter) Error() Event { return noopEvent{} }

// WithPackage returns the adapter unchanged.
func (n *NoOpAdapter) WithPackage(string) Adapter { return n }

// Enabled reports false; nothing is ever emitted.
func (n *NoOpAdapter) Enabled() bool { return false }
