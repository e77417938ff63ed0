// Package logging decouples the library's packages from a concrete logging
// backend. Packages obtain a logger through GetPackageLogger and emit
// structured events against the Adapter interface; applications decide once,
// at startup, which backend receives them.
//
// A zerolog-backed adapter and a no-op adapter are provided. The no-op
// adapter is the default, so importing library packages never produces output
// unless the application opts in:
//
//	logging.SetGlobalAdapter(logging.NewZerologAdapter())
package logging

// Level represents the severity of a log event.
type Level int

// Severity levels, ordered from most to least verbose.
const (
	TraceLevel Level = iota - 1
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	DisabledLevel
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case DisabledLevel:
		return "disabled"
	default:
		return "unknown"
	}
}

// Field is a structured key-value pair attached to an event.
type Field struct {
	Key   string
	Value interface{}
}

// F constructs a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Event is a single log event under construction.
type Event interface {
	// Field adds a structured key-value pair to the event.
	Field(key string, value interface{}) Event
	// Fields adds multiple structured fields to the event.
	Fields(fields ...Field) Event
	// Err attaches an error to the event.
	Err(err error) Event
	// Msg emits the event with the given message.
	Msg(msg string)
	// Msgf emits the event with a formatted message.
	Msgf(format string, v ...interface{})
}

// Adapter is the backend interface the library logs against.
type Adapter interface {
	SetLevel(level Level) Adapter
	GetLevel() Level

	Trace() Event
	Debug() Event
	Info() Event
	Warn() Event
	Error() Event

	// WithPackage returns a derived adapter tagged with a package name.
	WithPackage(pkg string) Adapter

	// Enabled reports whether the adapter emits anything at all. Callers may
	// use it to skip expensive event construction.
	Enabled() bool
}
