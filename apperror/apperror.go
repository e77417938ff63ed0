// Package apperror provides an application error type that carries a
// lightweight call trace and optional nested errors.
//
// In normal operation an Error renders only its message. When debug mode is
// enabled (flag.Debug), the rendered form includes the recorded trace and any
// nested errors, which keeps production logs terse while preserving context
// for diagnosis.
//
// Usage:
//
//	err := apperror.NewError("reading configuration file failed").AddError(ioErr)
//	err = apperror.Wrap(err) // records another trace point
package apperror

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pdfclown/go-common/flag"
)

// TraceDelimiter separates trace entries in the rendered error.
var TraceDelimiter = " -> "

// ErrorDelimiter separates nested errors in the rendered error.
var ErrorDelimiter = " => "

// Error is an application error with a call trace and nested errors.
// It implements the error interface and supports errors.Is and errors.As
// through Is and Unwrap.
type Error struct {
	Message string
	Trace   []string
	Errors  []error
}

// NewError creates a new Error with the given message and records the caller.
// To annotate an existing Error, use Wrap instead so the trace accumulates.
func NewError(msg string) Error {
	e := Error{Message: msg}
	e.Trace = trace(e.Trace)
	return e
}

// NewErrorf creates a new Error with a formatted message and records the caller.
func NewErrorf(format string, a ...interface{}) Error {
	e := Error{Message: fmt.Sprintf(format, a...)}
	e.Trace = trace(e.Trace)
	return e
}

// Wrap records a new trace point on err. A non-Error value is converted,
// preserving its message; nil stays nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Trace = trace(e.Trace)
		return e
	}
	e := Error{Message: err.Error()}
	e.Trace = trace(e.Trace)
	return e
}

// AddError attaches a nested error for context and returns the updated Error.
func (e Error) AddError(err error) Error {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
	return e
}

// Is reports message equality with the target, so sentinel-style comparisons
// with errors.Is work for Error values.
func (e Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(Error); ok {
		return e.Message == t.Message
	}
	return e.Message == target.Error()
}

// Unwrap returns the first nested error, letting errors.As traverse the chain.
func (e Error) Unwrap() error {
	if len(e.Errors) > 0 {
		return e.Errors[0]
	}
	return nil
}

// Error renders the message, prefixed by the trace in debug mode and suffixed
// by nested errors when present.
func (e Error) Error() string {
	msg := e.Message
	if nested := e.nested(); nested != "" {
		msg = fmt.Sprintf("%s [%s]", msg, nested)
	}

	if flag.Debug && len(e.Trace) > 0 {
		entries := make([]string, len(e.Trace))
		for i, entry := range e.Trace {
			entries[len(e.Trace)-1-i] = entry
		}
		return strings.Join(entries, TraceDelimiter) + " | " + msg
	}
	return msg
}

func (e Error) nested() string {
	var sb strings.Builder
	for _, err := range e.Errors {
		if err == nil {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(ErrorDelimiter)
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// trace appends the caller two frames up to the given trace.
func trace(entries []string) []string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return entries
	}
	return append(entries, fmt.Sprintf("%s:%d", file, line))
}
