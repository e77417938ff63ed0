// Package zlog bootstraps the global zerolog logger for pdfClown tools.
//
// It wires zerolog to a console writer when running interactively and to a
// size-rotated log file (via lumberjack) when requested, and offers runtime
// level control. Library packages do not use zlog directly; they log through
// the logging package, which an application typically points at the logger
// configured here:
//
//	zlog.Logger().
//		WithConsole().
//		WithLogFile().
//		Init("pdfclown", zerolog.InfoLevel)
//	logging.SetGlobalAdapter(logging.NewZerologAdapter())
package zlog

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfclown/go-common/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger state is a process-wide singleton, like the global zerolog logger
// it configures.
type logger struct {
	level   zerolog.Level
	file    *lumberjack.Logger
	outputs []io.Writer
}

var instance = &logger{}

// detector overrides interactive-mode detection, mainly for tests.
var detector func() bool

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

// Logger returns the singleton logger configuration.
func Logger() *logger {
	return instance
}

// Interactive reports whether stdout is attached to a terminal.
func Interactive() bool {
	if detector != nil {
		return detector()
	}
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// SetModeDetector installs a custom interactive-mode detector.
func SetModeDetector(d func() bool) {
	detector = d
}

// Init applies the configured outputs to the global zerolog logger and sets
// the global level. The log file, if any, is placed under flag.Path; a ".log"
// suffix is appended to logname when missing.
func (l *logger) Init(logname string, level zerolog.Level) {
	if !strings.HasSuffix(logname, ".log") {
		logname += ".log"
	}
	if l.file != nil {
		l.file.Filename = filepath.Join(flag.Path, logname)
	}

	zerolog.SetGlobalLevel(level)
	l.level = level

	if len(l.outputs) == 0 && Interactive() {
		l.outputs = append(l.outputs, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	log.Logger = log.Output(newMultiWriter(l.outputs...))
}

// WithConsole adds a human-readable console writer when running interactively.
func (l *logger) WithConsole() *logger {
	if Interactive() {
		l.outputs = append(l.outputs, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return l
}

// WithLogFile adds a rotated log file output. Rotation keeps at most 10
// compressed backups of 10 MB each for 28 days.
func (l *logger) WithLogFile() *logger {
	l.file = &lumberjack.Logger{
		MaxSize:    10,
		MaxAge:     28,
		MaxBackups: 10,
		Compress:   true,
	}
	l.outputs = append(l.outputs, l.file)
	return l
}

// With adds custom writers to the logger outputs.
func (l *logger) With(writers ...io.Writer) *logger {
	l.outputs = append(l.outputs, writers...)
	return l
}

// SetLevel changes the global log level at runtime.
func (l *logger) SetLevel(level zerolog.Level) *logger {
	l.level = level
	zerolog.SetGlobalLevel(level)
	return l
}

// GetLevel returns the current global log level.
func (l *logger) GetLevel() zerolog.Level {
	return l.level
}

// Outputs returns the writers the logger currently fans out to.
func (l *logger) Outputs() []io.Writer {
	return l.outputs
}

// File returns the rotated log file configuration, or nil when file output
// was not enabled.
func (l *logger) File() *lumberjack.Logger {
	return l.file
}

// Rotate rotates the log file immediately.
func (l *logger) Rotate() {
	if l.file == nil {
		return
	}
	if err := l.file.Rotate(); err != nil {
		log.Error().Err(err).Msg("failed to rotate log file")
	}
}

// Stop closes the log file. It should be called on shutdown so buffered
// entries reach disk.
func (l *logger) Stop() {
	if l.file == nil {
		return
	}
	if err := l.file.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close log file")
	}
}

// multiWriter fans writes out to all writers and keeps going when one fails,
// unlike io.MultiWriter which stops at the first error.
type multiWriter struct {
	writers []io.Writer
}

func newMultiWriter(writers ...io.Writer) *multiWriter {
	return &multiWriter{writers: writers}
}

func (mw *multiWriter) Write(p []byte) (int, error) {
	var lastErr error
	for _, w := range mw.writers {
		if _, err := w.Write(p); err != nil {
			lastErr = err
		}
	}
	return len(p), lastErr
}
