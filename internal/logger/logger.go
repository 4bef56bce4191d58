// Package logger wraps zerolog with the small API the rest of the app uses.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is a leveled structured logger. Derived loggers share the level of
// their parent, so SetLevel applies to all of them.
type Logger struct {
	base  zerolog.Logger
	level *atomic.Int32
}

// ParseLevel accepts zerolog level names in any case. Empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(level))
}

// New creates a configured Logger.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	output := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	l := &Logger{
		base:  zerolog.New(output).Level(zerolog.TraceLevel).With().Timestamp().Logger(),
		level: new(atomic.Int32),
	}
	l.level.Store(int32(level))
	return l, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	l := &Logger{base: zerolog.Nop(), level: new(atomic.Int32)}
	l.level.Store(int32(zerolog.Disabled))
	return l
}

// SetLevel changes the minimum level at runtime.
func (l *Logger) SetLevel(level string) error {
	if l == nil {
		return nil
	}
	parsed, err := ParseLevel(level)
	if err != nil {
		return err
	}
	l.level.Store(int32(parsed))
	return nil
}

// Level reports the current minimum level.
func (l *Logger) Level() zerolog.Level {
	if l == nil {
		return zerolog.Disabled
	}
	return zerolog.Level(l.level.Load())
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{base: builder.Logger(), level: l.level}
}

// With is WithFields for a single field.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

func (l *Logger) event(level zerolog.Level) *zerolog.Event {
	if l == nil || level < l.Level() {
		return nil
	}
	return l.base.WithLevel(level)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if e := l.event(zerolog.InfoLevel); e != nil {
		e.Msg(msg)
	}
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if e := l.event(zerolog.DebugLevel); e != nil {
		e.Msg(msg)
	}
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if e := l.event(zerolog.WarnLevel); e != nil {
		e.Msg(msg)
	}
}

// Error writes an error log entry including the supplied error.
func (l *Logger) Error(err error, msg string) {
	e := l.event(zerolog.ErrorLevel)
	if e == nil {
		return
	}
	if err != nil {
		e = e.Err(err)
	}
	e.Msg(msg)
}
