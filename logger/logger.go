package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/handler"
)

// Logger turns log calls into events and hands them to a Handler. A
// Logger is immutable; With returns a new one.
type Logger struct {
	handler       handler.Handler
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	clock         func() time.Time
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	clock         func() time.Time
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		callerSkip: 3, // GetCaller -> log -> public method -> caller
		clock:      time.Now,
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithFields adds default fields to all log events
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables the file, line and function fields
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithClock sets the time source for event timestamps
func (b *Builder) WithClock(clock func() time.Time) *Builder {
	if clock != nil {
		b.clock = clock
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	fields := make([]core.Field, len(b.fields))
	copy(fields, b.fields)
	return &Logger{
		handler:       b.handler,
		fields:        fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		clock:         b.clock,
	}
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		handler:       l.handler,
		fields:        newFields,
		includeCaller: l.includeCaller,
		callerSkip:    l.callerSkip,
		clock:         l.clock,
	}
}

// Log logs a message at the given priority. Arguments of type core.Field
// become event fields; every other argument is appended to the event's
// extra values.
func (l *Logger) Log(p core.Priority, msg string, args ...interface{}) {
	l.log(p, msg, args)
}

// Logf logs a formatted message at the given priority
func (l *Logger) Logf(p core.Priority, format string, args ...interface{}) {
	l.log(p, fmt.Sprintf(format, args...), nil)
}

// log builds the event and dispatches it. It must be called directly from
// the public entry point so that callerSkip lands on the caller.
func (l *Logger) log(p core.Priority, msg string, args []interface{}) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	entry.Time = l.clock()
	entry.Priority = p
	entry.Message = msg

	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	for _, arg := range args {
		if f, ok := arg.(core.Field); ok {
			entry.Fields = append(entry.Fields, f)
			continue
		}
		entry.Extra = append(entry.Extra, core.ValueOf(arg))
	}

	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	event := entry.Event()
	core.PutEntry(entry)

	// A logger has nowhere to report its own write failures.
	_ = l.handler.Handle(event)
}

// Emerg logs a message when the system is unusable
func (l *Logger) Emerg(msg string, args ...interface{}) {
	l.log(core.Emerg, msg, args)
}

// Alert logs a message that needs immediate action
func (l *Logger) Alert(msg string, args ...interface{}) {
	l.log(core.Alert, msg, args)
}

// Crit logs a critical message
func (l *Logger) Crit(msg string, args ...interface{}) {
	l.log(core.Crit, msg, args)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(core.Err, msg, args)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log(core.Warn, msg, args)
}

// Notice logs a normal but significant message
func (l *Logger) Notice(msg string, args ...interface{}) {
	l.log(core.Notice, msg, args)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(core.Info, msg, args)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(core.Debug, msg, args)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
