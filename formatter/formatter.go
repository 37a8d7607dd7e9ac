package formatter

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/philipp01105/simplelog/core"
)

const (
	// DefaultFormat is the template used when none is configured
	DefaultFormat = "%timestamp% %priorityName% (%priority%): %message%"

	// DateTimeISO8601 renders e.g. 2012-08-28T18:15:00+00:00
	DateTimeISO8601 = "2006-01-02T15:04:05-07:00"
	// DateTimeRFC2822 renders e.g. Tue, 28 Aug 2012 18:15:00 +0000
	DateTimeRFC2822 = time.RFC1123Z
	// DateTimeUnix renders seconds since the Unix epoch. It applies to
	// timestamps exposing Unix() int64; others get it as a plain layout.
	DateTimeUnix = "U"

	// DefaultDateTimeFormat is the layout used when none is configured
	DefaultDateTimeFormat = DateTimeISO8601
)

// ErrInvalidArgument is returned when a formatter is configured with a
// value of the wrong type
var ErrInvalidArgument = errors.New("invalid argument")

// Formatter renders an event into a single line of text
type Formatter interface {
	// Format renders the event. It never fails; missing fields leave
	// their placeholders untouched.
	Format(event core.Event) string
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without an intermediate string.
type WriterFormatter interface {
	// FormatTo renders the event and writes it to w
	FormatTo(event core.Event, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry renders the event into the given buffer.
	FormatEntry(event core.Event, buf *bytes.Buffer)
}

// Config holds formatter configuration
type Config struct {
	// Format is the template with %field% placeholders (empty for DefaultFormat)
	Format string
	// DateTimeFormat is the Go time layout for date/time values (empty for
	// DefaultDateTimeFormat)
	DateTimeFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
