package handler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
)

// StreamConfig holds stream handler configuration
type StreamConfig struct {
	// Writer receives one line per event (default: os.Stderr)
	Writer io.Writer
	// Formatter renders events (default: formatter.NewSimple with defaults)
	Formatter formatter.Formatter
}

// Stream writes each event as one line to an io.Writer. Writes are
// serialized, so a Stream may be shared between goroutines.
type Stream struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *Stats
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
	closed          atomic.Bool
}

// NewStream creates a new stream handler
func NewStream(cfg StreamConfig) *Stream {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewSimple(formatter.Config{})
	}

	h := &Stream{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}
	// Cache BufferFormatter to render straight into the handler buffer
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)
	return h
}

// Handle formats the event and writes it followed by a newline
func (h *Stream) Handle(event core.Event) error {
	if h.closed.Load() {
		return ErrClosed
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatEntry(event, &h.buf)
	} else {
		h.buf.WriteString(h.formatter.Format(event))
	}
	h.buf.WriteByte('\n')

	if _, err := h.writer.Write(h.buf.Bytes()); err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns the handler statistics
func (h *Stream) Stats() *Stats {
	return h.stats
}

// Close stops accepting events. The writer is not closed; it belongs to
// the caller.
func (h *Stream) Close() error {
	h.closed.Store(true)
	return nil
}
