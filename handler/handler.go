package handler

import (
	"errors"
	"sync/atomic"

	"github.com/philipp01105/simplelog/core"
)

// ErrClosed is returned by Handle after Close
var ErrClosed = errors.New("handler closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle renders and emits a log event
	Handle(event core.Event) error

	// Close closes the handler and releases resources
	Close() error
}

// Stats tracks handler statistics
type Stats struct {
	processed atomic.Uint64
	failed    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed counts an event that was written
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementFailed counts an event whose write failed
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// Processed returns the number of events written
func (s *Stats) Processed() uint64 {
	return s.processed.Load()
}

// Failed returns the number of events whose write failed
func (s *Stats) Failed() uint64 {
	return s.failed.Load()
}
