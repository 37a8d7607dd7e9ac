// Package handler provides the Handler interface and its built-in
// implementations for emitting formatted log events.
//
// Handlers are synchronous: Handle renders the event with its formatter
// and writes the result before returning. Stream writes one line per
// event to any io.Writer (default: stderr) and serializes writes with a
// mutex, so a single Stream can be shared by many goroutines.
//
// SlogHandler adapts a Handler to log/slog.Handler, allowing simplelog
// formatters to render records produced through the standard library.
//
// Handlers count processed and failed writes via the Stats type.
package handler
