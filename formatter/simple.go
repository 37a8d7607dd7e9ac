package formatter

import (
	"bytes"
	"io"
	"strings"
	"sync/atomic"

	"github.com/philipp01105/simplelog/core"
)

const extraPlaceholder = "%" + core.KeyExtra + "%"

// Simple formats events by substituting %field% placeholders in a
// template.
//
// Format and DateTimeFormat are safe for concurrent use. SetDateTimeFormat
// swaps the layout atomically; a Format call running concurrently sees
// either the old or the new layout, never a mix.
type Simple struct {
	format         string
	hasExtra       bool
	dateTimeFormat atomic.Pointer[string]
}

// NewSimple creates a template formatter from cfg, applying defaults for
// empty fields.
func NewSimple(cfg Config) *Simple {
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.DateTimeFormat == "" {
		cfg.DateTimeFormat = DefaultDateTimeFormat
	}
	f := &Simple{
		format:   cfg.Format,
		hasExtra: strings.Contains(cfg.Format, extraPlaceholder),
	}
	f.SetDateTimeFormat(cfg.DateTimeFormat)
	return f
}

// NewSimpleFormat creates a template formatter from a format string and an
// optional date/time layout.
func NewSimpleFormat(format string, dateTimeFormat ...string) *Simple {
	cfg := Config{Format: format}
	if len(dateTimeFormat) > 0 {
		cfg.DateTimeFormat = dateTimeFormat[0]
	}
	return NewSimple(cfg)
}

// Template returns the format string
func (f *Simple) Template() string {
	return f.format
}

// DateTimeFormat returns the layout used for date/time values
func (f *Simple) DateTimeFormat() string {
	return *f.dateTimeFormat.Load()
}

// SetDateTimeFormat replaces the layout used for date/time values and
// returns f. It mutates the receiver, so every holder of f observes the
// new layout on its next Format call.
func (f *Simple) SetDateTimeFormat(layout string) *Simple {
	f.dateTimeFormat.Store(&layout)
	return f
}

// Format renders the event
func (f *Simple) Format(event core.Event) string {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(event, buf)
	return buf.String()
}

// FormatTo renders the event and writes it to w
func (f *Simple) FormatTo(event core.Event, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(event, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry renders the event into buf
func (f *Simple) FormatEntry(event core.Event, buf *bytes.Buffer) {
	layout := f.DateTimeFormat()

	tpl := f.format
	for {
		i := strings.IndexByte(tpl, '%')
		if i < 0 {
			buf.WriteString(tpl)
			break
		}
		buf.WriteString(tpl[:i])

		rest := tpl[i+1:]
		j := strings.IndexByte(rest, '%')
		if j < 0 {
			buf.WriteString(tpl[i:])
			break
		}

		if v, ok := event.Get(rest[:j]); ok {
			if rest[:j] != core.KeyExtra || !emptyExtra(v) {
				writeValue(buf, v, layout)
			}
			tpl = rest[j+1:]
			continue
		}

		// Not a placeholder: keep the '%' and rescan from the next byte so
		// that the closing '%' may open the next placeholder.
		buf.WriteByte('%')
		tpl = rest
	}

	extra, ok := event.Get(core.KeyExtra)
	if !ok {
		return
	}
	switch {
	case f.hasExtra && emptyExtra(extra):
		trimTrailingSpaces(buf)
	case !f.hasExtra && !emptyExtra(extra):
		buf.WriteByte(' ')
		writeValue(buf, extra, layout)
	}
}

// emptyExtra reports whether an extra value has nothing worth printing
func emptyExtra(v core.Value) bool {
	switch v.Kind {
	case core.NullKind:
		return true
	case core.ArrayKind, core.MapKind:
		return v.Len() == 0
	case core.StringKind:
		return v.Str == ""
	default:
		return false
	}
}

func trimTrailingSpaces(buf *bytes.Buffer) {
	b := buf.Bytes()
	n := len(b)
	for n > 0 && b[n-1] == ' ' {
		n--
	}
	buf.Truncate(n)
}
