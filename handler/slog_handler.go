package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/simplelog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Handler, so records logged through log/slog are rendered by simplelog
// formatters. Attributes become event fields; attributes holding an error
// are also added to the event's extra values.
type SlogHandler struct {
	handler Handler
	attrs   []core.Field
	extra   []core.Value
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler) *SlogHandler {
	return &SlogHandler{handler: h}
}

// Enabled reports true for every level; simplelog does not filter by
// severity.
func (s *SlogHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle converts the record to an event and passes it to the wrapped
// handler. A zero record time renders as an empty timestamp.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Priority = slogLevelToPriority(record.Level)
	entry.Message = record.Message

	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}
	if len(s.extra) > 0 {
		entry.Extra = append(entry.Extra, s.extra...)
	}

	record.Attrs(func(a slog.Attr) bool {
		entry.Fields, entry.Extra = appendAttr(entry.Fields, entry.Extra, s.group, a)
		return true
	})

	event := entry.Event()
	core.PutEntry(entry)
	if record.Time.IsZero() {
		event = event.With(core.KeyTimestamp, core.Null())
	}
	return s.handler.Handle(event)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	newExtra := make([]core.Value, len(s.extra))
	copy(newExtra, s.extra)
	for _, a := range attrs {
		newAttrs, newExtra = appendAttr(newAttrs, newExtra, s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		attrs:   newAttrs,
		extra:   newExtra,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		handler: s.handler,
		attrs:   s.attrs,
		extra:   s.extra,
		group:   newGroup,
	}
}

// slogLevelToPriority converts a slog.Level to a core.Priority.
func slogLevelToPriority(level slog.Level) core.Priority {
	switch {
	case level >= slog.LevelError:
		return core.Err
	case level >= slog.LevelWarn:
		return core.Warn
	case level >= slog.LevelInfo:
		return core.Info
	default:
		return core.Debug
	}
}

// appendAttr adds a as a field, prefixed with group. Attributes with an
// empty key are dropped, except groups, whose members are inlined. Empty
// groups are dropped as well.
func appendAttr(fields []core.Field, extra []core.Value, group string, a slog.Attr) ([]core.Field, []core.Value) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		if len(members) == 0 {
			return fields, extra
		}
		if a.Key == "" {
			for _, m := range members {
				fields, extra = appendAttr(fields, extra, group, m)
			}
			return fields, extra
		}
	}
	if a.Key == "" {
		return fields, extra
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}
	f := core.Field{Key: key, Value: slogValue(a.Value)}
	fields = append(fields, f)
	if f.Value.Kind == core.ErrorKind {
		extra = append(extra, f.Value)
	}
	return fields, extra
}

// groupFields converts the members of a group, applying the same
// empty-key rules as appendAttr.
func groupFields(fields []core.Field, attrs []slog.Attr) []core.Field {
	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		if a.Value.Kind() == slog.KindGroup {
			members := a.Value.Group()
			if len(members) == 0 {
				continue
			}
			if a.Key == "" {
				fields = groupFields(fields, members)
				continue
			}
		}
		if a.Key == "" {
			continue
		}
		fields = append(fields, core.Field{Key: a.Key, Value: slogValue(a.Value)})
	}
	return fields
}

func slogValue(v slog.Value) core.Value {
	v = v.Resolve()

	switch v.Kind() {
	case slog.KindString:
		return core.String(v.String())
	case slog.KindInt64:
		return core.Int64(v.Int64())
	case slog.KindUint64:
		return core.ValueOf(v.Uint64())
	case slog.KindFloat64:
		return core.Float64(v.Float64())
	case slog.KindBool:
		return core.Bool(v.Bool())
	case slog.KindTime:
		return core.Time(v.Time())
	case slog.KindDuration:
		return core.Duration(v.Duration())
	case slog.KindGroup:
		attrs := v.Group()
		return core.Map(groupFields(make([]core.Field, 0, len(attrs)), attrs)...)
	default:
		return core.ValueOf(v.Any())
	}
}
