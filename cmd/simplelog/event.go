package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/philipp01105/simplelog/core"
)

// parseEvent decodes one JSON object into an event. Keys are sorted so
// that the event is deterministic.
func parseEvent(raw []byte) (core.Event, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	if obj == nil {
		return nil, fmt.Errorf("decode event: not a JSON object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode event: trailing data after JSON object")
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	event := make(core.Event, 0, len(keys)+1)
	for _, k := range keys {
		v := jsonValue(obj[k])
		if k == core.KeyTimestamp && v.Kind == core.StringKind {
			if t, err := time.Parse(time.RFC3339Nano, v.Str); err == nil {
				v = core.Time(t)
			}
		}
		event = append(event, core.Field{Key: k, Value: v})
	}

	return derivePriority(event), nil
}

// derivePriority fills in priorityName from priority or the other way
// round when only one of them is present.
func derivePriority(event core.Event) core.Event {
	prio, hasPrio := event.Get(core.KeyPriority)
	name, hasName := event.Get(core.KeyPriorityName)

	switch {
	case hasPrio && !hasName && prio.Kind == core.IntKind:
		return event.With(core.KeyPriorityName, core.String(priorityName(prio.Int64)))
	case hasName && !hasPrio && name.Kind == core.StringKind:
		return event.With(core.KeyPriority, core.Int(int(core.ParsePriority(name.Str))))
	}
	return event
}

// priorityName names p, or returns UNKNOWN when p is not a syslog
// priority.
func priorityName(p int64) string {
	if p < int64(core.Emerg) || p > int64(core.Debug) {
		return "UNKNOWN"
	}
	return core.Priority(p).String()
}

func jsonValue(x interface{}) core.Value {
	switch v := x.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return core.Int64(i)
		}
		if f, err := v.Float64(); err == nil {
			return core.Float64(f)
		}
		return core.String(v.String())
	case []interface{}:
		items := make([]core.Value, len(v))
		for i, item := range v {
			items[i] = jsonValue(item)
		}
		return core.Array(items...)
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]core.Field, len(keys))
		for i, k := range keys {
			fields[i] = core.Field{Key: k, Value: jsonValue(v[k])}
		}
		return core.Map(fields...)
	default:
		return core.ValueOf(v)
	}
}
