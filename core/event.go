package core

// Well-known event keys used by the default template
const (
	KeyTimestamp    = "timestamp"
	KeyMessage      = "message"
	KeyPriority     = "priority"
	KeyPriorityName = "priorityName"
	KeyExtra        = "extra"
)

// Event is the record handed to formatters: an ordered list of named
// fields. Order matters only for iteration; lookups return the first
// field with the given key.
type Event []Field

// NewEvent builds an event from key/value pairs, converting each value with
// ValueOf. A trailing key without a value is ignored.
func NewEvent(kv ...interface{}) Event {
	ev := make(Event, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ev = ev.With(key, ValueOf(kv[i+1]))
	}
	return ev
}

// Get returns the value stored under key
func (e Event) Get(key string) (Value, bool) {
	for i := range e {
		if e[i].Key == key {
			return e[i].Value, true
		}
	}
	return Value{}, false
}

// Has reports whether key is present
func (e Event) Has(key string) bool {
	_, ok := e.Get(key)
	return ok
}

// With returns a copy of the event with key set to v. An existing field
// keeps its position; a new one is appended. The receiver is not modified.
func (e Event) With(key string, v Value) Event {
	out := make(Event, len(e), len(e)+1)
	copy(out, e)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = v
			return out
		}
	}
	return append(out, Field{Key: key, Value: v})
}

// set is the in-place variant of With for events the caller owns
func (e Event) set(key string, v Value) Event {
	for i := range e {
		if e[i].Key == key {
			e[i].Value = v
			return e
		}
	}
	return append(e, Field{Key: key, Value: v})
}
