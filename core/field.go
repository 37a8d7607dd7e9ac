package core

// Field is a named value of an event
type Field struct {
	Key   string
	Value Value
}

// Any creates a field from an arbitrary Go value, see ValueOf
func Any(key string, val interface{}) Field {
	return Field{Key: key, Value: ValueOf(val)}
}
