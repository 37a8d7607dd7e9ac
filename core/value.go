package core

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// Kind tags the variant held by a Value
type Kind uint8

const (
	NullKind Kind = iota
	StringKind
	IntKind
	FloatKind
	BoolKind
	TimeKind
	DurationKind
	ErrorKind
	ArrayKind
	MapKind
	ObjectKind
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case StringKind:
		return "string"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case BoolKind:
		return "bool"
	case TimeKind:
		return "time"
	case DurationKind:
		return "duration"
	case ErrorKind:
		return "error"
	case ArrayKind:
		return "array"
	case MapKind:
		return "map"
	case ObjectKind:
		return "object"
	default:
		return "unknown"
	}
}

// Timestamp is a date/time value that can render itself with a layout.
// time.Time satisfies it.
type Timestamp interface {
	Format(layout string) string
}

// Value is a tagged variant holding one event field value. Numeric and
// boolean values are stored inline so they never escape to the heap; the
// remaining kinds keep their payload in Any.
type Value struct {
	Kind    Kind
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// Null returns the null value
func Null() Value { return Value{Kind: NullKind} }

// String creates a string value
func String(s string) Value { return Value{Kind: StringKind, Str: s} }

// Int creates an integer value
func Int(i int) Value { return Value{Kind: IntKind, Int64: int64(i)} }

// Int64 creates an integer value
func Int64(i int64) Value { return Value{Kind: IntKind, Int64: i} }

// Float64 creates a float value
func Float64(f float64) Value { return Value{Kind: FloatKind, Float64: f} }

// Bool creates a boolean value
func Bool(b bool) Value {
	v := Value{Kind: BoolKind}
	if b {
		v.Int64 = 1
	}
	return v
}

// Time creates a date/time value. A nil Timestamp yields Null.
func Time(t Timestamp) Value {
	if t == nil {
		return Null()
	}
	return Value{Kind: TimeKind, Any: t}
}

// Duration creates a duration value
func Duration(d time.Duration) Value { return Value{Kind: DurationKind, Int64: int64(d)} }

// Error creates an error value. A nil error yields Null.
func Error(err error) Value {
	if err == nil {
		return Null()
	}
	return Value{Kind: ErrorKind, Any: err}
}

// Array creates an ordered sequence value
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: ArrayKind, Any: items}
}

// Map creates a keyed value that keeps the order of its fields
func Map(fields ...Field) Value {
	if fields == nil {
		fields = []Field{}
	}
	return Value{Kind: MapKind, Any: fields}
}

// Object wraps an arbitrary structured value
func Object(o interface{}) Value {
	if o == nil {
		return Null()
	}
	return Value{Kind: ObjectKind, Any: o}
}

// Bool reports the boolean payload
func (v Value) Bool() bool { return v.Int64 == 1 }

// Timestamp returns the date/time payload of a TimeKind value
func (v Value) Timestamp() Timestamp {
	t, _ := v.Any.(Timestamp)
	return t
}

// Err returns the error payload of an ErrorKind value
func (v Value) Err() error {
	err, _ := v.Any.(error)
	return err
}

// Items returns the elements of an ArrayKind value
func (v Value) Items() []Value {
	items, _ := v.Any.([]Value)
	return items
}

// Fields returns the entries of a MapKind value
func (v Value) Fields() []Field {
	fields, _ := v.Any.([]Field)
	return fields
}

// Len returns the number of elements of an array or map value, zero otherwise
func (v Value) Len() int {
	switch v.Kind {
	case ArrayKind:
		return len(v.Items())
	case MapKind:
		return len(v.Fields())
	default:
		return 0
	}
}

// ValueOf classifies an arbitrary Go value. Slices, arrays and
// string-keyed maps of any element type are converted recursively; Go
// maps are ordered by key so the result is deterministic.
func ValueOf(x interface{}) Value {
	switch v := x.(type) {
	case nil:
		return Null()
	case Value:
		return v
	case string:
		return String(v)
	case []byte:
		return String(string(v))
	case bool:
		return Bool(v)
	case int:
		return Int64(int64(v))
	case int8:
		return Int64(int64(v))
	case int16:
		return Int64(int64(v))
	case int32:
		return Int64(int64(v))
	case int64:
		return Int64(v)
	case uint:
		return uintValue(uint64(v))
	case uint8:
		return Int64(int64(v))
	case uint16:
		return Int64(int64(v))
	case uint32:
		return Int64(int64(v))
	case uint64:
		return uintValue(v)
	case float32:
		return Float64(float64(v))
	case float64:
		return Float64(v)
	case time.Duration:
		return Duration(v)
	case time.Time:
		return Time(v)
	case *time.Time:
		if v == nil {
			return Null()
		}
		return Time(*v)
	case error:
		return Error(v)
	case []Value:
		return Array(v...)
	case []Field:
		return Map(v...)
	case Event:
		return Map(v...)
	case []interface{}:
		items := make([]Value, len(v))
		for i, item := range v {
			items[i] = ValueOf(item)
		}
		return Array(items...)
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, len(keys))
		for i, k := range keys {
			fields[i] = Field{Key: k, Value: ValueOf(v[k])}
		}
		return Map(fields...)
	case Timestamp:
		return Time(v)
	case fmt.Stringer:
		return Object(v)
	}
	return reflectValue(reflect.ValueOf(x))
}

func uintValue(u uint64) Value {
	if u > math.MaxInt64 {
		return String(strconv.FormatUint(u, 10))
	}
	return Int64(int64(u))
}

// reflectValue handles container types the type switch in ValueOf
// cannot name.
func reflectValue(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		if rv.Kind() == reflect.Interface {
			return ValueOf(rv.Elem().Interface())
		}
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Array()
		}
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = ValueOf(rv.Index(i).Interface())
		}
		return Array(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		fields := make([]Field, len(keys))
		for i, k := range keys {
			fields[i] = Field{Key: k.String(), Value: ValueOf(rv.MapIndex(k).Interface())}
		}
		return Map(fields...)
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintValue(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float64(rv.Float())
	}
	return Object(rv.Interface())
}
