package logger

import (
	"time"

	"github.com/philipp01105/simplelog/core"
)

// Field helper functions for convenience

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Value: core.String(val)}
}

// Int creates an int field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Value: core.Int(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Value: core.Int64(val)}
}

// Float64 creates a float64 field
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Value: core.Float64(val)}
}

// Bool creates a bool field
func Bool(key string, val bool) core.Field {
	return core.Field{Key: key, Value: core.Bool(val)}
}

// Time creates a time field
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Value: core.Time(val)}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Value: core.Duration(val)}
}

// Err creates an error field named "error"
func Err(err error) core.Field {
	return core.Field{Key: "error", Value: core.Error(err)}
}

// Any creates a field with any value
func Any(key string, val interface{}) core.Field {
	return core.Any(key, val)
}

// Priority re-exports core.Priority for convenience
type Priority = core.Priority

const (
	EmergPriority  = core.Emerg
	AlertPriority  = core.Alert
	CritPriority   = core.Crit
	ErrPriority    = core.Err
	WarnPriority   = core.Warn
	NoticePriority = core.Notice
	InfoPriority   = core.Info
	DebugPriority  = core.Debug
)

// ParsePriority converts a priority name to a Priority
func ParsePriority(s string) Priority {
	return core.ParsePriority(s)
}
