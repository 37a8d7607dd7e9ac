package core

import "strings"

// Priority is the syslog-style severity of a log event. Lower values are
// more severe.
type Priority int8

const (
	// Emerg means the system is unusable
	Emerg Priority = iota
	// Alert means action must be taken immediately
	Alert
	// Crit for critical conditions
	Crit
	// Err for error conditions
	Err
	// Warn for warning conditions
	Warn
	// Notice for normal but significant conditions
	Notice
	// Info for informational messages (default)
	Info
	// Debug for debug-level messages
	Debug
)

// String returns the priority name as it appears in %priorityName%
func (p Priority) String() string {
	switch p {
	case Emerg:
		return "EMERG"
	case Alert:
		return "ALERT"
	case Crit:
		return "CRIT"
	case Err:
		return "ERR"
	case Warn:
		return "WARN"
	case Notice:
		return "NOTICE"
	case Info:
		return "INFO"
	case Debug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParsePriority converts a priority name to a Priority. Unknown names
// resolve to Info.
func ParsePriority(s string) Priority {
	switch strings.ToUpper(s) {
	case "EMERG", "EMERGENCY":
		return Emerg
	case "ALERT":
		return Alert
	case "CRIT", "CRITICAL":
		return Crit
	case "ERR", "ERROR":
		return Err
	case "WARN", "WARNING":
		return Warn
	case "NOTICE":
		return Notice
	case "INFO":
		return Info
	case "DEBUG":
		return Debug
	default:
		return Info
	}
}
