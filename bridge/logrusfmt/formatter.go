// Package logrusfmt plugs formatter.Simple into logrus.
//
// Entry data become event fields in key order, so they can be referenced
// as %key% placeholders. Errors stored under logrus.ErrorKey are also
// added to the event's extra values and therefore show up on the line
// even when the template does not mention them.
package logrusfmt

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
)

// Formatter renders logrus entries with a simplelog formatter
type Formatter struct {
	formatter formatter.Formatter
}

// New creates a logrus formatter. A nil f uses the default template.
func New(f formatter.Formatter) *Formatter {
	if f == nil {
		f = formatter.NewSimple(formatter.Config{})
	}
	return &Formatter{formatter: f}
}

// Format renders a single log entry
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	line := f.formatter.Format(Event(entry))
	b := make([]byte, 0, len(line)+1)
	b = append(b, line...)
	return append(b, '\n'), nil
}

// Event converts a logrus entry into a simplelog event
func Event(entry *logrus.Entry) core.Event {
	e := core.GetEntry()
	defer core.PutEntry(e)

	e.Time = entry.Time
	e.Priority = levelToPriority(entry.Level)
	e.Message = entry.Message

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := core.ValueOf(entry.Data[k])
		e.Fields = append(e.Fields, core.Field{Key: k, Value: v})
		if k == logrus.ErrorKey && v.Kind == core.ErrorKind {
			e.Extra = append(e.Extra, v)
		}
	}

	if entry.HasCaller() {
		e.Caller = core.CallerFromFrame(entry.Caller)
	}

	return e.Event()
}

// levelToPriority maps logrus levels onto syslog priorities
func levelToPriority(level logrus.Level) core.Priority {
	switch level {
	case logrus.PanicLevel:
		return core.Alert
	case logrus.FatalLevel:
		return core.Emerg
	case logrus.ErrorLevel:
		return core.Err
	case logrus.WarnLevel:
		return core.Warn
	case logrus.InfoLevel:
		return core.Info
	default:
		return core.Debug
	}
}
