// Package zapenc plugs formatter.Simple into zap as a zapcore.Encoder.
//
// Context and call-site fields become event fields in key order. Error
// fields and stack traces are also added to the event's extra values, so
// they appear on the line even when the template does not mention them.
// Errors attached with Logger.With reach extra only through NewCore; an
// Encoder used with another core sees them as plain string fields.
package zapenc

import (
	"path/filepath"
	"sort"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
)

var bufferPool = buffer.NewPool()

// Encoder renders zap entries with a simplelog formatter
type Encoder struct {
	*zapcore.MapObjectEncoder
	formatter formatter.Formatter
	extra     []core.Value
}

// New creates an encoder. A nil f uses the default template.
func New(f formatter.Formatter) *Encoder {
	if f == nil {
		f = formatter.NewSimple(formatter.Config{})
	}
	return &Encoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		formatter:        f,
	}
}

// Clone copies the encoder and its accumulated context fields
func (e *Encoder) Clone() zapcore.Encoder {
	return e.clone()
}

func (e *Encoder) clone() *Encoder {
	extra := make([]core.Value, len(e.extra))
	copy(extra, e.extra)
	return &Encoder{
		MapObjectEncoder: e.cloneFields(),
		formatter:        e.formatter,
		extra:            extra,
	}
}

// addContext adds fields to the encoder's context, keeping errors for the
// extra values of every later entry.
func (e *Encoder) addContext(fields []zapcore.Field) {
	for _, f := range fields {
		if err, ok := fieldError(f); ok {
			e.extra = append(e.extra, core.Error(err))
		}
		f.AddTo(e.MapObjectEncoder)
	}
}

func fieldError(f zapcore.Field) (error, bool) {
	if f.Type != zapcore.ErrorType {
		return nil, false
	}
	err, ok := f.Interface.(error)
	return err, ok && err != nil
}

func (e *Encoder) cloneFields() *zapcore.MapObjectEncoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range e.Fields {
		clone.Fields[k] = v
	}
	return clone
}

// EncodeEntry renders one entry followed by a newline
func (e *Encoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	enc := e.cloneFields()

	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = ent.Time
	entry.Priority = levelToPriority(ent.Level)
	entry.Message = ent.Message
	entry.Extra = append(entry.Extra, e.extra...)

	for _, f := range fields {
		if err, ok := fieldError(f); ok {
			entry.Extra = append(entry.Extra, core.Error(err))
		}
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		entry.Fields = append(entry.Fields, core.Any(k, enc.Fields[k]))
	}

	if ent.LoggerName != "" {
		entry.Fields = append(entry.Fields, core.Field{Key: "logger", Value: core.String(ent.LoggerName)})
	}
	if ent.Caller.Defined {
		entry.Caller = core.CallerInfo{
			File:      ent.Caller.File,
			ShortFile: filepath.Base(ent.Caller.File),
			Line:      ent.Caller.Line,
			Function:  ent.Caller.Function,
			Defined:   true,
		}
	}
	if ent.Stack != "" {
		entry.Extra = append(entry.Extra, core.String(ent.Stack))
	}

	buf := bufferPool.Get()
	buf.AppendString(e.formatter.Format(entry.Event()))
	buf.AppendByte('\n')
	return buf, nil
}

// levelToPriority maps zap levels onto syslog priorities
func levelToPriority(level zapcore.Level) core.Priority {
	switch level {
	case zapcore.FatalLevel:
		return core.Emerg
	case zapcore.PanicLevel:
		return core.Alert
	case zapcore.DPanicLevel:
		return core.Crit
	case zapcore.ErrorLevel:
		return core.Err
	case zapcore.WarnLevel:
		return core.Warn
	case zapcore.InfoLevel:
		return core.Info
	default:
		return core.Debug
	}
}
