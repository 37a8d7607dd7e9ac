package formatter

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/philipp01105/simplelog/core"
)

// writeValue renders a field value as placeholder text
func writeValue(buf *bytes.Buffer, v core.Value, layout string) {
	switch v.Kind {
	case core.NullKind:
	case core.StringKind:
		buf.WriteString(v.Str)
	case core.IntKind:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), v.Int64, 10))
	case core.FloatKind:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), v.Float64, 'f', -1, 64))
	case core.BoolKind:
		if v.Bool() {
			buf.WriteByte('1')
		}
	case core.TimeKind:
		writeTime(buf, v.Timestamp(), layout)
	case core.DurationKind:
		buf.WriteString(time.Duration(v.Int64).String())
	case core.ErrorKind:
		if err := v.Err(); err != nil {
			buf.WriteString(err.Error())
		}
	case core.ArrayKind:
		buf.WriteByte('[')
		for i, item := range v.Items() {
			if i > 0 {
				buf.WriteString(", ")
			}
			writeElement(buf, item, layout)
		}
		buf.WriteByte(']')
	case core.MapKind:
		buf.WriteByte('{')
		for i, field := range v.Fields() {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(field.Key)
			buf.WriteString(": ")
			writeElement(buf, field.Value, layout)
		}
		buf.WriteByte('}')
	case core.ObjectKind:
		if s, ok := v.Any.(fmt.Stringer); ok {
			buf.WriteString(s.String())
			return
		}
		buf.WriteString("Object(")
		buf.WriteString(fmt.Sprintf("%T", v.Any))
		buf.WriteByte(')')
	}
}

// writeElement renders a value nested in an array or map. Null and bool
// values are spelled out so that empty elements stay visible.
func writeElement(buf *bytes.Buffer, v core.Value, layout string) {
	switch v.Kind {
	case core.NullKind:
		buf.WriteString("null")
	case core.BoolKind:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), v.Bool()))
	default:
		writeValue(buf, v, layout)
	}
}

func writeTime(buf *bytes.Buffer, ts core.Timestamp, layout string) {
	if ts == nil {
		return
	}
	if layout == DateTimeUnix {
		if u, ok := ts.(interface{ Unix() int64 }); ok {
			buf.Write(strconv.AppendInt(buf.AvailableBuffer(), u.Unix(), 10))
			return
		}
	}
	if t, ok := ts.(time.Time); ok {
		buf.Write(t.AppendFormat(buf.AvailableBuffer(), layout))
		return
	}
	buf.WriteString(ts.Format(layout))
}
