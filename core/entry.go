package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Entry represents a log entry with all its metadata
type Entry struct {
	Time     time.Time
	Priority Priority
	Message  string
	Fields   []Field
	Extra    []Value
	Caller   CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Priority = Info
	e.Fields = e.Fields[:0]
	e.Extra = e.Extra[:0]
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Fields = e.Fields[:0]
	e.Extra = e.Extra[:0]
	e.Message = ""
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// Event converts the entry into the record formatters consume. The
// canonical fields come first (timestamp, message, priority, priorityName,
// extra), followed by the entry fields and the caller. An entry field
// named like a canonical one replaces it in place.
//
// The event does not share memory with the entry, so the entry may be
// returned to the pool once Event has been called.
func (e *Entry) Event() Event {
	n := 5 + len(e.Fields)
	if e.Caller.Defined {
		n += 3
	}
	extra := make([]Value, len(e.Extra))
	copy(extra, e.Extra)

	ev := make(Event, 0, n)
	ev = append(ev,
		Field{Key: KeyTimestamp, Value: Time(e.Time)},
		Field{Key: KeyMessage, Value: String(e.Message)},
		Field{Key: KeyPriority, Value: Int(int(e.Priority))},
		Field{Key: KeyPriorityName, Value: String(e.Priority.String())},
		Field{Key: KeyExtra, Value: Array(extra...)},
	)
	for _, f := range e.Fields {
		ev = ev.set(f.Key, f.Value)
	}
	if e.Caller.Defined {
		ev = ev.set("file", String(e.Caller.ShortFile))
		ev = ev.set("line", Int(e.Caller.Line))
		ev = ev.set("function", String(e.Caller.Function))
	}
	return ev
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// CallerFromFrame converts a runtime frame, as recorded by other logging
// libraries, into CallerInfo
func CallerFromFrame(frame *runtime.Frame) CallerInfo {
	if frame == nil {
		return CallerInfo{}
	}
	return CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}
