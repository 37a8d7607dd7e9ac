package formatter_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
)

func ExampleNewSimple() {
	f := formatter.NewSimple(formatter.Config{})

	event := core.NewEvent(
		core.KeyTimestamp, time.Date(2012, 8, 28, 18, 15, 0, 0, time.UTC),
		core.KeyMessage, "foo",
		core.KeyPriority, 42,
		core.KeyPriorityName, "bar",
	)

	fmt.Println(f.Format(event))
	// Output:
	// 2012-08-28T18:15:00+00:00 bar (42): foo
}

func ExampleSimple_SetDateTimeFormat() {
	f := formatter.NewSimpleFormat("[%timestamp%] %message%")
	event := core.NewEvent(
		core.KeyTimestamp, time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		core.KeyMessage, "ready",
	)

	fmt.Println(f.SetDateTimeFormat(time.Kitchen).Format(event))
	fmt.Println(f.SetDateTimeFormat(formatter.DateTimeUnix).Format(event))
	// Output:
	// [12:00PM] ready
	// [1768478400] ready
}

func ExampleSimple_Format_extra() {
	f := formatter.NewSimpleFormat("%priorityName%: %message%")
	event := core.NewEvent(
		core.KeyMessage, "Application error",
		core.KeyPriorityName, "CRIT",
		core.KeyExtra, []interface{}{errors.New("custom message")},
	)

	fmt.Println(f.Format(event))
	// Output:
	// CRIT: Application error [custom message]
}

func ExampleNewSimpleFromOptions() {
	_, err := formatter.NewSimpleFromOptions(map[string]interface{}{"format": 1})
	fmt.Println(errors.Is(err, formatter.ErrInvalidArgument))
	// Output:
	// true
}
