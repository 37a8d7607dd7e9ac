// Command simplelog renders JSON-lines log events with a template.
//
// Each input line is a JSON object whose keys are event fields:
//
//	{"timestamp":"2012-08-28T18:15:00Z","message":"foo","priority":3}
//
// RFC 3339 strings under "timestamp" are parsed as dates, and a missing
// priorityName or priority is derived from the other one.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
