// Package logger is the public API of simplelog. Most users only need to
// import this package.
//
// A Logger is immutable after construction: the fields, the handler and
// the clock are set once via the Builder and never modified, which makes
// Logger safe for concurrent use without locking on the call path.
//
// The package initializes a default Logger (default template, one line
// per event on stderr) in init(). The package-level functions Info,
// Error, Notice, etc. delegate to this default instance:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// Arguments after the message that are core.Fields become named event
// fields, usable as %name% placeholders. Any other argument, typically an
// error, is added to the event's extra values, which the default template
// appends to the line:
//
//	logger.Error("request failed", logger.String("path", p), err)
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(handler.NewStream(handler.StreamConfig{
//	        Formatter: formatter.NewSimpleFormat("%priorityName% %file%:%line% %message%"),
//	    })).
//	    WithCaller(true).
//	    Build()
//
// Every priority is emitted; simplelog does not filter by severity.
package logger
