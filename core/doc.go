// Package core defines the shared types used across simplelog.
//
// An Event is the record a formatter renders: an ordered list of named
// fields whose values are Values, a tagged variant over null, string,
// integer, float, bool, date/time, duration, error, array, map and
// arbitrary object. Formatters switch over Value.Kind instead of
// inspecting dynamic types, so the set of renderable shapes is closed.
//
// Entry is the logger-side record (time, priority, message, fields,
// extra values, caller). Entries are pooled via sync.Pool; callers get
// one with GetEntry and return it with PutEntry once Entry.Event has
// produced the formatter's input.
//
// Priorities follow syslog numbering: Emerg is 0 and Debug is 7.
package core
