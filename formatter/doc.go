// Package formatter renders log events into single lines of text.
//
// Simple is a template formatter: every %name% placeholder in its format
// string is replaced with the rendered value of the event field called
// name. Date/time values are rendered with a configurable Go time layout,
// which may be swapped at runtime with SetDateTimeFormat. Placeholders
// that name no field are left as they are, and fields without a
// placeholder are ignored, with one exception: a non-empty extra field is
// appended to the line when the template does not mention %extra%.
//
// Substitution is a single left-to-right pass over the template, so text
// inside substituted values is never mistaken for a placeholder.
//
// Formatters write into pooled bytes.Buffers. Buffers larger than 64 KiB
// are not returned to the pool to prevent a single large log line from
// permanently inflating memory usage.
package formatter
