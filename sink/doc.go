// Package sink contains the delivery targets for formatted log lines:
// a flat-file appender, an OS event-log writer, and a fan-out that
// drives several sinks from one write. Sinks are synchronous; a write
// either lands or returns the underlying error.
package sink
