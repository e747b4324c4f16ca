package sink

import "github.com/dnlrv/scriptlog/core"

// Sink defines the interface for log delivery targets. Write receives
// the rendered line without a trailing newline, together with the
// record it came from so event-log sinks can read the event ID and
// entry-type classification.
type Sink interface {
	// Write delivers one formatted line
	Write(rec *core.Record, line []byte) error

	// Close closes the sink and releases resources
	Close() error
}
