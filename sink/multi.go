package sink

import (
	"go.uber.org/multierr"

	"github.com/dnlrv/scriptlog/core"
)

// MultiSink delivers each line to every child sink. A failure in one
// child never suppresses the attempt on the others; all failures come
// back combined in one error.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a new multi-sink
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Write delivers the line to all child sinks
func (m *MultiSink) Write(rec *core.Record, line []byte) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Write(rec, line))
	}
	return err
}

// Close closes all child sinks
func (m *MultiSink) Close() error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}
