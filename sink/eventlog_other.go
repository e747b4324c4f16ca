//go:build !windows

package sink

import (
	"log/syslog"

	"github.com/pkg/errors"

	"github.com/dnlrv/scriptlog/core"
)

// EventLogSink is the non-Windows stand-in for the event viewer: it
// hands records to the local syslog daemon with the source name as the
// tag. The record's entry-type classification picks the write method;
// the already-encoded priority in the line text is preserved verbatim.
type EventLogSink struct {
	source string
	writer *syslog.Writer
}

// NewEventLogSink connects to the local syslog daemon. There is no
// event log name outside Windows, so the second argument is unused.
func NewEventLogSink(source, _ string) (*EventLogSink, error) {
	if source == "" {
		return nil, errors.New("event log sink: source is required")
	}

	w, err := syslog.New(syslog.LOG_LOCAL0|syslog.LOG_INFO, source)
	if err != nil {
		return nil, errors.Wrapf(err, "event log sink: connect syslog for source %q", source)
	}
	return &EventLogSink{source: source, writer: w}, nil
}

// Write submits the line under the record's entry type
func (s *EventLogSink) Write(rec *core.Record, line []byte) error {
	if s.writer == nil {
		return errors.Errorf("event log sink: source %q is closed", s.source)
	}

	// Per-record source overrides get their own short-lived connection.
	if rec.Source != "" && rec.Source != s.source {
		w, err := syslog.New(syslog.LOG_LOCAL0|syslog.LOG_INFO, rec.Source)
		if err != nil {
			return errors.Wrapf(err, "event log sink: connect syslog for source %q", rec.Source)
		}
		defer w.Close()
		return writeEvent(w, rec, line)
	}
	return writeEvent(s.writer, rec, line)
}

func writeEvent(w *syslog.Writer, rec *core.Record, line []byte) error {
	msg := string(line)

	var err error
	switch rec.EntryType {
	case core.EntryError, core.EntryFailureAudit:
		err = w.Err(msg)
	case core.EntryWarning:
		err = w.Warning(msg)
	default:
		err = w.Info(msg)
	}
	return errors.Wrapf(err, "event log sink: write event %d", rec.EventID)
}

// Close closes the syslog connection
func (s *EventLogSink) Close() error {
	if s.writer == nil {
		return nil
	}
	err := s.writer.Close()
	s.writer = nil
	return errors.Wrapf(err, "event log sink: close source %q", s.source)
}
