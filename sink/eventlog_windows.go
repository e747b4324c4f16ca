//go:build windows

package sink

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows/svc/eventlog"

	"github.com/dnlrv/scriptlog/core"
)

// EventLogSink writes records to the Windows event log under a
// registered source. The source must already exist; registration is a
// separate privileged operation (see the eventsource package). Writing
// through an unregistered source surfaces whatever the event log API
// reports.
type EventLogSink struct {
	source string
	log    *eventlog.Log
}

// NewEventLogSink opens the named source. The log name is fixed at
// registration time on Windows; Open resolves the source through the
// registry, so the second argument is unused here.
func NewEventLogSink(source, _ string) (*EventLogSink, error) {
	if source == "" {
		return nil, errors.New("event log sink: source is required")
	}

	l, err := eventlog.Open(source)
	if err != nil {
		return nil, errors.Wrapf(err, "event log sink: open source %q", source)
	}
	return &EventLogSink{source: source, log: l}, nil
}

// Write submits the line under the record's event ID and entry type
func (s *EventLogSink) Write(rec *core.Record, line []byte) error {
	// Per-record source overrides get their own short-lived handle.
	if rec.Source != "" && rec.Source != s.source {
		l, err := eventlog.Open(rec.Source)
		if err != nil {
			return errors.Wrapf(err, "event log sink: open source %q", rec.Source)
		}
		defer l.Close()
		return writeEvent(l, rec, line)
	}
	return writeEvent(s.log, rec, line)
}

func writeEvent(l *eventlog.Log, rec *core.Record, line []byte) error {
	msg := string(line)
	id := uint32(rec.EventID)

	// The Windows API exposes three write severities; audits map onto
	// their non-audit counterparts.
	var err error
	switch rec.EntryType {
	case core.EntryError, core.EntryFailureAudit:
		err = l.Error(id, msg)
	case core.EntryWarning:
		err = l.Warning(id, msg)
	default:
		err = l.Info(id, msg)
	}
	return errors.Wrapf(err, "event log sink: write event %d", rec.EventID)
}

// Close closes the event log handle
func (s *EventLogSink) Close() error {
	if s.log == nil {
		return nil
	}
	err := s.log.Close()
	s.log = nil
	return errors.Wrapf(err, "event log sink: close source %q", s.source)
}
