package logger

import (
	"github.com/google/uuid"

	"github.com/dnlrv/scriptlog/core"
)

// Option adjusts a single record before it is formatted and
// dispatched. Options apply in order, so later options win.
type Option func(*core.Record)

// WithSeverity sets the record's severity
func WithSeverity(s Severity) Option {
	return func(r *core.Record) {
		r.Severity = s
	}
}

// WithFacility overrides the configured facility for one record
func WithFacility(facility int) Option {
	return func(r *core.Record) {
		r.Facility = facility
	}
}

// WithStructuredData sets the RFC 5424 structured-data elements. Each
// element is rendered verbatim inside its own bracket pair, in order.
func WithStructuredData(elems ...string) Option {
	return func(r *core.Record) {
		r.StructuredData = append(r.StructuredData[:0], elems...)
	}
}

// WithProcID sets the RFC 5424 PROCID field (default "-")
func WithProcID(id string) Option {
	return func(r *core.Record) {
		r.ProcID = id
	}
}

// WithMsgID sets the RFC 5424 MSGID field (default "-")
func WithMsgID(id string) Option {
	return func(r *core.Record) {
		r.MsgID = id
	}
}

// WithAutoMsgID stamps the record with a generated unique MSGID
func WithAutoMsgID() Option {
	return func(r *core.Record) {
		r.MsgID = uuid.New().String()
	}
}

// WithTag overrides the TAG / APP-NAME field for one record
func WithTag(tag string) Option {
	return func(r *core.Record) {
		r.Tag = tag
	}
}

// WithEventID sets the event-log event ID (default 999)
func WithEventID(id int) Option {
	return func(r *core.Record) {
		r.EventID = id
	}
}

// WithEntryType sets the event-log classification (default Information)
func WithEntryType(t core.EntryType) Option {
	return func(r *core.Record) {
		r.EntryType = t
	}
}

// WithSource overrides the event-log source for one record
func WithSource(source string) Option {
	return func(r *core.Record) {
		r.Source = source
	}
}

// WithLogName overrides the event-log name for one record
func WithLogName(name string) Option {
	return func(r *core.Record) {
		r.LogName = name
	}
}
