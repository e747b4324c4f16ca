package core

import (
	"sync"
	"time"
)

// DefaultFacility is the syslog "local use 0" facility code, used when
// the caller does not configure one.
const DefaultFacility = 16

// DefaultEventID is stamped on records whose caller did not pick an
// event ID.
const DefaultEventID = 999

// Record carries one log message with all of its metadata. A record is
// built per call, formatted, dispatched, and recycled; it never
// outlives the call that produced it.
type Record struct {
	Time     time.Time
	Message  string
	Facility int
	Severity Severity

	// StructuredData holds the RFC 5424 structured-data elements, each
	// rendered verbatim inside its own bracket pair, in order.
	StructuredData []string
	ProcID         string
	MsgID          string

	// Tag is the identifier of the invoking routine: the RFC 3164 TAG
	// and the RFC 5424 APP-NAME field.
	Tag string

	// Event-log fields, consulted only by the event-log sink.
	EventID   int
	EntryType EntryType
	Source    string
	LogName   string
}

// Priority returns the syslog priority value, facility*8 + severity.
func (r *Record) Priority() int {
	return r.Facility*8 + int(r.Severity)
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			StructuredData: make([]string, 0, 4),
		}
	},
}

// GetRecord retrieves a Record from the pool with all per-call
// defaults applied: facility 16, severity Emergency (callers should
// always set one), "-" PROCID and MSGID, event ID 999, Information.
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Message = ""
	r.Facility = DefaultFacility
	r.Severity = Emergency
	r.StructuredData = r.StructuredData[:0]
	r.ProcID = "-"
	r.MsgID = "-"
	r.Tag = ""
	r.EventID = DefaultEventID
	r.EntryType = EntryInformation
	r.Source = ""
	r.LogName = ""
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	r.StructuredData = r.StructuredData[:0]
	r.Message = ""
	recordPool.Put(r)
}
