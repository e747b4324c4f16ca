package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/dnlrv/scriptlog/core"
)

const (
	// stampLegacy5424 reproduces the historical rendering: an ISO-8601
	// shape whose hour component runs on a 12-hour clock. Invalid per
	// RFC 5424, kept for byte-compatibility with existing consumers.
	stampLegacy5424 = "2006-01-02T03:04:05Z07:00"
	// stampStrict5424 is a valid RFC 5424 timestamp
	stampStrict5424 = time.RFC3339
)

// RFC5424Formatter renders records as RFC 5424 syslog lines:
//
//	<PRI>1 TIMESTAMP HOSTNAME APP-NAME PROCID MSGID STRUCTURED-DATA MESSAGE
type RFC5424Formatter struct {
	Config
	stamp string
}

// NewRFC5424Formatter creates a new RFC 5424 formatter
func NewRFC5424Formatter(cfg Config) *RFC5424Formatter {
	cfg.fillHostname()
	stamp := stampLegacy5424
	if cfg.StrictTimestamps {
		stamp = stampStrict5424
	}
	return &RFC5424Formatter{Config: cfg, stamp: stamp}
}

// Format formats a record as an RFC 5424 line
func (f *RFC5424Formatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// formatToBuffer writes the formatted record into the given buffer
func (f *RFC5424Formatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	// Priority and version token
	buf.WriteByte('<')
	buf.WriteString(strconv.Itoa(rec.Priority()))
	buf.WriteString(">1 ")

	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.stamp))
	buf.WriteByte(' ')

	buf.WriteString(f.Hostname)
	buf.WriteByte(' ')

	buf.WriteString(orNil(rec.Tag))
	buf.WriteByte(' ')
	buf.WriteString(orNil(rec.ProcID))
	buf.WriteByte(' ')
	buf.WriteString(orNil(rec.MsgID))
	buf.WriteByte(' ')

	// Structured data: one bracket pair per element, no separators,
	// elements rendered verbatim and in order. "[-]" when empty.
	if len(rec.StructuredData) == 0 {
		buf.WriteString("[-]")
	} else {
		for _, elem := range rec.StructuredData {
			buf.WriteByte('[')
			buf.WriteString(elem)
			buf.WriteByte(']')
		}
	}

	buf.WriteByte(' ')
	buf.WriteString(rec.Message)
}

func orNil(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
