package formatter

import (
	"bytes"
	"strconv"

	"github.com/dnlrv/scriptlog/core"
)

// stampRFC3164 is the legacy timestamp layout: month abbreviation,
// zero-padded day, and a 12-hour clock with a leading zero and no
// AM/PM marker. This is not the RFC's canonical form; it matches the
// consumers these logs were written for.
const stampRFC3164 = "Jan 02 03:04:05"

// RFC3164Formatter renders records as classic BSD syslog lines:
//
//	<PRI>TIMESTAMP HOSTNAME TAG:MESSAGE
type RFC3164Formatter struct {
	Config
}

// NewRFC3164Formatter creates a new RFC 3164 formatter
func NewRFC3164Formatter(cfg Config) *RFC3164Formatter {
	cfg.fillHostname()
	return &RFC3164Formatter{Config: cfg}
}

// Format formats a record as an RFC 3164 line
func (f *RFC3164Formatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// formatToBuffer writes the formatted record into the given buffer
func (f *RFC3164Formatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	// Priority, facility*8 + severity, in angle brackets
	buf.WriteByte('<')
	buf.WriteString(strconv.Itoa(rec.Priority()))
	buf.WriteByte('>')

	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), stampRFC3164))
	buf.WriteByte(' ')

	buf.WriteString(f.Hostname)
	buf.WriteByte(' ')

	buf.WriteString(rec.Tag)
	buf.WriteByte(':')
	buf.WriteString(rec.Message)
}
