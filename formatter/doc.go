// Package formatter renders records as single syslog lines. Two
// layouts are supported: the classic RFC 3164 format and the newer
// RFC 5424 format. A formatter is a pure function of the record plus
// its configured host name, which keeps the wire layout testable.
package formatter
