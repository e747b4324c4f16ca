package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Target selects which sinks receive a record that passes the
// threshold. Console echo is independent of the target.
type Target int8

const (
	// TargetFlatFile appends to the configured log file
	TargetFlatFile Target = iota
	// TargetEventViewer writes to the OS event log
	TargetEventViewer
	// TargetBoth drives both sinks from one write
	TargetBoth
)

// String returns the string representation of the target
func (t Target) String() string {
	switch t {
	case TargetFlatFile:
		return "FlatFile"
	case TargetEventViewer:
		return "EventViewer"
	case TargetBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// ParseTarget converts a string to a Target
func ParseTarget(s string) (Target, error) {
	switch strings.ToUpper(s) {
	case "FLATFILE", "FILE":
		return TargetFlatFile, nil
	case "EVENTVIEWER", "EVENTLOG":
		return TargetEventViewer, nil
	case "BOTH":
		return TargetBoth, nil
	default:
		return TargetFlatFile, errors.Errorf("unknown log target %q", s)
	}
}

// Format selects the wire layout of formatted records.
type Format int8

const (
	// FormatRFC3164 is the classic BSD syslog layout
	FormatRFC3164 Format = iota
	// FormatRFC5424 is the structured syslog layout
	FormatRFC5424
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatRFC3164:
		return "RFC3164"
	case FormatRFC5424:
		return "RFC5424"
	default:
		return "Unknown"
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(s) {
	case "RFC3164", "3164":
		return FormatRFC3164, nil
	case "RFC5424", "5424":
		return FormatRFC5424, nil
	default:
		return FormatRFC3164, errors.Errorf("unknown log format %q", s)
	}
}
