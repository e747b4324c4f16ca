package logger

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/dnlrv/scriptlog/core"
)

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	EmergencyLevel     = core.Emergency
	AlertLevel         = core.Alert
	CriticalLevel      = core.Critical
	ErrorLevel         = core.Error
	WarningLevel       = core.Warning
	NoticeLevel        = core.Notice
	InformationalLevel = core.Informational
	DebugLevel         = core.Debug
)

// ParseSeverity converts a string to a Severity
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(s) {
	case "EMERGENCY", "EMERG":
		return EmergencyLevel, nil
	case "ALERT":
		return AlertLevel, nil
	case "CRITICAL", "CRIT":
		return CriticalLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "NOTICE":
		return NoticeLevel, nil
	case "INFORMATIONAL", "INFO":
		return InformationalLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	default:
		return InformationalLevel, errors.Errorf("unknown severity %q", s)
	}
}

// ParseEntryType converts a string to an event-log EntryType
func ParseEntryType(s string) (core.EntryType, error) {
	switch strings.ToUpper(s) {
	case "INFORMATION":
		return core.EntryInformation, nil
	case "ERROR":
		return core.EntryError, nil
	case "WARNING":
		return core.EntryWarning, nil
	case "SUCCESSAUDIT":
		return core.EntrySuccessAudit, nil
	case "FAILUREAUDIT":
		return core.EntryFailureAudit, nil
	default:
		return core.EntryInformation, errors.Errorf("unknown entry type %q", s)
	}
}
