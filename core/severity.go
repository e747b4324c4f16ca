package core

// Severity is the syslog severity of a record. The ordering is the
// wire ordering: lower values are MORE severe, so Emergency is 0 and
// Debug is 7. Comparisons are purely numeric.
type Severity int8

const (
	// Emergency: system is unusable
	Emergency Severity = iota
	// Alert: action must be taken immediately
	Alert
	// Critical: critical conditions
	Critical
	// Error: error conditions
	Error
	// Warning: warning conditions
	Warning
	// Notice: normal but significant condition
	Notice
	// Informational: informational messages
	Informational
	// Debug: debug-level messages
	Debug
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Emergency:
		return "EMERGENCY"
	case Alert:
		return "ALERT"
	case Critical:
		return "CRITICAL"
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Notice:
		return "NOTICE"
	case Informational:
		return "INFORMATIONAL"
	case Debug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// EntryType is the event log's classification of a record. It is
// independent of the syslog severity encoding and only consulted when
// a record is written to the OS event log.
type EntryType int8

const (
	// EntryInformation is the default classification
	EntryInformation EntryType = iota
	// EntryError marks error events
	EntryError
	// EntryWarning marks warning events
	EntryWarning
	// EntrySuccessAudit marks audited security accesses that succeeded
	EntrySuccessAudit
	// EntryFailureAudit marks audited security accesses that failed
	EntryFailureAudit
)

// String returns the string representation of the entry type
func (t EntryType) String() string {
	switch t {
	case EntryInformation:
		return "Information"
	case EntryError:
		return "Error"
	case EntryWarning:
		return "Warning"
	case EntrySuccessAudit:
		return "SuccessAudit"
	case EntryFailureAudit:
		return "FailureAudit"
	default:
		return "Unknown"
	}
}
