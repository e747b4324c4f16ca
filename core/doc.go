// Package core contains the shared types of the scriptlog facility:
// the syslog Severity enumeration, the event-log EntryType
// classification, and the Record that carries one message from the
// caller through formatting and dispatch.
package core
