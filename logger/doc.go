// Package logger is the front end of the scriptlog facility. A Logger
// is built once from an explicit Config, then formats each message per
// the configured RFC layout, gates it on the severity threshold, and
// fans it out to the configured sinks, optionally echoing every line
// to an interactive console.
//
// Severity codes follow syslog: LOWER values are MORE severe. A
// threshold of Debug (7) therefore admits everything and a threshold
// of Emergency (0) admits only emergencies.
package logger
