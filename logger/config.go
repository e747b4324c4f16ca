package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/titanous/json5"

	"github.com/dnlrv/scriptlog/core"
)

// DefaultEventLogName is the event log new sources are written to when
// no log name is configured.
const DefaultEventLogName = "Application"

// Config holds the process-wide logging configuration. It is read once
// by New and never consulted again; build a second Logger for a second
// configuration.
type Config struct {
	// Facility is the syslog facility code (default 16, "local use 0").
	// Facility 0 belongs to the kernel, which an application logger
	// cannot legitimately claim, so the zero value selects the default.
	Facility int

	// Threshold is the least severe severity still delivered to sinks.
	// Lower codes are more severe: Debug (7) admits everything,
	// Emergency (0) admits only emergencies. The zero value is
	// Emergency; use DefaultConfig for the permissive default.
	Threshold Severity

	// FilePath is the flat-file sink's path, required when Target
	// includes the flat file
	FilePath string

	// Target selects the sink set (default: TargetFlatFile)
	Target Target

	// Format selects the wire layout (default: FormatRFC3164)
	Format Format

	// EventSource and EventLogName identify the registered event-log
	// source, required when Target includes the event viewer
	EventSource  string
	EventLogName string

	// Tag overrides the TAG / APP-NAME field. When empty, each record
	// is tagged with the name of the invoking function.
	Tag string

	// Hostname overrides the HOSTNAME field (default: os.Hostname())
	Hostname string

	// Verbose echoes every formatted line to EchoWriter, regardless of
	// the threshold
	Verbose bool

	// EchoWriter receives verbose echoes (default: os.Stderr)
	EchoWriter io.Writer

	// StrictTimestamps renders RFC 5424 timestamps per the RFC instead
	// of the legacy 12-hour rendering
	StrictTimestamps bool
}

// DefaultConfig returns a Config with the standard defaults: facility
// 16, threshold Debug (everything passes), flat-file target, RFC 3164
// format, "Application" event log.
func DefaultConfig() Config {
	return Config{
		Facility:     core.DefaultFacility,
		Threshold:    DebugLevel,
		Target:       TargetFlatFile,
		Format:       FormatRFC3164,
		EventLogName: DefaultEventLogName,
	}
}

// fileConfig is the JSON5 shape of a config file. Variant fields are
// strings so files stay readable.
type fileConfig struct {
	Facility         *int   `json:"facility"`
	Threshold        string `json:"threshold"`
	FilePath         string `json:"file"`
	Target           string `json:"target"`
	Format           string `json:"format"`
	EventSource      string `json:"source"`
	EventLogName     string `json:"logName"`
	Tag              string `json:"tag"`
	Hostname         string `json:"hostname"`
	Verbose          bool   `json:"verbose"`
	StrictTimestamps bool   `json:"strictTimestamps"`
}

// LoadConfig reads a JSON5 config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	var fc fileConfig
	if err := json5.Unmarshal(data, &fc); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	if fc.Facility != nil {
		cfg.Facility = *fc.Facility
	}
	if fc.Threshold != "" {
		if cfg.Threshold, err = ParseSeverity(fc.Threshold); err != nil {
			return cfg, errors.Wrapf(err, "config %s", path)
		}
	}
	if fc.Target != "" {
		if cfg.Target, err = ParseTarget(fc.Target); err != nil {
			return cfg, errors.Wrapf(err, "config %s", path)
		}
	}
	if fc.Format != "" {
		if cfg.Format, err = ParseFormat(fc.Format); err != nil {
			return cfg, errors.Wrapf(err, "config %s", path)
		}
	}
	if fc.EventLogName != "" {
		cfg.EventLogName = fc.EventLogName
	}
	cfg.FilePath = fc.FilePath
	cfg.EventSource = fc.EventSource
	cfg.Tag = fc.Tag
	cfg.Hostname = fc.Hostname
	cfg.Verbose = fc.Verbose
	cfg.StrictTimestamps = fc.StrictTimestamps

	return cfg, nil
}
