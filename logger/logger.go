package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/dnlrv/scriptlog/core"
	"github.com/dnlrv/scriptlog/formatter"
	"github.com/dnlrv/scriptlog/sink"
)

// Logger formats messages and dispatches them to the configured sinks
// (immutable after New)
type Logger struct {
	formatter formatter.Formatter
	sinks     sink.Sink
	echo      io.Writer
	threshold Severity
	facility  int
	tag       string
}

// New builds a Logger from cfg. The flat-file sink is opened and the
// event-log source resolved here, so a misconfigured target fails at
// startup rather than on the first write.
func New(cfg Config) (*Logger, error) {
	if cfg.Facility == 0 {
		cfg.Facility = core.DefaultFacility
	}
	if cfg.EventLogName == "" {
		cfg.EventLogName = DefaultEventLogName
	}

	fcfg := formatter.Config{
		Hostname:         cfg.Hostname,
		StrictTimestamps: cfg.StrictTimestamps,
	}
	var f formatter.Formatter
	switch cfg.Format {
	case FormatRFC3164:
		f = formatter.NewRFC3164Formatter(fcfg)
	case FormatRFC5424:
		f = formatter.NewRFC5424Formatter(fcfg)
	default:
		return nil, errors.Errorf("unknown log format %d", cfg.Format)
	}

	switch cfg.Target {
	case TargetFlatFile, TargetEventViewer, TargetBoth:
	default:
		return nil, errors.Errorf("unknown log target %d", cfg.Target)
	}

	var sinks []sink.Sink
	if cfg.Target == TargetFlatFile || cfg.Target == TargetBoth {
		fs, err := sink.NewFileSink(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fs)
	}
	if cfg.Target == TargetEventViewer || cfg.Target == TargetBoth {
		es, err := sink.NewEventLogSink(cfg.EventSource, cfg.EventLogName)
		if err != nil {
			for _, s := range sinks {
				_ = s.Close()
			}
			return nil, err
		}
		sinks = append(sinks, es)
	}

	var out sink.Sink
	if len(sinks) == 1 {
		out = sinks[0]
	} else {
		out = sink.NewMultiSink(sinks...)
	}

	var echo io.Writer
	if cfg.Verbose {
		echo = cfg.EchoWriter
		if echo == nil {
			echo = os.Stderr
		}
	}

	return &Logger{
		formatter: f,
		sinks:     out,
		echo:      echo,
		threshold: cfg.Threshold,
		facility:  cfg.Facility,
		tag:       cfg.Tag,
	}, nil
}

var newline = []byte{'\n'}

// Write formats msg and delivers it to the configured sinks when its
// severity passes the threshold. The severity defaults to Emergency
// (0); callers should always pick one, with WithSeverity or by using
// a severity-named method. Sink failures surface in the returned
// error; a suppressed message is not an error.
func (l *Logger) Write(msg string, opts ...Option) error {
	return l.write(msg, opts)
}

// write is the internal dispatch path. Every exported logging method
// sits exactly one frame above it so the caller-derived tag stays at a
// fixed depth.
func (l *Logger) write(msg string, opts []Option) error {
	rec := core.GetRecord()
	defer core.PutRecord(rec)

	rec.Message = msg
	rec.Facility = l.facility
	rec.Tag = l.tag
	for _, opt := range opts {
		opt(rec)
	}
	if rec.Tag == "" {
		rec.Tag = core.CallerTag(2)
	}

	line, err := l.formatter.Format(rec)
	if err != nil {
		return errors.Wrap(err, "format record")
	}

	// The echo ignores the threshold and never fails the call.
	if l.echo != nil {
		_, _ = l.echo.Write(line)
		_, _ = l.echo.Write(newline)
	}

	// Lower codes are more severe: the record passes when its code is
	// at or below the threshold.
	if rec.Severity > l.threshold {
		return nil
	}
	if l.sinks == nil {
		return nil
	}
	return l.sinks.Write(rec, line)
}

// withDefaults prepends the severity and entry type implied by a
// convenience method; caller options still win.
func withDefaults(s Severity, t core.EntryType, opts []Option) []Option {
	merged := make([]Option, 0, len(opts)+2)
	merged = append(merged, WithSeverity(s), WithEntryType(t))
	return append(merged, opts...)
}

// Emerg logs a message at Emergency severity
func (l *Logger) Emerg(msg string, opts ...Option) error {
	return l.write(msg, withDefaults(EmergencyLevel, core.EntryError, opts))
}

// Alert logs a message at Alert severity
func (l *Logger) Alert(msg string, opts ...Option) error {
	return l.write(msg, withDefaults(AlertLevel, core.EntryError, opts))
}

// Crit logs a message at Critical severity
func (l *Logger) Crit(msg string, opts ...Option) error {
	return l.write(msg, withDefaults(CriticalLevel, core.EntryError, opts))
}

// Err logs a message at Error severity
func (l *Logger) Err(msg string, opts ...Option) error {
	return l.write(msg, withDefaults(ErrorLevel, core.EntryError, opts))
}

// Warning logs a message at Warning severity
func (l *Logger) Warning(msg string, opts ...Option) error {
	return l.write(msg, withDefaults(WarningLevel, core.EntryWarning, opts))
}

// Notice logs a message at Notice severity
func (l *Logger) Notice(msg string, opts ...Option) error {
	return l.write(msg, withDefaults(NoticeLevel, core.EntryInformation, opts))
}

// Info logs a message at Informational severity
func (l *Logger) Info(msg string, opts ...Option) error {
	return l.write(msg, withDefaults(InformationalLevel, core.EntryInformation, opts))
}

// Debug logs a message at Debug severity
func (l *Logger) Debug(msg string, opts ...Option) error {
	return l.write(msg, withDefaults(DebugLevel, core.EntryInformation, opts))
}

// Errf logs a formatted message at Error severity
func (l *Logger) Errf(format string, args ...interface{}) error {
	return l.write(fmt.Sprintf(format, args...), withDefaults(ErrorLevel, core.EntryError, nil))
}

// Warningf logs a formatted message at Warning severity
func (l *Logger) Warningf(format string, args ...interface{}) error {
	return l.write(fmt.Sprintf(format, args...), withDefaults(WarningLevel, core.EntryWarning, nil))
}

// Infof logs a formatted message at Informational severity
func (l *Logger) Infof(format string, args ...interface{}) error {
	return l.write(fmt.Sprintf(format, args...), withDefaults(InformationalLevel, core.EntryInformation, nil))
}

// Debugf logs a formatted message at Debug severity
func (l *Logger) Debugf(format string, args ...interface{}) error {
	return l.write(fmt.Sprintf(format, args...), withDefaults(DebugLevel, core.EntryInformation, nil))
}

// Close closes the logger's sinks
func (l *Logger) Close() error {
	if l.sinks == nil {
		return nil
	}
	return l.sinks.Close()
}
