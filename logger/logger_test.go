package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/dnlrv/scriptlog/core"
	"github.com/dnlrv/scriptlog/formatter"
	"github.com/dnlrv/scriptlog/sink"
)

// captureSink records everything the dispatcher hands it.
type captureSink struct {
	lines      []string
	severities []core.Severity
	entryTypes []core.EntryType
	msgIDs     []string
	err        error
	closed     bool
}

func (c *captureSink) Write(rec *core.Record, line []byte) error {
	if c.err != nil {
		return c.err
	}
	c.lines = append(c.lines, string(line))
	c.severities = append(c.severities, rec.Severity)
	c.entryTypes = append(c.entryTypes, rec.EntryType)
	c.msgIDs = append(c.msgIDs, rec.MsgID)
	return nil
}

func (c *captureSink) Close() error {
	c.closed = true
	return nil
}

func newTestLogger(s sink.Sink, threshold Severity) *Logger {
	return &Logger{
		formatter: formatter.NewRFC3164Formatter(formatter.Config{Hostname: "testhost"}),
		sinks:     s,
		threshold: threshold,
		facility:  core.DefaultFacility,
		tag:       "test",
	}
}

func TestLogger_ThresholdMatrix(t *testing.T) {
	// A message passes iff severity_code <= threshold, for all 64
	// combinations.
	for threshold := EmergencyLevel; threshold <= DebugLevel; threshold++ {
		for severity := EmergencyLevel; severity <= DebugLevel; severity++ {
			cap := &captureSink{}
			l := newTestLogger(cap, threshold)

			if err := l.Write("m", WithSeverity(severity)); err != nil {
				t.Fatalf("Write(threshold=%d, severity=%d) error = %v", threshold, severity, err)
			}

			passed := len(cap.lines) == 1
			want := severity <= threshold
			if passed != want {
				t.Errorf("threshold=%d severity=%d: passed=%v, want %v", threshold, severity, passed, want)
			}
		}
	}
}

func TestLogger_ThresholdErrorAdmitsTopFour(t *testing.T) {
	// threshold=ERROR(3) admits severities {0,1,2,3}, rejects {4..7}.
	cap := &captureSink{}
	l := newTestLogger(cap, ErrorLevel)

	for severity := EmergencyLevel; severity <= DebugLevel; severity++ {
		l.Write("m", WithSeverity(severity))
	}

	if len(cap.lines) != 4 {
		t.Errorf("Expected 4 delivered messages, got %d", len(cap.lines))
	}
	for _, s := range cap.severities {
		if s > ErrorLevel {
			t.Errorf("Severity %d leaked past an ERROR threshold", s)
		}
	}
}

func TestLogger_RejectedMessageIsNotAnError(t *testing.T) {
	// threshold=ERROR, severity=DEBUG: no sink write, nil error.
	cap := &captureSink{}
	l := newTestLogger(cap, ErrorLevel)

	if err := l.Write("chatty", WithSeverity(DebugLevel)); err != nil {
		t.Errorf("Write() error = %v, want nil for a suppressed message", err)
	}
	if len(cap.lines) != 0 {
		t.Errorf("Expected no sink writes, got %d", len(cap.lines))
	}
}

func TestLogger_PriorityScenario(t *testing.T) {
	// facility=16, severity=ERROR(3), threshold=DEBUG: line begins <131>.
	cap := &captureSink{}
	l := newTestLogger(cap, DebugLevel)

	if err := l.Write("disk full", WithSeverity(ErrorLevel)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if len(cap.lines) != 1 {
		t.Fatalf("Expected 1 delivered message, got %d", len(cap.lines))
	}
	if !strings.HasPrefix(cap.lines[0], "<131>") {
		t.Errorf("Expected line to begin with '<131>', got: %s", cap.lines[0])
	}
}

func TestLogger_EchoIndependence(t *testing.T) {
	// Verbose echo fires even when the threshold rejects the message,
	// and the rejected message still reaches no sink.
	var echo bytes.Buffer
	cap := &captureSink{}
	l := newTestLogger(cap, EmergencyLevel)
	l.echo = &echo

	if err := l.Write("rejected but echoed", WithSeverity(DebugLevel)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if !strings.Contains(echo.String(), "rejected but echoed") {
		t.Errorf("Expected message on the echo writer, got: %q", echo.String())
	}
	if !strings.HasSuffix(echo.String(), "\n") {
		t.Errorf("Expected newline-terminated echo, got: %q", echo.String())
	}
	if len(cap.lines) != 0 {
		t.Errorf("Expected no sink writes, got %d", len(cap.lines))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("console gone")
}

func TestLogger_EchoFailureNeverFailsTheCall(t *testing.T) {
	cap := &captureSink{}
	l := newTestLogger(cap, DebugLevel)
	l.echo = failingWriter{}

	if err := l.Write("m", WithSeverity(InformationalLevel)); err != nil {
		t.Errorf("Write() error = %v, want nil despite echo failure", err)
	}
	if len(cap.lines) != 1 {
		t.Errorf("Expected the sink write to proceed, got %d writes", len(cap.lines))
	}
}

func TestLogger_SinkErrorSurfaces(t *testing.T) {
	cap := &captureSink{err: errors.New("disk detached")}
	l := newTestLogger(cap, DebugLevel)

	err := l.Write("m", WithSeverity(ErrorLevel))
	if err == nil {
		t.Fatal("Expected the sink error to surface")
	}
	if !strings.Contains(err.Error(), "disk detached") {
		t.Errorf("Expected the underlying cause in the error, got: %v", err)
	}
}

func TestLogger_FacilityOverride(t *testing.T) {
	cap := &captureSink{}
	l := newTestLogger(cap, DebugLevel)

	// facility=4, severity=WARNING(4) -> 4*8+4 = 36
	if err := l.Write("m", WithFacility(4), WithSeverity(WarningLevel)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.HasPrefix(cap.lines[0], "<36>") {
		t.Errorf("Expected '<36>' prefix, got: %s", cap.lines[0])
	}
}

func TestLogger_ConvenienceMethods(t *testing.T) {
	tests := []struct {
		name      string
		log       func(l *Logger) error
		severity  core.Severity
		entryType core.EntryType
	}{
		{"Emerg", func(l *Logger) error { return l.Emerg("m") }, core.Emergency, core.EntryError},
		{"Alert", func(l *Logger) error { return l.Alert("m") }, core.Alert, core.EntryError},
		{"Crit", func(l *Logger) error { return l.Crit("m") }, core.Critical, core.EntryError},
		{"Err", func(l *Logger) error { return l.Err("m") }, core.Error, core.EntryError},
		{"Warning", func(l *Logger) error { return l.Warning("m") }, core.Warning, core.EntryWarning},
		{"Notice", func(l *Logger) error { return l.Notice("m") }, core.Notice, core.EntryInformation},
		{"Info", func(l *Logger) error { return l.Info("m") }, core.Informational, core.EntryInformation},
		{"Debug", func(l *Logger) error { return l.Debug("m") }, core.Debug, core.EntryInformation},
		{"Errf", func(l *Logger) error { return l.Errf("m %d", 1) }, core.Error, core.EntryError},
		{"Warningf", func(l *Logger) error { return l.Warningf("m %d", 1) }, core.Warning, core.EntryWarning},
		{"Infof", func(l *Logger) error { return l.Infof("m %d", 1) }, core.Informational, core.EntryInformation},
		{"Debugf", func(l *Logger) error { return l.Debugf("m %d", 1) }, core.Debug, core.EntryInformation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cap := &captureSink{}
			l := newTestLogger(cap, DebugLevel)

			if err := tt.log(l); err != nil {
				t.Fatalf("%s() error = %v", tt.name, err)
			}
			if len(cap.severities) != 1 {
				t.Fatalf("Expected 1 delivered message, got %d", len(cap.severities))
			}
			if cap.severities[0] != tt.severity {
				t.Errorf("Severity = %v, want %v", cap.severities[0], tt.severity)
			}
			if cap.entryTypes[0] != tt.entryType {
				t.Errorf("EntryType = %v, want %v", cap.entryTypes[0], tt.entryType)
			}
		})
	}
}

func TestLogger_ConvenienceOptionsWin(t *testing.T) {
	// Options passed by the caller override the implied defaults.
	cap := &captureSink{}
	l := newTestLogger(cap, DebugLevel)

	if err := l.Err("m", WithEntryType(core.EntryFailureAudit)); err != nil {
		t.Fatalf("Err() error = %v", err)
	}
	if cap.entryTypes[0] != core.EntryFailureAudit {
		t.Errorf("EntryType = %v, want EntryFailureAudit", cap.entryTypes[0])
	}
}

func TestLogger_CallerTag(t *testing.T) {
	cap := &captureSink{}
	l := newTestLogger(cap, DebugLevel)
	l.tag = ""

	if err := l.Write("m", WithSeverity(InformationalLevel)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(cap.lines[0], "TestLogger_CallerTag:m") {
		t.Errorf("Expected the calling function as tag, got: %s", cap.lines[0])
	}
}

func TestLogger_AutoMsgID(t *testing.T) {
	cap := &captureSink{}
	l := newTestLogger(cap, DebugLevel)

	if err := l.Write("m", WithSeverity(InformationalLevel), WithAutoMsgID()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if cap.msgIDs[0] == "-" || len(cap.msgIDs[0]) != 36 {
		t.Errorf("Expected a generated MSGID, got: %q", cap.msgIDs[0])
	}
}

func TestNew_FlatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.log")

	cfg := DefaultConfig()
	cfg.FilePath = path
	cfg.Hostname = "testhost"
	cfg.Tag = "suite"

	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := l.Info("hello from the suite"); err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "<134>") {
		t.Errorf("Expected '<134>' prefix, got: %q", got)
	}
	if !strings.Contains(got, "testhost suite:hello from the suite\n") {
		t.Errorf("Unexpected file content: %q", got)
	}
}

func TestNew_UnknownTarget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target = Target(9)
	if _, err := New(cfg); err == nil {
		t.Error("Expected error for unknown target")
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = Format(9)
	if _, err := New(cfg); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestNew_FlatFileRequiresPath(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := New(cfg); err == nil {
		t.Error("Expected error when the flat-file target has no path")
	}
}
