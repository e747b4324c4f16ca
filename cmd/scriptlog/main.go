// Command scriptlog writes one syslog-formatted line to a flat file
// and/or the OS event log, or registers an event-log source.
//
// Exit codes: 0 on success, 1 on a logging or sink failure, 2 when
// registration runs without elevation, 3 when the source is already
// registered.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/dnlrv/scriptlog/eventsource"
	"github.com/dnlrv/scriptlog/logger"
)

// cliArgs holds all command-line arguments passed to the tool.
type cliArgs struct {
	Register   bool
	Unregister bool
	Source     string
	LogName    string

	Config    string
	File      string
	Target    string
	Format    string
	Threshold string
	Facility  int
	Severity  string
	EntryType string
	EventID   int
	ProcID    string
	MsgID     string
	Tag       string
	SD        []string
	Verbose   bool
	Strict    bool
}

// parseCLIArgs parses the command-line flags into a cliArgs struct.
func parseCLIArgs() *cliArgs {
	args := &cliArgs{}

	flag.BoolVar(&args.Register, "register", false, "Register the event-log source named by -source and exit.")
	flag.BoolVar(&args.Unregister, "unregister", false, "Remove the event-log source named by -source and exit.")
	flag.StringVar(&args.Source, "source", "", "Event-log source name.")
	flag.StringVar(&args.LogName, "logname", "", "Event log to register the source under (default \"Application\").")

	flag.StringVar(&args.Config, "config", "", "Path to a JSON5 config file; flags override it.")
	flag.StringVar(&args.File, "file", "", "Flat-file sink path.")
	flag.StringVar(&args.Target, "target", "", "Log target: flatfile, eventviewer or both.")
	flag.StringVar(&args.Format, "format", "", "Line format: rfc3164 or rfc5424.")
	flag.StringVar(&args.Threshold, "threshold", "", "Severity threshold; messages less severe than this are suppressed.")
	flag.IntVar(&args.Facility, "facility", 0, "Syslog facility code (default 16).")
	flag.StringVar(&args.Severity, "severity", "info", "Severity of this message.")
	flag.StringVar(&args.EntryType, "entrytype", "", "Event-log classification: Information, Error, Warning, SuccessAudit or FailureAudit.")
	flag.IntVar(&args.EventID, "eventid", 0, "Event-log event ID (default 999).")
	flag.StringVar(&args.ProcID, "procid", "", "RFC 5424 PROCID field.")
	flag.StringVar(&args.MsgID, "msgid", "", "RFC 5424 MSGID field; \"auto\" generates one.")
	flag.StringVar(&args.Tag, "tag", "", "TAG / APP-NAME field (default: tool name).")
	flag.Func("sd", "RFC 5424 structured-data element; repeatable.", func(v string) error {
		args.SD = append(args.SD, v)
		return nil
	})
	flag.BoolVar(&args.Verbose, "verbose", false, "Echo the formatted line to stderr, regardless of the threshold.")
	flag.BoolVar(&args.Strict, "strict-timestamps", false, "Render RFC 5424 timestamps per the RFC instead of the legacy form.")
	flag.Parse()

	return args
}

func main() {
	os.Exit(run(parseCLIArgs()))
}

func run(args *cliArgs) int {
	if args.Register || args.Unregister {
		return runRegistration(args)
	}

	msg := strings.Join(flag.Args(), " ")
	if msg == "" {
		fmt.Fprintln(os.Stderr, "scriptlog: no message given")
		return 1
	}

	cfg, err := buildConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scriptlog: %v\n", err)
		return 1
	}

	l, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scriptlog: %v\n", err)
		return 1
	}
	defer l.Close()

	opts, err := buildOptions(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scriptlog: %v\n", err)
		return 1
	}

	if err := l.Write(msg, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "scriptlog: %v\n", err)
		return 1
	}
	return 0
}

func runRegistration(args *cliArgs) int {
	var err error
	if args.Register {
		err = eventsource.Register(args.Source, args.LogName)
	} else {
		err = eventsource.Remove(args.Source)
	}

	switch errors.Cause(err) {
	case nil:
		return 0
	case eventsource.ErrNotElevated:
		fmt.Fprintf(os.Stderr, "scriptlog: %v\n", err)
		return 2
	case eventsource.ErrAlreadyRegistered:
		fmt.Fprintf(os.Stderr, "scriptlog: %v\n", err)
		return 3
	default:
		fmt.Fprintf(os.Stderr, "scriptlog: %v\n", err)
		return 1
	}
}

// buildConfig layers flags over the config file over the defaults.
func buildConfig(args *cliArgs) (logger.Config, error) {
	cfg := logger.DefaultConfig()
	if args.Config != "" {
		var err error
		if cfg, err = logger.LoadConfig(args.Config); err != nil {
			return cfg, err
		}
	}

	if args.File != "" {
		cfg.FilePath = args.File
	}
	if args.Target != "" {
		t, err := logger.ParseTarget(args.Target)
		if err != nil {
			return cfg, err
		}
		cfg.Target = t
	}
	if args.Format != "" {
		f, err := logger.ParseFormat(args.Format)
		if err != nil {
			return cfg, err
		}
		cfg.Format = f
	}
	if args.Threshold != "" {
		s, err := logger.ParseSeverity(args.Threshold)
		if err != nil {
			return cfg, err
		}
		cfg.Threshold = s
	}
	if args.Facility != 0 {
		cfg.Facility = args.Facility
	}
	if args.Source != "" {
		cfg.EventSource = args.Source
	}
	if args.LogName != "" {
		cfg.EventLogName = args.LogName
	}
	if args.Tag != "" {
		cfg.Tag = args.Tag
	} else if cfg.Tag == "" {
		cfg.Tag = "scriptlog"
	}
	if args.Verbose {
		cfg.Verbose = true
	}
	if args.Strict {
		cfg.StrictTimestamps = true
	}
	return cfg, nil
}

// buildOptions turns per-message flags into record options.
func buildOptions(args *cliArgs) ([]logger.Option, error) {
	severity, err := logger.ParseSeverity(args.Severity)
	if err != nil {
		return nil, err
	}
	opts := []logger.Option{logger.WithSeverity(severity)}

	if args.EntryType != "" {
		t, err := logger.ParseEntryType(args.EntryType)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithEntryType(t))
	}
	if args.EventID != 0 {
		opts = append(opts, logger.WithEventID(args.EventID))
	}
	if args.ProcID != "" {
		opts = append(opts, logger.WithProcID(args.ProcID))
	}
	switch args.MsgID {
	case "":
	case "auto":
		opts = append(opts, logger.WithAutoMsgID())
	default:
		opts = append(opts, logger.WithMsgID(args.MsgID))
	}
	if len(args.SD) > 0 {
		opts = append(opts, logger.WithStructuredData(args.SD...))
	}
	return opts, nil
}
