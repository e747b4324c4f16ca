//go:build windows

package eventsource

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/sys/windows/svc/eventlog"
)

const eventLogKey = `SYSTEM\CurrentControlSet\Services\EventLog`

// isElevated is a variable so tests can simulate an unprivileged caller
var isElevated = func() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// isRegistered scans every event log for a subkey named source.
// Sources are global on a host, so a name claimed under any log counts
// as registered.
func isRegistered(source string) (bool, error) {
	root, err := registry.OpenKey(registry.LOCAL_MACHINE, eventLogKey, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return false, errors.Wrap(err, "open event log registry key")
	}
	defer root.Close()

	logs, err := root.ReadSubKeyNames(-1)
	if err != nil {
		return false, errors.Wrap(err, "enumerate event logs")
	}

	for _, logName := range logs {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, eventLogKey+`\`+logName+`\`+source, registry.QUERY_VALUE)
		if err == nil {
			k.Close()
			return true, nil
		}
	}
	return false, nil
}

// register installs source under logName with EventCreate's message
// file, so formatted lines render without an "unknown event ID" banner.
func register(source, logName string) error {
	const supports = uint32(eventlog.Error | eventlog.Warning | eventlog.Info)
	err := eventlog.Install(logName, source, `%SystemRoot%\System32\EventCreate.exe`, true, supports)
	return errors.Wrapf(err, "install source %q in log %q", source, logName)
}

// remove deletes the source's registry key wherever it was installed
func remove(source string) error {
	root, err := registry.OpenKey(registry.LOCAL_MACHINE, eventLogKey, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return errors.Wrap(err, "open event log registry key")
	}
	defer root.Close()

	logs, err := root.ReadSubKeyNames(-1)
	if err != nil {
		return errors.Wrap(err, "enumerate event logs")
	}

	for _, logName := range logs {
		path := eventLogKey + `\` + logName + `\` + source
		if k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE); err == nil {
			k.Close()
			return errors.Wrapf(registry.DeleteKey(registry.LOCAL_MACHINE, path), "delete source %q", source)
		}
	}
	return nil
}
