//go:build !windows

package eventsource

import "os"

// Non-Windows hosts log through syslog, which has no source registry.
// Register still enforces the elevation precondition so install
// scripts behave identically everywhere, then succeeds as a no-op.

// isElevated is a variable so tests can simulate an unprivileged caller
var isElevated = func() bool {
	return os.Geteuid() == 0
}

func isRegistered(string) (bool, error) {
	return false, nil
}

func register(string, string) error {
	return nil
}

func remove(string) error {
	return nil
}
