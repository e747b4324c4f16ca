//go:build !windows

package eventsource

import "testing"

func TestRegister_NoRegistryOutsideWindows(t *testing.T) {
	withElevation(t, true)

	// Syslog needs no registration; an elevated Register succeeds and
	// the source still reports as unregistered.
	if err := Register("ScriptLogTest", ""); err != nil {
		t.Errorf("Register() error = %v", err)
	}

	registered, err := IsRegistered("ScriptLogTest")
	if err != nil {
		t.Fatalf("IsRegistered() error = %v", err)
	}
	if registered {
		t.Error("Expected no source registry outside Windows")
	}
}

func TestRemove_NoRegistryOutsideWindows(t *testing.T) {
	withElevation(t, true)

	if err := Remove("ScriptLogTest"); err != nil {
		t.Errorf("Remove() error = %v", err)
	}
}
