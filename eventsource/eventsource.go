package eventsource

import "github.com/pkg/errors"

// DefaultLogName is the event log new sources are registered under
// when no log name is given.
const DefaultLogName = "Application"

var (
	// ErrNotElevated reports that the caller lacks the administrative
	// rights registration requires
	ErrNotElevated = errors.New("event source registration requires elevation")

	// ErrAlreadyRegistered reports that the source name is already
	// registered on this host
	ErrAlreadyRegistered = errors.New("event source is already registered")
)

// Register registers source under logName. The caller must be
// elevated; an existing source is an error, not a no-op, so scripts
// notice double installation. Both failures carry a distinct sentinel
// reachable through errors.Cause.
func Register(source, logName string) error {
	if source == "" {
		return errors.New("source name is required")
	}
	if logName == "" {
		logName = DefaultLogName
	}

	if !isElevated() {
		return errors.WithMessagef(ErrNotElevated, "register source %q", source)
	}

	registered, err := isRegistered(source)
	if err != nil {
		return errors.Wrapf(err, "check source %q", source)
	}
	if registered {
		return errors.WithMessagef(ErrAlreadyRegistered, "source %q", source)
	}

	return register(source, logName)
}

// IsRegistered reports whether source is registered on this host
func IsRegistered(source string) (bool, error) {
	if source == "" {
		return false, errors.New("source name is required")
	}
	return isRegistered(source)
}

// Remove unregisters source. Like Register, it requires elevation.
func Remove(source string) error {
	if source == "" {
		return errors.New("source name is required")
	}
	if !isElevated() {
		return errors.WithMessagef(ErrNotElevated, "remove source %q", source)
	}
	return remove(source)
}
