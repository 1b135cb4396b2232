package rollout

import (
	"errors"
	"fmt"
)

// Error implements errors in the configuration of an evaluation run.
// Configuration errors are detected before any environment or policy
// is touched.
type Error struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

var errNoEnvironments error = errors.New("no environments to evaluate")

var errNoEpisodes = errors.New("number of episodes must be positive")

var errNilPolicy = errors.New("no policy to evaluate")

var errIndivisibleEpisodes = errors.New("number of episodes must be " +
	"divisible by the number of environments")

// IsConfigError returns whether or not an error reports that an
// evaluation run was misconfigured. A misconfigured run performs no
// environment interaction at all.
func IsConfigError(err error) bool {
	if rolloutErr, ok := err.(*Error); ok {
		err = rolloutErr.Err
	}
	return err == errNoEnvironments || err == errNoEpisodes ||
		err == errNilPolicy || err == errIndivisibleEpisodes
}

// EnvironmentFault implements errors reported by an environment while
// an evaluation run was in progress. The fault aborts the run's
// current round, and the underlying error is retained.
type EnvironmentFault struct {
	// Slot is the index of the failing environment within the run's
	// environment group
	Slot int

	Op  string
	Err error
}

// Error satisfies the error interface
func (e *EnvironmentFault) Error() string {
	return fmt.Sprintf("%v: environment %v: %v", e.Op, e.Slot, e.Err)
}

// Unwrap returns the wrapped error
func (e *EnvironmentFault) Unwrap() error {
	return e.Err
}

// IsEnvironmentFault returns whether or not an error reports that an
// environment failed during an evaluation run
func IsEnvironmentFault(err error) bool {
	_, ok := err.(*EnvironmentFault)
	return ok
}
