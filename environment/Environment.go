// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Info holds auxiliary diagnostic data returned by an environmental
// step. Environments may return nil when no diagnostics exist.
type Info map[string]interface{}

// Environment implements a simulated environment with a discrete
// action set. Environments are reused across episodes: Reset starts a
// new episode and returns its first observation, and Step takes a
// single action in the current episode.
type Environment interface {
	// Seed reseeds the environment's source of randomness. The next
	// Reset after a Seed starts a reproducible episode.
	Seed(seed uint64)

	// Reset starts a new episode and returns its first observation
	Reset() (*mat.VecDense, error)

	// Step takes an action in the environment, returning the next
	// observation, the reward for the action, whether the episode
	// finished on this step, and auxiliary diagnostic information
	Step(action int) (*mat.VecDense, float64, bool, Info, error)

	// ObservationSpec returns the specification of observations
	ObservationSpec() Spec

	// ActionSpec returns the specification of the discrete action set
	ActionSpec() Spec

	// MaxEpisodeSteps returns the maximum number of steps an episode
	// may last before being cut off
	MaxEpisodeSteps() int

	// Close releases any resources held by the environment
	Close() error
}

// CloseAll closes every argument environment, returning the first
// error encountered. Later environments are still closed when an
// earlier Close fails, and nil environments are skipped, so a group
// whose construction failed partway can still be closed.
func CloseAll(envs ...Environment) error {
	var firstErr error
	for i, env := range envs {
		if env == nil {
			continue
		}
		if err := env.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closeAll: could not close "+
				"environment %v: %v", i, err)
		}
	}
	return firstErr
}
