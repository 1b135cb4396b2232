// Package gym provides access to OpenAI Gym environments.
//
// Environments are constructed by name from the Gym registry. The
// NewAtari constructor builds the NoFrameskip-v4 variant of an Atari
// game from its plain name, which is the suite that evaluation runs
// use.
//
// This is made possible through the Go bindings for OpenAI Gym,
// found at https://github.com/samuelfneumann/gogym.
package gym

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gogym"
	env "github.com/samuelfneumann/gorollout/environment"
	"gonum.org/v1/gonum/mat"
)

// AtariEpisodeSteps is the maximum number of agent steps in a single
// Atari episode. The suite caps episodes at 108000 emulator frames,
// and the NoFrameskip-v4 environments repeat each action for 4 frames.
const AtariEpisodeSteps int = 108000 / 4

// GymEnv implements access to an OpenAI Gym environment using GoGym
type GymEnv struct {
	gogym.Environment

	maxEpisodeSteps int
}

// New returns a new GymEnv with the given name, which must be a legal
// name from the OpenAI Gym suite. The maxEpisodeSteps argument is the
// episode cutoff reported by MaxEpisodeSteps.
func New(name string, maxEpisodeSteps int, seed uint64) (env.Environment,
	error) {
	goGymEnv, err := gogym.Make(name)
	if err != nil {
		return nil, fmt.Errorf("new: could not create environment: %v",
			err)
	}
	goGymEnv.Seed(int(seed))

	return &GymEnv{
		Environment:     goGymEnv,
		maxEpisodeSteps: maxEpisodeSteps,
	}, nil
}

// NewAtari returns a new GymEnv for the Atari game with the given
// plain name, e.g. "breakout" or "ms_pacman". The NoFrameskip-v4
// variant of the game is constructed.
func NewAtari(game string, seed uint64) (env.Environment, error) {
	return New(AtariName(game), AtariEpisodeSteps, seed)
}

// AtariName converts a plain Atari game name such as "ms_pacman" into
// its Gym registry name, e.g. "MsPacmanNoFrameskip-v4"
func AtariName(game string) string {
	parts := strings.Split(game, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "") + "NoFrameskip-v4"
}

// Seed reseeds the environment's source of randomness
func (g *GymEnv) Seed(seed uint64) {
	g.Environment.Seed(int(seed))
}

// Reset resets the environment to some starting state
func (g *GymEnv) Reset() (*mat.VecDense, error) {
	obs, err := g.Environment.Reset()
	if err != nil {
		return nil, fmt.Errorf("reset: could not reset environment: %v",
			err)
	}
	return obs, nil
}

// Step takes a single environmental step
func (g *GymEnv) Step(action int) (*mat.VecDense, float64, bool,
	env.Info, error) {
	a := mat.NewVecDense(1, []float64{float64(action)})

	obs, reward, done, err := g.Environment.Step(a)
	if err != nil {
		return nil, 0, true, nil, fmt.Errorf("step: could not step "+
			"GoGym environment: %v", err)
	}
	return obs, reward, done, nil, nil
}

// ObservationSpec returns the observation spec of the environment
func (g *GymEnv) ObservationSpec() env.Spec {
	space := g.ObservationSpace()

	var low, high, shape *mat.VecDense
	cardinality := env.Continuous
	switch space.(type) {
	case *gogym.BoxSpace:
		low = space.Low()[0]
		high = space.High()[0]
		shape = mat.NewVecDense(low.Len(), nil)

	case *gogym.DiscreteSpace:
		low = space.Low()[0]
		high = space.High()[0]
		shape = mat.NewVecDense(low.Len(), nil)
		cardinality = env.Discrete

	default:
		panic("observationSpec: invalid space type, package gym supports " +
			"only GoGym's BoxSpace or DiscreteSpace")
	}

	return env.NewSpec(shape, env.Observation, low, high, cardinality)
}

// ActionSpec returns the action specification of the environment. For
// environments with a discrete action set, the bounds give the lowest
// and highest legal action.
func (g *GymEnv) ActionSpec() env.Spec {
	space := g.ActionSpace()

	var low, high, shape *mat.VecDense
	cardinality := env.Continuous
	switch space.(type) {
	case *gogym.BoxSpace:
		low = space.Low()[0]
		high = space.High()[0]
		shape = mat.NewVecDense(low.Len(), nil)

	case *gogym.DiscreteSpace:
		low = space.Low()[0]
		high = space.High()[0]
		shape = mat.NewVecDense(low.Len(), nil)
		cardinality = env.Discrete

	default:
		panic("actionSpec: invalid space type, package gym supports " +
			"only GoGym's BoxSpace or DiscreteSpace")
	}

	return env.NewSpec(shape, env.Action, low, high, cardinality)
}

// MaxEpisodeSteps returns the episode cutoff of the environment
func (g *GymEnv) MaxEpisodeSteps() int {
	return g.maxEpisodeSteps
}

// Close performs resource cleanup after the environment is no longer
// needed
func (g *GymEnv) Close() error {
	g.Environment.Close()
	return nil
}
