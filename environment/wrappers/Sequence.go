package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gorollout/environment"
	"github.com/samuelfneumann/gorollout/history"
	"gonum.org/v1/gonum/mat"
)

// ObsTransform modifies a raw observation before it is recorded, for
// example to reproduce the lossy encoding that a policy's training
// data went through. Transforms must preserve the observation length.
// A nil ObsTransform leaves observations unchanged.
type ObsTransform func(*mat.VecDense) *mat.VecDense

// Sequence wraps an environment so that Reset and Step return the
// trailing window of interaction instead of a single observation. By
// wrapping an environment in a Sequence, a policy that conditions on
// the last K timesteps can be run against an environment that only
// reports the current one.
//
// Sequence itself implements windowed counterparts of the
// environment.Environment methods, and defers everything else to the
// embedded Environment.
//
// The window holds, per timestep, the observation, the action taken
// at that observation, the reward for that action, and a terminal
// flag. The action and reward for the newest timestep are unknown
// when the timestep is first recorded, so placeholders are pushed and
// then overwritten on the next Step. A Sequence therefore maintains
// the alignment that slot t holds the observation O_t, the action A_t
// chosen at O_t, and the reward R_t received for A_t.
//
// On Reset the window is padded with placeholder timesteps carrying a
// true terminal flag, so the returned window always has exactly
// stackSize entries. A policy can tell "before the episode started"
// apart from real interaction by those flags alone.
type Sequence struct {
	environment.Environment
	window    *history.Window
	stackSize int
	transform ObsTransform
}

// NewSequence creates and returns a new Sequence wrapping env. The
// stackSize parameter is the number of trailing timesteps reported by
// Reset and Step, and must be at least 1. The transform parameter may
// be nil, in which case observations are recorded as the embedded
// environment returns them.
func NewSequence(env environment.Environment, stackSize int,
	transform ObsTransform) (*Sequence, error) {
	if stackSize < 1 {
		return nil, fmt.Errorf("newSequence: stack size must be "+
			"positive \n\twant(>= 1) \n\thave(%v)", stackSize)
	}

	obsSize := env.ObservationSpec().Shape.Len()
	window, err := history.NewWindow(stackSize, obsSize)
	if err != nil {
		return nil, fmt.Errorf("newSequence: could not create "+
			"history window: %v", err)
	}

	return &Sequence{
		Environment: env,
		window:      window,
		stackSize:   stackSize,
		transform:   transform,
	}, nil
}

// Reset starts a new episode in the embedded environment and returns
// the starting window. The window holds stackSize - 1 placeholder
// timesteps followed by the episode's first observation, whose action
// and reward slots hold placeholders until the next Step.
func (s *Sequence) Reset() (history.Snapshot, error) {
	obs, err := s.Environment.Reset()
	if err != nil {
		return history.Snapshot{}, fmt.Errorf("reset: could not reset "+
			"embedded environment: %v", err)
	}
	obs = s.observe(obs)

	s.window.Reset()
	s.window.Pad(s.stackSize - 1)
	err = s.window.Push(obs, history.NoOpAction, 0, false)
	if err != nil {
		return history.Snapshot{}, fmt.Errorf("reset: could not record "+
			"observation: %v", err)
	}

	return s.window.Snapshot(), nil
}

// Step takes one step in the embedded environment given action and
// returns the updated window, the reward for the action, whether the
// episode has ended, and the embedded environment's diagnostic info.
//
// The action and the resulting reward are written into the newest
// window slot, which held placeholders until now, and the next
// observation is then pushed with fresh placeholders. The newest
// slot's terminal flag is false even when the episode ends, since
// only Reset records episode boundaries in the window.
//
// Step panics if called before Reset, since there is no slot to
// write the action into.
func (s *Sequence) Step(action int) (history.Snapshot, float64, bool,
	environment.Info, error) {
	s.window.SetLastAction(float64(action))

	obs, reward, done, info, err := s.Environment.Step(action)
	if err != nil {
		return history.Snapshot{}, 0, true, nil, fmt.Errorf("step: "+
			"could not step embedded environment: %v", err)
	}
	obs = s.observe(obs)

	s.window.SetLastReward(reward)
	err = s.window.Push(obs, history.NoOpAction, 0, false)
	if err != nil {
		return history.Snapshot{}, 0, true, nil, fmt.Errorf("step: "+
			"could not record observation: %v", err)
	}

	return s.window.Snapshot(), reward, done, info, nil
}

// observe applies the observation transform if one was set
func (s *Sequence) observe(obs *mat.VecDense) *mat.VecDense {
	if s.transform == nil {
		return obs
	}
	return s.transform(obs)
}

// ObservationSpec returns the observation specification of the
// wrapped environment. The single-timestep bounds of the embedded
// environment are tiled stackSize times to describe the flattened
// window.
func (s *Sequence) ObservationSpec() environment.Spec {
	inner := s.Environment.ObservationSpec()
	n := inner.Shape.Len()

	shape := mat.NewVecDense(n*s.stackSize, nil)
	low := mat.NewVecDense(n*s.stackSize, nil)
	high := mat.NewVecDense(n*s.stackSize, nil)
	for i := 0; i < s.stackSize; i++ {
		for j := 0; j < n; j++ {
			low.SetVec(i*n+j, inner.LowerBound.AtVec(j))
			high.SetVec(i*n+j, inner.UpperBound.AtVec(j))
		}
	}

	return environment.NewSpec(shape, environment.Observation, low, high,
		inner.Cardinality)
}

// StackSize returns the number of trailing timesteps reported by
// Reset and Step
func (s *Sequence) StackSize() int {
	return s.stackSize
}

// ObsSize returns the length of a single recorded observation
func (s *Sequence) ObsSize() int {
	return s.window.ObsSize()
}
