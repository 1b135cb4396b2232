// Package agent defines how policies consume evaluation data and
// select actions
package agent

import (
	"fmt"

	"github.com/samuelfneumann/gorollout/history"
	"gorgonia.org/tensor"
)

// Batch packages the rolling windows of a group of environments as
// dense tensors for a single forward pass of a policy. All windows in
// a Batch cover the same number of timesteps, so the tensors are
// rectangular.
//
// Terminal flags are not part of a Batch. They mark pre-episode
// padding inside each window, which policies recognize from the
// padding's placeholder values.
type Batch struct {
	// Observations has shape (batch, timesteps, observation size)
	Observations *tensor.Dense

	// Actions and Rewards have shape (batch, timesteps)
	Actions *tensor.Dense
	Rewards *tensor.Dense
}

// NewBatch packages the argument windows into a Batch. The windows
// must all have the same number of timesteps and the same observation
// size. Window i of the arguments becomes row i of the Batch.
func NewBatch(windows []history.Snapshot) (*Batch, error) {
	if len(windows) == 0 {
		return nil, fmt.Errorf("newBatch: no windows to batch")
	}

	steps := windows[0].Len()
	obsSize := windows[0].ObsSize

	obs := make([]float64, 0, len(windows)*steps*obsSize)
	actions := make([]float64, 0, len(windows)*steps)
	rewards := make([]float64, 0, len(windows)*steps)
	for i, w := range windows {
		if w.Len() != steps || w.ObsSize != obsSize {
			return nil, fmt.Errorf("newBatch: window %v has invalid "+
				"shape \n\twant(%v x %v) \n\thave(%v x %v)", i, steps,
				obsSize, w.Len(), w.ObsSize)
		}
		obs = append(obs, w.Observations...)
		actions = append(actions, w.Actions...)
		rewards = append(rewards, w.Rewards...)
	}

	return &Batch{
		Observations: tensor.New(
			tensor.WithShape(len(windows), steps, obsSize),
			tensor.WithBacking(obs),
		),
		Actions: tensor.New(
			tensor.WithShape(len(windows), steps),
			tensor.WithBacking(actions),
		),
		Rewards: tensor.New(
			tensor.WithShape(len(windows), steps),
			tensor.WithBacking(rewards),
		),
	}, nil
}

// BatchSize returns the number of windows in the Batch
func (b *Batch) BatchSize() int {
	return b.Observations.Shape()[0]
}

// Timesteps returns the number of timesteps each window covers
func (b *Batch) Timesteps() int {
	return b.Observations.Shape()[1]
}

// ObsSize returns the length of a single observation
func (b *Batch) ObsSize() int {
	return b.Observations.Shape()[2]
}

// Policy selects actions from batched rolling windows.
//
// SelectActions returns exactly one action per window in the Batch,
// with action i corresponding to window i. Policies are queried for
// every environment on every tick, including environments whose
// episode has already finished. The caller discards actions for
// finished environments, so policies need not track episode state.
type Policy interface {
	SelectActions(b *Batch) ([]int, error)
}

// Seeder is implemented by policies whose action selection can be
// reseeded for reproducible evaluation rounds
type Seeder interface {
	Seed(seed uint64)
}
