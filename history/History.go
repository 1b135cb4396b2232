// Package history implements fixed-length rolling histories of
// agent-environment interaction
package history

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NoOpAction is the placeholder action recorded for timesteps whose
// action has not been chosen yet. Sequence policies treat it as the
// "no operation" sentinel.
const NoOpAction float64 = 0

// Window implements a fixed-capacity rolling record of the most
// recent timesteps seen by a single environment. For each timestep
// the Window stores the observation, the action taken at that
// observation, the reward received for that action, and a terminal
// flag. The four sequences always have equal length, at most the
// Window's capacity. Pushing to a full Window evicts the oldest
// timestep of all four sequences at once, so the Window always holds
// the most recent timesteps in order.
//
// A Window is owned by exactly one environment wrapper and is not
// safe for concurrent use.
type Window struct {
	capacity int
	obsSize  int

	// next is the backing index written by the next push and length
	// is the number of stored timesteps. The i-th oldest timestep
	// lives at backing index (next - length + i + capacity) % capacity.
	next   int
	length int

	obs       []float64 // capacity * obsSize, row-major
	actions   []float64
	rewards   []float64
	terminals []float64 // 1.0 = terminal, 0.0 = non-terminal
}

// NewWindow returns a new Window holding at most capacity timesteps
// of observations of length obsSize.
func NewWindow(capacity, obsSize int) (*Window, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("newWindow: capacity must be >= 1")
	}
	if obsSize < 1 {
		return nil, fmt.Errorf("newWindow: obsSize must be >= 1")
	}

	return &Window{
		capacity:  capacity,
		obsSize:   obsSize,
		obs:       make([]float64, capacity*obsSize),
		actions:   make([]float64, capacity),
		rewards:   make([]float64, capacity),
		terminals: make([]float64, capacity),
	}, nil
}

// Push appends a single timestep, evicting the oldest timestep first
// if the Window is full. Eviction and append are a single index
// advance, so callers never observe partially-updated state.
func (w *Window) Push(obs mat.Vector, action, reward float64,
	terminal bool) error {
	if obs.Len() != w.obsSize {
		return fmt.Errorf("push: invalid observation size \n\twant(%v)"+
			"\n\thave(%v)", w.obsSize, obs.Len())
	}

	start := w.next * w.obsSize
	for i := 0; i < w.obsSize; i++ {
		w.obs[start+i] = obs.AtVec(i)
	}
	w.actions[w.next] = action
	w.rewards[w.next] = reward
	if terminal {
		w.terminals[w.next] = 1
	} else {
		w.terminals[w.next] = 0
	}

	w.advance()
	return nil
}

// Pad appends n placeholder timesteps: a zero observation, the no-op
// action, zero reward, and a true terminal flag. Padding marks frames
// from before the current episode started, so a sequence policy can
// tell "nothing has happened yet" apart from a genuine episode
// boundary without inspecting the fill level of the Window.
func (w *Window) Pad(n int) {
	for i := 0; i < n; i++ {
		start := w.next * w.obsSize
		for j := 0; j < w.obsSize; j++ {
			w.obs[start+j] = 0
		}
		w.actions[w.next] = NoOpAction
		w.rewards[w.next] = 0
		w.terminals[w.next] = 1

		w.advance()
	}
}

// advance moves the write index forward over the oldest entry
func (w *Window) advance() {
	w.next = (w.next + 1) % w.capacity
	if w.length < w.capacity {
		w.length++
	}
}

// Reset empties the Window for reuse in a new episode. The backing
// storage is retained.
func (w *Window) Reset() {
	w.next = 0
	w.length = 0
}

// SetLastAction overwrites the action slot of the most recently
// pushed timestep. The action taken at a timestep is only known after
// that timestep has been observed and acted on, so callers push a
// placeholder first and fill the slot in once the action is chosen.
//
// SetLastAction panics if the Window is empty.
func (w *Window) SetLastAction(action float64) {
	w.actions[w.last()] = action
}

// SetLastReward overwrites the reward slot of the most recently
// pushed timestep. See SetLastAction for why the slot is filled in
// retroactively.
//
// SetLastReward panics if the Window is empty.
func (w *Window) SetLastReward(reward float64) {
	w.rewards[w.last()] = reward
}

// last returns the backing index of the most recently pushed timestep
func (w *Window) last() int {
	if w.length == 0 {
		panic("last: window is empty")
	}
	return (w.next - 1 + w.capacity) % w.capacity
}

// Len returns the number of timesteps currently stored in the Window
func (w *Window) Len() int {
	return w.length
}

// Capacity returns the maximum number of timesteps the Window stores
func (w *Window) Capacity() int {
	return w.capacity
}

// ObsSize returns the length of each stored observation
func (w *Window) ObsSize() int {
	return w.obsSize
}

// Snapshot packages a read-only copy of a Window's contents, ordered
// oldest timestep first. Observations are flattened row-major, so
// timestep i occupies Observations[i*ObsSize : (i+1)*ObsSize].
type Snapshot struct {
	Observations []float64
	Actions      []float64
	Rewards      []float64
	Terminals    []float64
	ObsSize      int
}

// Len returns the number of timesteps in the Snapshot
func (s Snapshot) Len() int {
	return len(s.Actions)
}

// Snapshot copies out the Window's current contents, oldest timestep
// first. The returned Snapshot does not alias the Window's backing
// storage, so later pushes never mutate it.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{
		Observations: make([]float64, w.length*w.obsSize),
		Actions:      make([]float64, w.length),
		Rewards:      make([]float64, w.length),
		Terminals:    make([]float64, w.length),
		ObsSize:      w.obsSize,
	}

	for i := 0; i < w.length; i++ {
		j := (w.next - w.length + i + w.capacity) % w.capacity
		copy(snap.Observations[i*w.obsSize:(i+1)*w.obsSize],
			w.obs[j*w.obsSize:(j+1)*w.obsSize])
		snap.Actions[i] = w.actions[j]
		snap.Rewards[i] = w.rewards[j]
		snap.Terminals[i] = w.terminals[j]
	}
	return snap
}
