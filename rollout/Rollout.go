// Package rollout implements batched policy evaluation, where a group
// of environments is run in lockstep under a single policy
package rollout

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/samuelfneumann/gorollout/agent"
	"github.com/samuelfneumann/gorollout/environment"
	"github.com/samuelfneumann/gorollout/history"
	"github.com/samuelfneumann/gorollout/rollout/tracker"
	"github.com/samuelfneumann/gorollout/utils/progressbar"
	"golang.org/x/exp/rand"
)

// Environment is the windowed environment surface that a Rollout
// drives. It is implemented by *wrappers.Sequence.
type Environment interface {
	// Seed reseeds the environment's source of randomness
	Seed(seed uint64)

	// Reset starts a new episode and returns its starting window
	Reset() (history.Snapshot, error)

	// Step takes an action in the environment, returning the updated
	// window, the reward for the action, whether the episode has
	// finished, and auxiliary diagnostic information
	Step(action int) (history.Snapshot, float64, bool,
		environment.Info, error)

	// MaxEpisodeSteps returns the maximum number of steps an episode
	// may last before being cut off
	MaxEpisodeSteps() int
}

// Config describes how a Rollout evaluates its policy
type Config struct {
	// NumEpisodes is the total number of episodes to evaluate. It
	// must be a positive multiple of the number of environments, so
	// that episodes divide evenly into rounds.
	NumEpisodes int

	// StepBudget caps the number of lockstep ticks in a single round.
	// If StepBudget is 0 or negative, the environments' episode
	// cutoff is used.
	StepBudget int

	// LogInterval is the number of ticks between progress log lines
	// within a round. If LogInterval is 0, progress logging is
	// disabled.
	LogInterval int

	// Seed seeds the drawing of per-episode seeds
	Seed uint64

	// Parallel steps the environments concurrently within each tick.
	// Environments must then not share mutable state.
	Parallel bool

	// Progress displays a progress bar for each round
	Progress bool
}

// Rollout evaluates a policy over a fixed number of episodes by
// running a group of environments in lockstep. Each round of
// evaluation runs one episode per environment: every environment is
// reset, and then on every tick the policy selects one action per
// environment from the batched rolling windows and every environment
// takes its action.
//
// Environments finish their episodes at different ticks. Once an
// environment's episode has finished, the environment keeps being
// stepped so that the batch stays rectangular, but its rewards no
// longer count towards its episodic return. A round ends when every
// environment has finished or the step budget runs out.
//
// Each episode draws its own seed from the Config's seed, so a
// Rollout's results are reproducible given the same environments and
// policy. If the policy implements agent.Seeder, it is reseeded at
// the start of every round.
type Rollout struct {
	envs     []Environment
	policy   agent.Policy
	config   Config
	trackers []tracker.Tracker
}

// New creates and returns a new Rollout which evaluates the policy p
// across envs. The t parameter is a slice of tracker.Tracker which
// determine what data is saved.
//
// All configuration is validated here, before any environment or
// policy is touched, so a misconfigured Rollout fails before side
// effects.
func New(envs []Environment, p agent.Policy, c Config,
	t ...tracker.Tracker) (*Rollout, error) {
	if len(envs) == 0 {
		return nil, &Error{Op: "new", Err: errNoEnvironments}
	}
	if p == nil {
		return nil, &Error{Op: "new", Err: errNilPolicy}
	}
	if c.NumEpisodes <= 0 {
		return nil, &Error{Op: "new", Err: errNoEpisodes}
	}
	if c.NumEpisodes%len(envs) != 0 {
		return nil, &Error{Op: "new", Err: errIndivisibleEpisodes}
	}

	return &Rollout{
		envs:     envs,
		policy:   p,
		config:   c,
		trackers: t,
	}, nil
}

// Register registers a tracker.Tracker with the Rollout so that data
// generated during the run can be tracked and saved
func (r *Rollout) Register(t tracker.Tracker) {
	r.trackers = append(r.trackers, t)
}

// Run evaluates the policy and returns one return per episode.
// Returns are ordered round by round, and within a round by
// environment slot, so episode i was run on environment i modulo the
// number of environments.
//
// If any environment fails to reset or step, the run stops and an
// *EnvironmentFault describing the failure is returned.
func (r *Rollout) Run() ([]float64, error) {
	numEnvs := len(r.envs)
	rounds := r.config.NumEpisodes / numEnvs

	budget := r.config.StepBudget
	if budget <= 0 {
		budget = r.envs[0].MaxEpisodeSteps()
	}

	// One seed per episode, drawn up front so that the full schedule
	// is reproducible and loggable
	rng := rand.New(rand.NewSource(r.config.Seed))
	seeds := make([]uint64, r.config.NumEpisodes)
	for i := range seeds {
		seeds[i] = uint64(rng.Uint32())
	}
	log.Printf("seeds: %v", seeds)

	returns := make([]float64, 0, r.config.NumEpisodes)
	for round := 0; round < rounds; round++ {
		roundSeeds := seeds[round*numEnvs : (round+1)*numEnvs]

		rewSum, err := r.runRound(roundSeeds, budget)
		if err != nil {
			return nil, err
		}

		for _, episodeReturn := range rewSum {
			r.track(episodeReturn)
		}
		returns = append(returns, rewSum...)
	}

	return returns, nil
}

// runRound runs one episode on every environment in lockstep and
// returns the episodic return of each environment slot
func (r *Rollout) runRound(seeds []uint64, budget int) ([]float64,
	error) {
	numEnvs := len(r.envs)

	if s, ok := r.policy.(agent.Seeder); ok {
		s.Seed(seeds[0])
	}

	windows := make([]history.Snapshot, numEnvs)
	for i, env := range r.envs {
		env.Seed(seeds[i])

		window, err := env.Reset()
		if err != nil {
			return nil, &EnvironmentFault{Slot: i, Op: "run", Err: err}
		}
		windows[i] = window
	}

	done := make([]bool, numEnvs)
	rewSum := make([]float64, numEnvs)

	var bar *progressbar.ProgressBar
	if r.config.Progress {
		bar = progressbar.New(25, budget)
		defer bar.Close()
	}

	start := time.Now()
	for t := 0; t < budget; t++ {
		batch, err := agent.NewBatch(windows)
		if err != nil {
			return nil, fmt.Errorf("run: could not batch windows: %v",
				err)
		}
		actions, err := r.policy.SelectActions(batch)
		if err != nil {
			return nil, fmt.Errorf("run: could not select actions: %v",
				err)
		}
		if len(actions) != numEnvs {
			return nil, fmt.Errorf("run: policy selected %v actions "+
				"for %v environments", len(actions), numEnvs)
		}

		results := r.stepAll(actions)
		for i := range results {
			if results[i].err != nil {
				return nil, &EnvironmentFault{
					Slot: i,
					Op:   "run",
					Err:  results[i].err,
				}
			}
		}

		// An environment stays done once its episode has finished,
		// and rewards earned from the finishing step onwards are not
		// credited to the episode's return
		for i := range results {
			windows[i] = results[i].window
			done[i] = results[i].done || done[i]
			if !done[i] {
				rewSum[i] += results[i].reward
			}
		}

		if r.config.LogInterval > 0 && t%r.config.LogInterval == 0 {
			elapsed := time.Since(start).Seconds()
			fps := 0.0
			if elapsed > 0 {
				fps = float64(numEnvs*t) / elapsed
			}
			log.Printf("step: %v, fps: %.2f, done: %v, rewSum: %v", t,
				fps, asInts(done), rewSum)
		}
		if bar != nil {
			bar.Increment()
		}

		if all(done) {
			break
		}
	}

	return rewSum, nil
}

// stepResult holds the outcome of stepping a single environment
type stepResult struct {
	window history.Snapshot
	reward float64
	done   bool
	err    error
}

// stepAll takes one action in every environment, sequentially or
// concurrently depending on the configuration. Result i corresponds
// to environment i regardless of completion order.
func (r *Rollout) stepAll(actions []int) []stepResult {
	results := make([]stepResult, len(r.envs))

	if !r.config.Parallel {
		for i, env := range r.envs {
			results[i] = step(env, actions[i])
		}
		return results
	}

	var wait sync.WaitGroup
	wait.Add(len(r.envs))
	for i := range r.envs {
		go func(slot int) {
			defer wait.Done()
			results[slot] = step(r.envs[slot], actions[slot])
		}(i)
	}
	wait.Wait()

	return results
}

// step takes a single action in a single environment
func step(env Environment, action int) stepResult {
	window, reward, done, _, err := env.Step(action)
	return stepResult{
		window: window,
		reward: reward,
		done:   done,
		err:    err,
	}
}

// Save saves all the data cached by the Trackers to disk
func (r *Rollout) Save() {
	for _, t := range r.trackers {
		t.Save()
	}
}

// track records a finished episode's return in each Tracker
func (r *Rollout) track(episodeReturn float64) {
	for _, t := range r.trackers {
		t.Track(episodeReturn)
	}
}

// all returns whether every element of bools is true
func all(bools []bool) bool {
	for _, b := range bools {
		if !b {
			return false
		}
	}
	return true
}

// asInts converts done flags to 0s and 1s for compact logging
func asInts(bools []bool) []int {
	ints := make([]int, len(bools))
	for i, b := range bools {
		if b {
			ints[i] = 1
		}
	}
	return ints
}
