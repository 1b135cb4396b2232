// Package policy provides built-in policies for driving evaluations
package policy

import (
	"fmt"

	"github.com/samuelfneumann/gorollout/agent"
	"golang.org/x/exp/rand"
)

// Uniform selects actions uniformly at random from a discrete action
// set. It is the reference policy for exercising evaluation loops and
// for measuring the random-play baselines that normalized scores are
// computed against.
type Uniform struct {
	numActions int
	rng        *rand.Rand
}

// NewUniform returns a new Uniform policy over an action set of
// numActions actions, labelled 0 through numActions - 1
func NewUniform(numActions int, seed uint64) (*Uniform, error) {
	if numActions < 1 {
		return nil, fmt.Errorf("newUniform: number of actions must be "+
			"positive \n\twant(>= 1) \n\thave(%v)", numActions)
	}

	return &Uniform{
		numActions: numActions,
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}

// SelectActions returns one uniformly random action per window in b
func (u *Uniform) SelectActions(b *agent.Batch) ([]int, error) {
	if b == nil {
		return nil, fmt.Errorf("selectActions: no batch to select " +
			"actions for")
	}

	actions := make([]int, b.BatchSize())
	for i := range actions {
		actions[i] = u.rng.Intn(u.numActions)
	}
	return actions, nil
}

// Seed reseeds the policy's action selection, so that the following
// draws are reproducible
func (u *Uniform) Seed(seed uint64) {
	u.rng = rand.New(rand.NewSource(seed))
}

// NumActions returns the size of the action set
func (u *Uniform) NumActions() int {
	return u.numActions
}
