package gym_test

import (
	"testing"

	"github.com/samuelfneumann/gorollout/environment/gym"
)

// TestAtariName checks the conversion from plain game names to Gym
// registry names.
func TestAtariName(t *testing.T) {
	tests := []struct {
		game string
		want string
	}{
		{"breakout", "BreakoutNoFrameskip-v4"},
		{"pong", "PongNoFrameskip-v4"},
		{"ms_pacman", "MsPacmanNoFrameskip-v4"},
		{"kung_fu_master", "KungFuMasterNoFrameskip-v4"},
		{"up_n_down", "UpNDownNoFrameskip-v4"},
	}

	for _, test := range tests {
		if got := gym.AtariName(test.game); got != test.want {
			t.Errorf("%v: expected %v, got %v", test.game, test.want,
				got)
		}
	}
}

// TestAtariEpisodeSteps ensures that the suite's frame limit and the
// action repeat agree with the episode cutoff.
func TestAtariEpisodeSteps(t *testing.T) {
	if gym.AtariEpisodeSteps != 27000 {
		t.Errorf("expected a 27000 step cutoff, got %v",
			gym.AtariEpisodeSteps)
	}
}
