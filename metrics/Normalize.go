package metrics

import (
	"errors"
	"fmt"
)

// Baseline holds the reference scores of a single game: the score of
// random play and the score of a human player
type Baseline struct {
	Random float64
	Human  float64
}

// ScoreTable maps game names to their reference scores
type ScoreTable map[string]Baseline

// Error implements errors unique to score normalization
type Error struct {
	Op   string
	Game string
	Err  error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v: %v", e.Op, e.Err, e.Game)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

var errUnknownGame error = errors.New("no baseline scores for game")

// IsUnknownGame returns whether or not an error reports that a game
// has no baseline scores to normalize against
func IsUnknownGame(err error) bool {
	if normErr, ok := err.(*Error); ok {
		err = normErr.Err
	}
	return err == errUnknownGame
}

// Normalize converts a raw score on a game into a human-normalized
// score, where 0 corresponds to random play and 1 to human play
func (s ScoreTable) Normalize(game string, score float64) (float64,
	error) {
	baseline, ok := s[game]
	if !ok {
		return 0, &Error{Op: "normalize", Game: game, Err: errUnknownGame}
	}

	return (score - baseline.Random) / (baseline.Human - baseline.Random),
		nil
}

// NormalizeAll converts a collection of raw scores on a single game
// into human-normalized scores
func (s ScoreTable) NormalizeAll(game string, scores []float64) (
	[]float64, error) {
	normalized := make([]float64, len(scores))
	for i, score := range scores {
		n, err := s.Normalize(game, score)
		if err != nil {
			return nil, err
		}
		normalized[i] = n
	}
	return normalized, nil
}
