package tracker

import (
	"encoding/gob"
	"log"
	"os"
)

// Return tracks and saves the episodic returns of an evaluation run.
// The evaluation loop credits each episode's return once the episode
// finishes, and Return records the returns in that order.
//
// Note: if an environment is wrapped by some environment wrapper
// which modifies rewards, then this Tracker tracks the returns of the
// modified rewards returned by the wrapped environment.
type Return struct {
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn(filename string) Tracker {
	return &Return{filename: filename}
}

// Track records the return of a single finished episode
func (r *Return) Track(episodeReturn float64) {
	r.episodeReturns = append(r.episodeReturns, episodeReturn)
}

// Save saves the data tracked by the Return Tracker to disk
func (r *Return) Save() {
	file, err := os.Create(r.filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(r.episodeReturns); err != nil {
		log.Fatalf("could not encode return data: %v", err)
	}
}
