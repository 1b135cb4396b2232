// Package tracker implements Trackers, which record and save data
// from an evaluation run
package tracker

import (
	"encoding/gob"
	"log"
	"os"
)

// Interface Tracker keeps track of evaluation data and saves the data
// after the run has finished
type Tracker interface {
	// Track records the return of a single finished episode
	Track(episodeReturn float64)

	// Save persists the tracked data
	Save()
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) []float64 {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data []float64

	err = dec.Decode(&data)
	if err != nil {
		log.Fatalf("could not decode data: %v", err)
	}

	return data
}
