// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings after config and flags are merged.
type Config struct {
	ChunkSize  int
	Sound      bool
	FeedbackMs int
	MismatchMs int

	DrillWords int
	CapsPct    float64
	PunctPct   float64
	PunctSet   string
	WordList   string
}

// FeedbackDelay is how long a correct key stays highlighted.
func (c Config) FeedbackDelay() time.Duration {
	return time.Duration(c.FeedbackMs) * time.Millisecond
}

// MismatchDelay is how long a wrong key stays highlighted.
func (c Config) MismatchDelay() time.Duration {
	return time.Duration(c.MismatchMs) * time.Millisecond
}

// TextEntry is a practice text saved in the library.
type TextEntry struct {
	Name    string
	Body    string
	AddedAt time.Time
}
