package model

// Event is a note in absolute time.
type Event struct {
	Pitch uint8
	Start float64
	End   float64
}

type Track struct {
	Name   string
	Events []Event
}

// Score is everything the MIDI sink needs to write one file.
type Score struct {
	BPM         float64
	Numerator   uint8
	Denominator uint8
	Tracks      []Track
}
