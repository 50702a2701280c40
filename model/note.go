package model

// Note is one row of the melody note matrix. Onset and Duration are in
// steps.
type Note struct {
	Onset    int
	Pitch    int
	Duration int
}

func (n Note) End() int {
	return n.Onset + n.Duration
}

// RawEvent is a (pitch, duration) pair as it appears in a melody file.
// Pitch 0 is silence.
type RawEvent struct {
	Pitch    int
	Duration int
}

// RawChord is a chord symbol with its duration in beats.
type RawChord struct {
	Symbol   string
	Duration int
}
