package model

// Chroma is a 12 pitch class indicator. After parsing, index i is pitch
// class i (0 = C).
type Chroma = [12]uint8

// Chord is one row of the chord segment matrix. Onset and Duration are in
// beats. Bass is the bass interval relative to Root.
type Chord struct {
	Onset    int
	Root     int
	Chroma   Chroma
	Bass     int
	Duration int
}

func (c Chord) End() int {
	return c.Onset + c.Duration
}

// IsNoChord reports whether the segment carries no harmony ("N").
func (c Chord) IsNoChord() bool {
	return c.Root < 0
}
