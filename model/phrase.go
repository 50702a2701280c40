package model

// Phrase is a labeled, contiguous range of measures.
type Phrase struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Length int    `json:"length"`
	Start  int    `json:"start"`
}

func (p Phrase) End() int {
	return p.Start + p.Length
}

// Span is a half open index range [Start, End) into a matrix.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Len() int {
	return s.End - s.Start
}

// PhraseInput is what a reducer receives for one phrase.
type PhraseInput struct {
	Phrase       Phrase
	Notes        []Note
	Chords       []Chord
	StartMeasure int
	NumMeasures  int
}

// Reduction holds one phrase's reducer output.
type Reduction struct {
	Notes   []Note
	Chords  []Chord
	Samples [][]Note
}
