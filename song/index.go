package song

import (
	"github.com/jsphweid/mcpreduce/model"
)

// sweep assigns each phrase the run of events whose beat falls before the
// phrase's end beat, in one pass that never rescans. The last phrase takes
// whatever is left.
func sweep(phrases []model.Phrase, n int, beatOf func(i int) int, beatsPerMeasure int) []model.Span {
	spans := make([]model.Span, len(phrases))
	cur := 0
	for pi, p := range phrases {
		if pi == len(phrases)-1 {
			spans[pi] = model.Span{Start: cur, End: n}
			cur = n
			continue
		}
		endBeat := p.End() * beatsPerMeasure
		i := cur
		for i < n && beatOf(i) < endBeat {
			i++
		}
		spans[pi] = model.Span{Start: cur, End: i}
		cur = i
	}
	return spans
}

// IndexMelody maps every phrase to its half open range of notes.
func IndexMelody(phrases []model.Phrase, notes []model.Note, beatsPerMeasure, stepsPerBeat int) []model.Span {
	return sweep(phrases, len(notes), func(i int) int {
		return notes[i].Onset / stepsPerBeat
	}, beatsPerMeasure)
}

// IndexChords maps every phrase to its half open range of chord segments.
func IndexChords(phrases []model.Phrase, chords []model.Chord, beatsPerMeasure int) []model.Span {
	return sweep(phrases, len(chords), func(i int) int {
		return chords[i].Onset
	}, beatsPerMeasure)
}
