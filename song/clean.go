package song

import (
	"github.com/jsphweid/mcpreduce/model"
	"github.com/jsphweid/mcpreduce/util"
)

// CleanChords splits every segment on a grid of unit beats anchored at
// beat 0, so no segment crosses a grid line. Harmony is copied unchanged
// into every piece.
func CleanChords(chords []model.Chord, unit int) []model.Chord {
	res := make([]model.Chord, 0, len(chords))
	for _, c := range chords {
		s := c.Onset
		for done := 0; done < c.Duration; {
			d := util.Min(unit-util.Mod(s, unit), c.Duration-done)
			piece := c
			piece.Onset = s
			piece.Duration = d
			res = append(res, piece)
			s += d
			done += d
		}
	}
	return res
}
