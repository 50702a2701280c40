// Package reduce defines the boundary to melody reduction algorithms and
// ships a simple one so the pipeline can run end to end.
package reduce

import (
	"slices"
	"sort"

	"github.com/jsphweid/mcpreduce/model"
)

// Request is one phrase's worth of input. Times are in the song's own
// units: notes in steps, chords in beats, both from the start of the song.
type Request struct {
	Notes           []model.Note
	Chords          []model.Chord
	StartMeasure    int
	BeatsPerMeasure int
	StepsPerBeat    int
	NumSamples      int
	Visualize       bool
}

// Reducer returns the phrase's notes and chords as it used them, plus
// NumSamples reduced melodies.
type Reducer interface {
	Reduce(req Request) (model.Reduction, error)
}

type ReducerFunc func(req Request) (model.Reduction, error)

func (f ReducerFunc) Reduce(req Request) (model.Reduction, error) {
	return f(req)
}

// Skeleton keeps one note per chord segment: the longest note starting in
// the segment for sample 0, the next longest for sample 1 and so on,
// falling back to the shortest once candidates run out.
type Skeleton struct{}

func (Skeleton) Reduce(req Request) (model.Reduction, error) {
	res := model.Reduction{
		Notes:   slices.Clone(req.Notes),
		Chords:  slices.Clone(req.Chords),
		Samples: make([][]model.Note, req.NumSamples),
	}

	cur := 0
	for _, c := range req.Chords {
		var candidates []model.Note
		for cur < len(req.Notes) && req.Notes[cur].Onset/req.StepsPerBeat < c.Onset {
			cur++
		}
		for cur < len(req.Notes) && req.Notes[cur].Onset/req.StepsPerBeat < c.End() {
			candidates = append(candidates, req.Notes[cur])
			cur++
		}
		if len(candidates) == 0 {
			continue
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Duration > candidates[j].Duration
		})
		for k := range res.Samples {
			pick := candidates[len(candidates)-1]
			if k < len(candidates) {
				pick = candidates[k]
			}
			res.Samples[k] = append(res.Samples[k], pick)
		}
	}

	for k := range res.Samples {
		if res.Samples[k] == nil {
			res.Samples[k] = []model.Note{}
		}
	}
	return res, nil
}
