// Package render turns note and chord matrices into timed, named tracks.
package render

import (
	"fmt"

	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/constants"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/jsphweid/mcpreduce/util"
)

// Sink receives finished scores, e.g. midi.FileSink.
type Sink interface {
	Write(score model.Score) error
}

type Options struct {
	BPM             float64
	BeatsPerMeasure int
	StepsPerBeat    int
}

func (o Options) validate() error {
	if o.BPM <= 0 {
		return apperr.Configuration("bpm must be positive, got %v", o.BPM)
	}
	if o.BeatsPerMeasure <= 0 || o.BeatsPerMeasure > 255 {
		return apperr.Configuration("beats per measure out of range: %d", o.BeatsPerMeasure)
	}
	if o.StepsPerBeat <= 0 {
		return apperr.Configuration("steps per beat must be positive, got %d", o.StepsPerBeat)
	}
	return nil
}

func (o Options) stepSeconds() float64 {
	return 60 / o.BPM / float64(o.StepsPerBeat)
}

func (o Options) beatSeconds() float64 {
	return 60 / o.BPM
}

func clampPitch(p int) uint8 {
	if p < 0 {
		return 0
	}
	if p > 127 {
		return 127
	}
	return uint8(p)
}

// NoteEvents converts step timed notes to seconds.
func NoteEvents(notes []model.Note, opts Options) []model.Event {
	alpha := opts.stepSeconds()
	res := make([]model.Event, 0, len(notes))
	for _, n := range notes {
		res = append(res, model.Event{
			Pitch: clampPitch(n.Pitch),
			Start: float64(n.Onset) * alpha,
			End:   float64(n.End()) * alpha,
		})
	}
	return res
}

// ChordEvents voices every segment as a bass note plus one note per active
// pitch class, all held for the segment's length.
func ChordEvents(chords []model.Chord, opts Options) []model.Event {
	alpha := opts.beatSeconds()
	var res []model.Event
	for _, c := range chords {
		start := float64(c.Onset) * alpha
		end := float64(c.End()) * alpha
		if !c.IsNoChord() {
			bass := util.Mod(c.Root+c.Bass, 12) + constants.BassRegister
			res = append(res, model.Event{Pitch: uint8(bass), Start: start, End: end})
		}
		for i, on := range c.Chroma {
			if on != 0 {
				res = append(res, model.Event{Pitch: uint8(i + constants.ChordRegister), Start: start, End: end})
			}
		}
	}
	return res
}

// Score lays out the original melody, the chords and every reduction as
// separate tracks.
func Score(notes []model.Note, chords []model.Chord, reductions [][]model.Note, opts Options) (model.Score, error) {
	if err := opts.validate(); err != nil {
		return model.Score{}, err
	}
	score := model.Score{
		BPM:         opts.BPM,
		Numerator:   uint8(opts.BeatsPerMeasure),
		Denominator: constants.MeterDenominator,
		Tracks: []model.Track{
			{Name: "melody", Events: NoteEvents(notes, opts)},
			{Name: "chord", Events: ChordEvents(chords, opts)},
		},
	}
	for i, r := range reductions {
		score.Tracks = append(score.Tracks, model.Track{
			Name:   fmt.Sprintf("reduction-%d", i),
			Events: NoteEvents(r, opts),
		})
	}
	return score, nil
}

// Render builds the score and hands it to sink.
func Render(sink Sink, notes []model.Note, chords []model.Chord, reductions [][]model.Note, opts Options) error {
	score, err := Score(notes, chords, reductions, opts)
	if err != nil {
		return err
	}
	if err := sink.Write(score); err != nil {
		return apperr.External(err, "writing score")
	}
	return nil
}
