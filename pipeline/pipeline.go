// Package pipeline runs reconciliation, reduction and rendering for a song
// or a whole dataset.
package pipeline

import (
	"path/filepath"

	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/constants"
	"github.com/jsphweid/mcpreduce/dataset"
	"github.com/jsphweid/mcpreduce/midi"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/jsphweid/mcpreduce/reduce"
	"github.com/jsphweid/mcpreduce/render"
	"github.com/jsphweid/mcpreduce/song"
	"github.com/pkg/errors"
)

type Options struct {
	OutDir     string
	BPM        float64
	NumSamples int
	Visualize  bool

	// CleanChordUnit of 0 means one measure.
	CleanChordUnit int

	// FailFast stops a dataset run at the first failing song.
	FailFast bool

	// NewSink picks where a song's score goes. Defaults to a MIDI file in
	// OutDir.
	NewSink func(songName string) render.Sink
}

func (o Options) sinkFor(name string) render.Sink {
	if o.NewSink != nil {
		return o.NewSink(name)
	}
	return midi.FileSink{Path: OutputPath(o.OutDir, name)}
}

// OutputPath is where a song's rendered file goes.
func OutputPath(dir, songName string) string {
	return filepath.Join(dir, songName+constants.OutputTrail+constants.OutputExt)
}

// Result describes one processed song.
type Result struct {
	Summary model.SongSummary
	// notes kept by each reduction sample
	ReducedNotes []int
}

// Reduce builds the canonical song, runs reducer on every phrase and joins
// the phrase outputs back into whole song matrices.
func Reduce(raw dataset.RawSong, reducer reduce.Reducer, opts Options) (*song.Song, model.Reduction, error) {
	s, err := song.New(raw.Name, raw.Notes, raw.Chords, raw.Phrases, song.Options{
		BeatsPerMeasure: raw.BeatsPerMeasure,
		StepsPerBeat:    raw.StepsPerBeat,
		CleanChordUnit:  opts.CleanChordUnit,
	})
	if err != nil {
		return nil, model.Reduction{}, err
	}
	if opts.NumSamples <= 0 {
		return nil, model.Reduction{}, apperr.Configuration("number of samples must be positive, got %d", opts.NumSamples)
	}

	whole := model.Reduction{Samples: make([][]model.Note, opts.NumSamples)}
	for _, seg := range s.Segments() {
		red, err := reducer.Reduce(reduce.Request{
			Notes:           seg.Notes,
			Chords:          seg.Chords,
			StartMeasure:    seg.StartMeasure,
			BeatsPerMeasure: raw.BeatsPerMeasure,
			StepsPerBeat:    raw.StepsPerBeat,
			NumSamples:      opts.NumSamples,
			Visualize:       opts.Visualize,
		})
		if err != nil {
			return nil, model.Reduction{}, apperr.External(err, "reducing phrase %s", seg.Phrase.Name)
		}
		if len(red.Samples) != opts.NumSamples {
			return nil, model.Reduction{}, apperr.External(
				errors.Errorf("want %d samples, got %d", opts.NumSamples, len(red.Samples)),
				"reducing phrase %s", seg.Phrase.Name)
		}
		whole.Notes = append(whole.Notes, red.Notes...)
		whole.Chords = append(whole.Chords, red.Chords...)
		for k, sample := range red.Samples {
			whole.Samples[k] = append(whole.Samples[k], sample...)
		}
	}
	return s, whole, nil
}

// RunSong reduces one song and writes its score.
func RunSong(raw dataset.RawSong, reducer reduce.Reducer, opts Options) (Result, error) {
	s, whole, err := Reduce(raw, reducer, opts)
	if err != nil {
		return Result{}, err
	}

	err = render.Render(opts.sinkFor(raw.Name), whole.Notes, whole.Chords, whole.Samples, render.Options{
		BPM:             opts.BPM,
		BeatsPerMeasure: raw.BeatsPerMeasure,
		StepsPerBeat:    raw.StepsPerBeat,
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Summary: s.Summary()}
	for _, sample := range whole.Samples {
		res.ReducedNotes = append(res.ReducedNotes, len(sample))
	}
	return res, nil
}
