// Package song builds the canonical melody, chord and phrase representation
// of one piece and cuts it into per phrase inputs.
package song

import (
	"slices"

	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/model"
)

type Options struct {
	BeatsPerMeasure int
	StepsPerBeat    int

	// CleanChordUnit is the grid chords are split on. 0 means one measure.
	CleanChordUnit int
}

func (o Options) withDefaults() (Options, error) {
	if o.BeatsPerMeasure <= 0 {
		return o, apperr.Configuration("beats per measure must be positive, got %d", o.BeatsPerMeasure)
	}
	if o.StepsPerBeat <= 0 {
		return o, apperr.Configuration("steps per beat must be positive, got %d", o.StepsPerBeat)
	}
	if o.CleanChordUnit == 0 {
		o.CleanChordUnit = o.BeatsPerMeasure
	}
	if o.CleanChordUnit < 0 {
		return o, apperr.Configuration("clean chord unit must be positive, got %d", o.CleanChordUnit)
	}
	if o.BeatsPerMeasure%o.CleanChordUnit != 0 {
		return o, apperr.Configuration("clean chord unit %d does not divide a measure of %d beats", o.CleanChordUnit, o.BeatsPerMeasure)
	}
	return o, nil
}

// Song is fully regularized once New returns and is not changed afterwards.
// Accessors hand out copies.
type Song struct {
	name string
	opts Options

	notes   []model.Note
	chords  []model.Chord
	phrases []model.Phrase

	totalMeasures int

	melodySpans []model.Span
	chordSpans  []model.Span

	paddedChords   int
	paddedMeasures int
}

// New cleans the chords, reconciles the three timelines and indexes every
// phrase. The input slices are not modified.
func New(name string, notes []model.Note, chords []model.Chord, phrases []model.Phrase, opts Options) (*Song, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	s := &Song{name: name, opts: opts}
	s.notes = slices.Clone(notes)
	s.chords = CleanChords(chords, opts.CleanChordUnit)

	s.totalMeasures = TotalMeasures(s.notes, s.chords, phrases, opts.BeatsPerMeasure, opts.StepsPerBeat)

	cleaned := len(s.chords)
	s.chords = PadChords(s.chords, s.TotalBeats(), opts.CleanChordUnit)
	s.paddedChords = len(s.chords) - cleaned

	s.phrases = PadPhrases(slices.Clone(phrases), s.totalMeasures)
	if len(s.phrases) > len(phrases) {
		s.paddedMeasures = s.phrases[len(s.phrases)-1].Length
	}

	s.melodySpans = IndexMelody(s.phrases, s.notes, opts.BeatsPerMeasure, opts.StepsPerBeat)
	s.chordSpans = IndexChords(s.phrases, s.chords, opts.BeatsPerMeasure)
	return s, nil
}

func (s *Song) Name() string {
	return s.name
}

func (s *Song) Options() Options {
	return s.opts
}

func (s *Song) TotalMeasures() int {
	return s.totalMeasures
}

func (s *Song) TotalBeats() int {
	return s.totalMeasures * s.opts.BeatsPerMeasure
}

func (s *Song) TotalSteps() int {
	return s.TotalBeats() * s.opts.StepsPerBeat
}

func (s *Song) Notes() []model.Note {
	return slices.Clone(s.notes)
}

func (s *Song) Chords() []model.Chord {
	return slices.Clone(s.chords)
}

func (s *Song) Phrases() []model.Phrase {
	return slices.Clone(s.phrases)
}

func (s *Song) MelodySpans() []model.Span {
	return slices.Clone(s.melodySpans)
}

func (s *Song) ChordSpans() []model.Span {
	return slices.Clone(s.chordSpans)
}

// Segments returns one reducer input per phrase, in phrase order. Chords
// are copied so a reducer may change them freely; notes share the song's
// storage and must be treated as read only.
func (s *Song) Segments() []model.PhraseInput {
	res := make([]model.PhraseInput, len(s.phrases))
	for i, p := range s.phrases {
		ms, cs := s.melodySpans[i], s.chordSpans[i]
		res[i] = model.PhraseInput{
			Phrase:       p,
			Notes:        s.notes[ms.Start:ms.End:ms.End],
			Chords:       slices.Clone(s.chords[cs.Start:cs.End]),
			StartMeasure: p.Start,
			NumMeasures:  p.Length,
		}
	}
	return res
}

func (s *Song) Summary() model.SongSummary {
	res := model.SongSummary{
		Name:           s.name,
		TotalMeasures:  s.totalMeasures,
		TotalBeats:     s.TotalBeats(),
		TotalSteps:     s.TotalSteps(),
		NumNotes:       len(s.notes),
		NumChords:      len(s.chords),
		PaddedChords:   s.paddedChords,
		PaddedMeasures: s.paddedMeasures,
	}
	for i, p := range s.phrases {
		ms, cs := s.melodySpans[i], s.chordSpans[i]
		res.Phrases = append(res.Phrases, model.PhraseSummary{
			Phrase:      p,
			MelodySpan:  ms,
			ChordSpan:   cs,
			StartBeat:   p.Start * s.opts.BeatsPerMeasure,
			EndBeat:     p.End() * s.opts.BeatsPerMeasure,
			NumNotes:    ms.Len(),
			NumSegments: cs.Len(),
		})
	}
	return res
}
