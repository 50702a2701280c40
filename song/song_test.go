package song

import (
	"fmt"
	"testing"

	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cmaj(onset, dur int) model.Chord {
	return model.Chord{
		Onset:    onset,
		Root:     0,
		Chroma:   model.Chroma{1, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0},
		Duration: dur,
	}
}

func gmaj(onset, dur int) model.Chord {
	return model.Chord{
		Onset:    onset,
		Root:     7,
		Chroma:   model.Chroma{0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 1},
		Duration: dur,
	}
}

func phrases(lengths ...int) []model.Phrase {
	var res []model.Phrase
	start := 0
	for i, l := range lengths {
		typ := string(rune('A' + i))
		res = append(res, model.Phrase{Name: fmt.Sprintf("%s%d", typ, l), Type: typ, Length: l, Start: start})
		start += l
	}
	return res
}

func assertContiguous(t *testing.T, chords []model.Chord, totalBeats int) {
	t.Helper()
	require.NotEmpty(t, chords)
	assert.Equal(t, 0, chords[0].Onset)
	for i := 0; i+1 < len(chords); i++ {
		assert.Equal(t, chords[i].End(), chords[i+1].Onset, "gap after segment %d", i)
	}
	assert.Equal(t, totalBeats, chords[len(chords)-1].End())
}

func assertPartition(t *testing.T, spans []model.Span, n int) {
	t.Helper()
	cur := 0
	for _, s := range spans {
		assert.Equal(t, cur, s.Start)
		assert.LessOrEqual(t, s.Start, s.End)
		cur = s.End
	}
	assert.Equal(t, n, cur)
}

func TestCleanChordsSplitsOnGrid(t *testing.T) {
	cleaned := CleanChords([]model.Chord{cmaj(0, 10)}, 4)

	require.Len(t, cleaned, 3)
	assert := assert.New(t)
	for i, want := range []struct{ onset, dur int }{{0, 4}, {4, 4}, {8, 2}} {
		assert.Equal(want.onset, cleaned[i].Onset)
		assert.Equal(want.dur, cleaned[i].Duration)
		assert.Equal(cmaj(0, 0).Chroma, cleaned[i].Chroma)
	}
}

func TestCleanChordsAnchorsGridAtBeatZero(t *testing.T) {
	cleaned := CleanChords([]model.Chord{cmaj(0, 3), gmaj(3, 6)}, 4)

	var durs, onsets []int
	for _, c := range cleaned {
		durs = append(durs, c.Duration)
		onsets = append(onsets, c.Onset)
	}
	assert.Equal(t, []int{3, 1, 4, 1}, durs)
	assert.Equal(t, []int{0, 3, 4, 8}, onsets)
}

func TestCleanChordsPreservesDurationPerSegment(t *testing.T) {
	raw := []model.Chord{cmaj(0, 7), gmaj(7, 13), cmaj(20, 1), gmaj(21, 3)}
	for _, unit := range []int{1, 2, 3, 4, 6} {
		t.Run(fmt.Sprintf("unit %d", unit), func(t *testing.T) {
			cleaned := CleanChords(raw, unit)
			i := 0
			for _, r := range raw {
				total := 0
				for total < r.Duration {
					c := cleaned[i]
					assert.LessOrEqual(t, c.Duration, unit)
					assert.Equal(t, r.Root, c.Root)
					total += c.Duration
					i++
				}
				assert.Equal(t, r.Duration, total)
			}
			assert.Equal(t, len(cleaned), i)
		})
	}
}

func TestTotalMeasuresTakesTheLongestStream(t *testing.T) {
	notes := []model.Note{{Onset: 64, Pitch: 60, Duration: 8}}
	chords := CleanChords([]model.Chord{cmaj(0, 16)}, 4)

	assert.Equal(t, 6, TotalMeasures(notes, chords, phrases(2, 4), 4, 4))
	assert.Equal(t, 5, TotalMeasures(notes, chords, phrases(2), 4, 4))
	assert.Equal(t, 4, TotalMeasures(nil, chords, nil, 4, 4))
	assert.Equal(t, 0, TotalMeasures(nil, nil, nil, 4, 4))
}

func TestPadChordsPutsRemainderFirst(t *testing.T) {
	chords := PadChords([]model.Chord{gmaj(0, 10)}, 20, 4)

	var durs []int
	for _, c := range chords {
		durs = append(durs, c.Duration)
		assert.Equal(t, 7, c.Root)
	}
	assert.Equal(t, []int{10, 2, 4, 4}, durs)
	assertContiguous(t, chords, 20)
}

func TestPadChordsNoOpWhenCovered(t *testing.T) {
	in := []model.Chord{cmaj(0, 4), gmaj(4, 4)}
	assert.Equal(t, in, PadChords(in, 8, 4))
}

func TestPadChordsWithoutChordsPadsNoChord(t *testing.T) {
	chords := PadChords(nil, 8, 4)
	require.Len(t, chords, 2)
	assert.True(t, chords[0].IsNoChord())
	assertContiguous(t, chords, 8)
}

func TestPadChordsDoesNotWriteIntoCallerArray(t *testing.T) {
	backing := make([]model.Chord, 1, 4)
	backing[0] = cmaj(0, 4)
	padded := PadChords(backing, 12, 4)

	assert.Len(t, padded, 3)
	assert.Equal(t, model.Chord{}, backing[:2][1])
}

func TestPadPhrases(t *testing.T) {
	padded := PadPhrases(phrases(4, 4), 11)
	require.Len(t, padded, 3)
	assert.Equal(t, model.Phrase{Name: "z3", Type: "z", Length: 3, Start: 8}, padded[2])

	same := phrases(4, 4)
	assert.Equal(t, same, PadPhrases(same, 8))
}

func TestNewRegularizesAllStreams(t *testing.T) {
	notes := []model.Note{
		{Onset: 0, Pitch: 60, Duration: 4},
		{Onset: 64, Pitch: 62, Duration: 8},
	}
	chords := []model.Chord{cmaj(0, 16)}
	s, err := New("001", notes, chords, phrases(2, 4), Options{BeatsPerMeasure: 4, StepsPerBeat: 4})
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(6, s.TotalMeasures())
	assert.Equal(24, s.TotalBeats())
	assert.Equal(96, s.TotalSteps())
	assertContiguous(t, s.Chords(), 24)
	assert.Len(s.Chords(), 6)
	assert.Len(s.Phrases(), 2)

	summary := s.Summary()
	assert.Equal(2, summary.PaddedChords)
	assert.Equal(0, summary.PaddedMeasures)
}

func TestNewPadsPhrasesWhenLabelsStopShort(t *testing.T) {
	notes := []model.Note{{Onset: 0, Pitch: 60, Duration: 40}}
	s, err := New("002", notes, []model.Chord{cmaj(0, 4)}, phrases(1), Options{BeatsPerMeasure: 4, StepsPerBeat: 4})
	require.NoError(t, err)

	ps := s.Phrases()
	require.Len(t, ps, 2)
	assert.Equal(t, "z2", ps[1].Name)

	sum := 0
	for _, p := range ps {
		sum += p.Length
	}
	assert.Equal(t, s.TotalMeasures(), sum)
	assert.Equal(t, 2, s.Summary().PaddedMeasures)
}

func TestNewRejectsBadOptions(t *testing.T) {
	cases := []Options{
		{BeatsPerMeasure: 0, StepsPerBeat: 4},
		{BeatsPerMeasure: 4, StepsPerBeat: 0},
		{BeatsPerMeasure: 4, StepsPerBeat: 4, CleanChordUnit: -2},
		{BeatsPerMeasure: 4, StepsPerBeat: 4, CleanChordUnit: 3},
		{BeatsPerMeasure: 3, StepsPerBeat: 4, CleanChordUnit: 2},
	}
	for _, opts := range cases {
		_, err := New("x", nil, nil, nil, opts)
		assert.True(t, apperr.IsConfiguration(err), "%+v", opts)
	}
}

func TestNewCleansIdempotentlyWithSubMeasureUnit(t *testing.T) {
	opts := Options{BeatsPerMeasure: 4, StepsPerBeat: 4, CleanChordUnit: 2}
	s, err := New("x", nil, []model.Chord{cmaj(1, 4)}, phrases(2), opts)
	require.NoError(t, err)

	assert := assert.New(t)
	again := CleanChords(s.Chords(), 2)
	assert.Equal(s.Chords(), again)
	for _, c := range s.Chords() {
		assert.Equal(c.Onset/2, (c.End()-1)/2, "%+v crosses a grid line", c)
	}
}

func TestNewLeavesInputsAlone(t *testing.T) {
	chords := []model.Chord{cmaj(0, 10)}
	ps := phrases(1)
	_, err := New("x", nil, chords, ps, Options{BeatsPerMeasure: 4, StepsPerBeat: 4})
	require.NoError(t, err)

	assert.Equal(t, []model.Chord{cmaj(0, 10)}, chords)
	assert.Len(t, ps, 1)
}

func TestRegularizingTwiceChangesNothing(t *testing.T) {
	notes := []model.Note{{Onset: 3, Pitch: 60, Duration: 5}, {Onset: 70, Pitch: 64, Duration: 30}}
	chords := []model.Chord{cmaj(0, 6), gmaj(6, 9)}
	s, err := New("x", notes, chords, phrases(2, 1), Options{BeatsPerMeasure: 4, StepsPerBeat: 4})
	require.NoError(t, err)

	again := CleanChords(s.Chords(), 4)
	total := TotalMeasures(s.Notes(), again, s.Phrases(), 4, 4)
	again = PadChords(again, total*4, 4)

	assert.Equal(t, s.TotalMeasures(), total)
	assert.Equal(t, s.Chords(), again)
	assert.Equal(t, s.Phrases(), PadPhrases(s.Phrases(), total))
}

func TestIndexIsAPartition(t *testing.T) {
	notes := []model.Note{
		{Onset: 0, Pitch: 60, Duration: 4},
		{Onset: 14, Pitch: 62, Duration: 2},
		{Onset: 16, Pitch: 64, Duration: 4},
		{Onset: 33, Pitch: 65, Duration: 4},
		{Onset: 60, Pitch: 67, Duration: 4},
	}
	chords := []model.Chord{cmaj(0, 5), gmaj(5, 7), cmaj(12, 4)}
	s, err := New("x", notes, chords, phrases(1, 1, 2), Options{BeatsPerMeasure: 4, StepsPerBeat: 4})
	require.NoError(t, err)

	melody := s.MelodySpans()
	chordSpans := s.ChordSpans()
	assertPartition(t, melody, len(s.Notes()))
	assertPartition(t, chordSpans, len(s.Chords()))

	assert.Equal(t, []model.Span{{Start: 0, End: 2}, {Start: 2, End: 3}, {Start: 3, End: 5}}, melody)
	assert.Equal(t, []model.Span{{Start: 0, End: 1}, {Start: 1, End: 3}, {Start: 3, End: 5}}, chordSpans)
}

func TestSweepLastPhraseAbsorbsRemainder(t *testing.T) {
	notes := []model.Note{
		{Onset: 0, Pitch: 60, Duration: 4},
		{Onset: 20, Pitch: 62, Duration: 4},
		{Onset: 40, Pitch: 64, Duration: 4},
	}
	spans := IndexMelody(phrases(1), notes, 4, 4)
	assert.Equal(t, []model.Span{{Start: 0, End: 3}}, spans)
}

func TestSweepEmptyPhrasesGetEmptySpans(t *testing.T) {
	notes := []model.Note{{Onset: 40, Pitch: 60, Duration: 4}}
	spans := IndexMelody(phrases(1, 1, 1), notes, 4, 4)
	assert.Equal(t, []model.Span{{Start: 0, End: 0}, {Start: 0, End: 0}, {Start: 0, End: 1}}, spans)
}

func TestSegmentsCopyChords(t *testing.T) {
	notes := []model.Note{{Onset: 0, Pitch: 60, Duration: 4}, {Onset: 16, Pitch: 62, Duration: 4}}
	chords := []model.Chord{cmaj(0, 4), gmaj(4, 4)}
	s, err := New("x", notes, chords, phrases(1, 1), Options{BeatsPerMeasure: 4, StepsPerBeat: 4})
	require.NoError(t, err)

	segments := s.Segments()
	require.Len(t, segments, 2)
	assert.Equal(t, 1, segments[1].StartMeasure)
	assert.Equal(t, 1, segments[1].NumMeasures)
	assert.Equal(t, []model.Note{{Onset: 16, Pitch: 62, Duration: 4}}, segments[1].Notes)

	segments[0].Chords[0].Root = 11
	assert.Equal(t, 0, s.Chords()[0].Root)

	// appending to a view must not clobber the next phrase
	_ = append(segments[0].Notes, model.Note{Pitch: 1})
	assert.Equal(t, 62, s.Notes()[1].Pitch)
}
