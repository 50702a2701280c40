package song

import (
	"strconv"

	"github.com/jsphweid/mcpreduce/constants"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/jsphweid/mcpreduce/util"
)

// TotalMeasures is the longest of the three streams, each rounded up to
// whole measures, so nothing annotated is cut off.
func TotalMeasures(notes []model.Note, chords []model.Chord, phrases []model.Phrase, beatsPerMeasure, stepsPerBeat int) int {
	lastStep := 0
	for _, n := range notes {
		lastStep = util.Max(lastStep, n.End())
	}
	lastBeat := chordEnd(chords)

	lengths := make([]int, len(phrases))
	for i, p := range phrases {
		lengths[i] = p.Length
	}

	return util.Max(
		util.CeilDiv(lastStep, stepsPerBeat*beatsPerMeasure),
		util.CeilDiv(lastBeat, beatsPerMeasure),
		util.Sum(lengths),
	)
}

func chordEnd(chords []model.Chord) int {
	end := 0
	for _, c := range chords {
		end = util.Max(end, c.End())
	}
	return end
}

// PadChords extends the chord timeline to totalBeats by repeating the last
// segment's harmony in chunks of unit beats. A chunk holding the remainder
// goes first. Without any chord to repeat the padding is no chord.
func PadChords(chords []model.Chord, totalBeats, unit int) []model.Chord {
	end := chordEnd(chords)
	fill := totalBeats - end
	if fill <= 0 {
		return chords
	}

	var durs []int
	if rem := fill % unit; rem > 0 {
		durs = append(durs, rem)
	}
	for i := 0; i < fill/unit; i++ {
		durs = append(durs, unit)
	}

	last := model.Chord{Root: -1, Bass: -1}
	if len(chords) > 0 {
		last = chords[len(chords)-1]
	}
	chords = chords[:len(chords):len(chords)]
	for _, d := range durs {
		pad := last
		pad.Onset = end
		pad.Duration = d
		chords = append(chords, pad)
		end += d
	}
	return chords
}

// PadPhrases appends a phrase of type "z" covering any measures after the
// last labeled phrase.
func PadPhrases(phrases []model.Phrase, totalMeasures int) []model.Phrase {
	covered := 0
	for _, p := range phrases {
		covered += p.Length
	}
	gap := totalMeasures - covered
	if gap <= 0 {
		return phrases
	}
	return append(phrases[:len(phrases):len(phrases)], model.Phrase{
		Name:   constants.PaddingPhraseType + strconv.Itoa(gap),
		Type:   constants.PaddingPhraseType,
		Length: gap,
		Start:  covered,
	})
}
