package annotation

import (
	"io"
	"strconv"

	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/chord"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/jsphweid/mcpreduce/util"
)

// ReadChords parses "<symbol> ... <duration>" lines and resolves each symbol
// with enc.
func ReadChords(r io.Reader, source string, enc chord.Encoder) ([]model.Chord, error) {
	var raw []model.RawChord
	err := eachLine(r, func(num int, fields []string) error {
		if len(fields) < 2 {
			return apperr.Parse(source, num, "want symbol and duration, got %d fields", len(fields))
		}
		last := fields[len(fields)-1]
		dur, err := strconv.Atoi(last)
		if err != nil {
			return apperr.Parse(source, num, "bad duration %q", last)
		}
		if dur <= 0 {
			return apperr.Parse(source, num, "non positive duration %d", dur)
		}
		raw = append(raw, model.RawChord{Symbol: fields[0], Duration: dur})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ChordsFromRaw(raw, enc)
}

// ChordsFromRaw resolves symbols and lays the segments end to end starting
// at beat 0. Chroma is stored absolute: index i is pitch class i.
func ChordsFromRaw(raw []model.RawChord, enc chord.Encoder) ([]model.Chord, error) {
	durs := make([]int, len(raw))
	for i, c := range raw {
		durs[i] = c.Duration
	}
	starts := util.ExclusiveCumSum(durs)

	chords := make([]model.Chord, len(raw))
	for i, c := range raw {
		symbol := chord.StripControl(c.Symbol)
		root, chroma, bass, err := enc.Encode(symbol)
		if err != nil {
			return nil, apperr.External(err, "encoding chord %d", i+1)
		}
		chords[i] = model.Chord{
			Onset:    starts[i],
			Root:     root,
			Chroma:   chord.Rotate(chroma, root),
			Bass:     bass,
			Duration: c.Duration,
		}
	}
	return chords, nil
}
