package annotation

import (
	"io"
	"strconv"

	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/jsphweid/mcpreduce/util"
)

// ReadMelody parses "<pitch> <duration>" lines into a note matrix.
func ReadMelody(r io.Reader, source string) ([]model.Note, error) {
	var events []model.RawEvent
	err := eachLine(r, func(num int, fields []string) error {
		if len(fields) != 2 {
			return apperr.Parse(source, num, "want 2 fields, got %d", len(fields))
		}
		pitch, err := strconv.Atoi(fields[0])
		if err != nil {
			return apperr.Parse(source, num, "bad pitch %q", fields[0])
		}
		dur, err := strconv.Atoi(fields[1])
		if err != nil {
			return apperr.Parse(source, num, "bad duration %q", fields[1])
		}
		if pitch < 0 || dur <= 0 {
			return apperr.Parse(source, num, "out of range event (%d, %d)", pitch, dur)
		}
		events = append(events, model.RawEvent{Pitch: pitch, Duration: dur})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return MelodyFromEvents(events), nil
}

// MelodyFromEvents drops silences and gives every note its onset, the sum
// of all durations before it including silences.
func MelodyFromEvents(events []model.RawEvent) []model.Note {
	durs := make([]int, len(events))
	for i, e := range events {
		durs[i] = e.Duration
	}
	starts := util.ExclusiveCumSum(durs)

	notes := make([]model.Note, 0, len(events))
	for i, e := range events {
		if e.Pitch == 0 {
			continue
		}
		notes = append(notes, model.Note{Onset: starts[i], Pitch: e.Pitch, Duration: e.Duration})
	}
	return notes
}
