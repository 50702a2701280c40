package midi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, fmt.Errorf("parsing midi file %s: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi file")
	}
	return res, nil
}

// TrackInfo is a short description of one track of a file.
type TrackInfo struct {
	Name     string
	NumNotes int
	// end of the last note off, in seconds
	End float64
}

// Describe lists the tracks of s with their note counts, skipping tracks
// without notes.
func Describe(s *smf.SMF) []TrackInfo {
	var res []TrackInfo
	for _, events := range s.Tracks {
		var info TrackInfo
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			var name string
			switch {
			case event.Message.GetMetaTrackName(&name):
				info.Name = name
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				info.NumNotes++
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				info.End = float64(s.TimeAt(absTicks)) / 1e6
			}
		}
		if info.NumNotes > 0 {
			res = append(res, info)
		}
	}
	return res
}
