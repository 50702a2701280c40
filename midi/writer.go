package midi

import (
	"io"
	"math"
	"os"
	"sort"

	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/constants"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type timedMsg struct {
	tick      uint32
	isNoteOff bool
	msg       midi.Message
}

// channelFor spreads tracks over channels, leaving out the drum channel.
func channelFor(trackIdx int) uint8 {
	ch := trackIdx % 15
	if ch >= 9 {
		ch++
	}
	return uint8(ch)
}

func toTicks(seconds, bpm float64) uint32 {
	if seconds <= 0 {
		return 0
	}
	return uint32(math.Round(seconds * bpm / 60 * constants.TicksPerQuarter))
}

func buildTrack(t model.Track, channel uint8, bpm float64) smf.Track {
	var msgs []timedMsg
	for _, e := range t.Events {
		start, end := toTicks(e.Start, bpm), toTicks(e.End, bpm)
		if end <= start {
			continue
		}
		msgs = append(msgs,
			timedMsg{tick: start, msg: midi.NoteOn(channel, e.Pitch, constants.Velocity)},
			timedMsg{tick: end, isNoteOff: true, msg: midi.NoteOff(channel, e.Pitch)},
		)
	}

	// earlier first, then note offs so repeated pitches retrigger
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].isNoteOff && !msgs[j].isNoteOff
	})

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(t.Name))
	var last uint32
	for _, m := range msgs {
		track.Add(m.tick-last, m.msg)
		last = m.tick
	}
	track.Close(0)
	return track
}

// Build turns a score into a format 1 file: a conductor track with tempo and
// meter, then one track per score track.
func Build(score model.Score) (*smf.SMF, error) {
	if score.BPM <= 0 {
		return nil, apperr.Configuration("tempo must be positive, got %v", score.BPM)
	}
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var conductor smf.Track
	conductor.Add(0, smf.MetaMeter(score.Numerator, score.Denominator))
	conductor.Add(0, smf.MetaTempo(score.BPM))
	conductor.Close(0)
	if err := s.Add(conductor); err != nil {
		return nil, errors.Wrap(err, "adding conductor track")
	}

	for i, t := range score.Tracks {
		if err := s.Add(buildTrack(t, channelFor(i), score.BPM)); err != nil {
			return nil, errors.Wrapf(err, "adding track %q", t.Name)
		}
	}
	return s, nil
}

// Encode writes score as a standard MIDI file to w.
func Encode(score model.Score, w io.Writer) error {
	s, err := Build(score)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return apperr.External(err, "writing midi")
	}
	return nil
}

// FileSink writes every score it is given to Path.
type FileSink struct {
	Path string
}

func (f FileSink) Write(score model.Score) error {
	out, err := os.Create(f.Path)
	if err != nil {
		return apperr.External(err, "creating %s", f.Path)
	}
	if err := Encode(score, out); err != nil {
		out.Close()
		return err
	}
	return apperr.External(out.Close(), "closing %s", f.Path)
}
