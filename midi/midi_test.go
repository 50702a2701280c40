package midi

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func testScore() model.Score {
	return model.Score{
		BPM:         120,
		Numerator:   3,
		Denominator: 4,
		Tracks: []model.Track{
			{Name: "melody", Events: []model.Event{
				{Pitch: 60, Start: 0, End: 0.5},
				{Pitch: 60, Start: 0.5, End: 1.5},
			}},
			{Name: "chord", Events: []model.Event{
				{Pitch: 36, Start: 0, End: 2},
				{Pitch: 48, Start: 0, End: 2},
			}},
		},
	}
}

func TestEncodeRoundTripsThroughReader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(testScore(), &buf))

	s, err := smf.ReadFrom(&buf)
	require.NoError(t, err)

	infos := Describe(s)
	require.Len(t, infos, 2)

	assert := assert.New(t)
	assert.Equal("melody", infos[0].Name)
	assert.Equal(2, infos[0].NumNotes)
	assert.InDelta(1.5, infos[0].End, 1e-3)
	assert.Equal("chord", infos[1].Name)
	assert.InDelta(2.0, infos[1].End, 1e-3)
}

func TestEncodeWritesConductorTrack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(testScore(), &buf))

	s, err := smf.ReadFrom(&buf)
	require.NoError(t, err)
	require.NotEmpty(t, s.Tracks)

	var num, denom uint8
	var bpm float64
	var sawMeter, sawTempo bool
	for _, ev := range s.Tracks[0] {
		switch {
		case ev.Message.GetMetaMeter(&num, &denom):
			sawMeter = true
		case ev.Message.GetMetaTempo(&bpm):
			sawTempo = true
		}
	}

	assert := assert.New(t)
	assert.True(sawMeter)
	assert.Equal(uint8(3), num)
	assert.Equal(uint8(4), denom)
	assert.True(sawTempo)
	assert.InDelta(120.0, bpm, 1e-6)
}

func TestRepeatedPitchIsReleasedBeforeRetrigger(t *testing.T) {
	s, err := Build(testScore())
	require.NoError(t, err)

	var channel, key, velocity uint8
	var order []string
	for _, ev := range s.Tracks[1] {
		switch {
		case ev.Message.GetNoteOn(&channel, &key, &velocity):
			order = append(order, "on")
		case ev.Message.GetNoteOff(&channel, &key, &velocity):
			order = append(order, "off")
		}
	}
	assert.Equal(t, []string{"on", "off", "on", "off"}, order)
}

func TestBuildRejectsZeroTempo(t *testing.T) {
	score := testScore()
	score.BPM = 0
	_, err := Build(score)
	assert.True(t, apperr.IsConfiguration(err))
}

func TestFileSinkWritesReadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "001-red.mid")
	require.NoError(t, FileSink{Path: path}.Write(testScore()))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	assert.Len(t, Describe(s), 2)
}

func TestFileSinkReportsUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "x.mid")
	err := FileSink{Path: path}.Write(testScore())
	assert.True(t, apperr.IsExternal(err))
}
