// Package dataset reads songs laid out like POP909: one folder per song
// holding melody, chord and phrase label text files.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/mcpreduce/annotation"
	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/chord"
	"github.com/jsphweid/mcpreduce/constants"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/pkg/errors"
)

// RawSong is a song as read from disk, before any reconciliation.
type RawSong struct {
	Name            string
	Notes           []model.Note
	Chords          []model.Chord
	Phrases         []model.Phrase
	BeatsPerMeasure int
	StepsPerBeat    int
}

func SongName(id int) string {
	return fmt.Sprintf("%03d", id)
}

// CreateSongNameMap maps song ids to their folder names.
func CreateSongNameMap(ids []int) map[int]string {
	res := make(map[int]string, len(ids))
	for _, id := range ids {
		res[id] = SongName(id)
	}
	return res
}

func labelFile(label int) (string, error) {
	switch label {
	case 1:
		return constants.Label1File, nil
	case 2:
		return constants.Label2File, nil
	}
	return "", apperr.Configuration("label source must be 1 or 2, got %d", label)
}

func readWith[T any](path string, read func(f *os.File) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, errors.Wrap(err, "opening annotation")
	}
	defer f.Close()
	return read(f)
}

// ReadSongDir reads the three annotation files in dir.
func ReadSongDir(dir, name string, label, beatsPerMeasure, stepsPerBeat int, enc chord.Encoder) (RawSong, error) {
	song := RawSong{Name: name, BeatsPerMeasure: beatsPerMeasure, StepsPerBeat: stepsPerBeat}

	labelName, err := labelFile(label)
	if err != nil {
		return song, err
	}

	labelPath := filepath.Join(dir, labelName)
	song.Phrases, err = readWith(labelPath, func(f *os.File) ([]model.Phrase, error) {
		return annotation.ReadPhraseLabel(f, labelPath)
	})
	if err != nil {
		return song, err
	}

	melodyPath := filepath.Join(dir, constants.MelodyFile)
	song.Notes, err = readWith(melodyPath, func(f *os.File) ([]model.Note, error) {
		return annotation.ReadMelody(f, melodyPath)
	})
	if err != nil {
		return song, err
	}

	chordPath := filepath.Join(dir, constants.ChordFile)
	song.Chords, err = readWith(chordPath, func(f *os.File) ([]model.Chord, error) {
		return annotation.ReadChords(f, chordPath, enc)
	})
	return song, err
}

// ReadSong reads song id using the config's label and meter tables.
func ReadSong(cfg Config, id int, enc chord.Encoder) (RawSong, error) {
	name := SongName(id)
	return ReadSongDir(filepath.Join(cfg.Root, name), name, cfg.Label(id), cfg.MeasureLength(id), cfg.StepsPerBeat, enc)
}
