package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/mcpreduce/chord"
	"github.com/jsphweid/mcpreduce/constants"
	"github.com/jsphweid/mcpreduce/dataset"
	"github.com/jsphweid/mcpreduce/midi"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/jsphweid/mcpreduce/song"
	"github.com/jsphweid/mcpreduce/util"
	"github.com/spf13/cobra"
)

var (
	inspectLabel int
	inspectBeats int
	inspectSteps int
)

func init() {
	f := inspectCmd.Flags()
	f.IntVar(&inspectLabel, "label", 1, "which human label file to use (1 or 2)")
	f.IntVar(&inspectBeats, "beats", constants.DefaultBeatsPerMeasure, "beats per measure")
	f.IntVar(&inspectSteps, "steps", constants.DefaultStepsPerBeat, "steps per beat")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <song dir | file.mid>",
	Short: "Inspects a song folder or a rendered file",
	Long: `Prints the phrase segmentation of a song folder, or the tracks of a
MIDI file written by reduce`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch filepath.Ext(args[0]) {
		case ".mid", ".midi":
			return inspectMidi(args[0])
		}
		return inspectDir(args[0])
	},
}

func inspectMidi(path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	for _, info := range midi.Describe(s) {
		fmt.Printf("%-14v %5v notes, ends at %.2fs\n", info.Name, info.NumNotes, info.End)
	}
	return nil
}

// inspectDir inspects dir as a song, or every song below it when it holds
// no melody itself.
func inspectDir(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, constants.MelodyFile)); err == nil {
		return inspectSong(dir)
	}
	dirs, err := util.GatherSongDirs(dir, constants.MelodyFile, 0)
	if err != nil {
		return err
	}
	for _, d := range dirs {
		if err := inspectSong(d); err != nil {
			fmt.Printf("%v: %v\n", filepath.Base(d), err)
		}
	}
	return nil
}

func inspectSong(dir string) error {
	name := filepath.Base(dir)
	raw, err := dataset.ReadSongDir(dir, name, inspectLabel, inspectBeats, inspectSteps, chord.HarteEncoder{})
	if err != nil {
		return err
	}
	s, err := song.New(raw.Name, raw.Notes, raw.Chords, raw.Phrases, song.Options{
		BeatsPerMeasure: raw.BeatsPerMeasure,
		StepsPerBeat:    raw.StepsPerBeat,
	})
	if err != nil {
		return err
	}
	printSummary(s.Summary())
	return nil
}

func printSummary(sum model.SongSummary) {
	fmt.Printf("song: %v\n", sum.Name)
	fmt.Printf("measures: %v, beats: %v, steps: %v\n", sum.TotalMeasures, sum.TotalBeats, sum.TotalSteps)
	fmt.Printf("notes: %v, chord segments: %v (%v padded), padded measures: %v\n",
		sum.NumNotes, sum.NumChords, sum.PaddedChords, sum.PaddedMeasures)
	for _, p := range sum.Phrases {
		fmt.Printf("  %-5v measures %3v-%-3v notes [%v, %v) chords [%v, %v)\n",
			p.Phrase.Name, p.Phrase.Start, p.Phrase.End(),
			p.MelodySpan.Start, p.MelodySpan.End, p.ChordSpan.Start, p.ChordSpan.End)
	}
}
