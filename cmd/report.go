package cmd

import (
	"fmt"

	"github.com/jsphweid/mcpreduce/chord"
	"github.com/jsphweid/mcpreduce/dataset"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/jsphweid/mcpreduce/song"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

var reportIDs []int

func init() {
	addDatasetFlags(reportCmd)
	reportCmd.Flags().IntSliceVar(&reportIDs, "ids", nil, "song ids, default all")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [max songs]",
	Short: "Creates a report",
	Long:  `Reports how much the annotation streams of the dataset disagree`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ids, err := songIDs(cfg, args, reportIDs)
		if err != nil {
			return err
		}
		printReport(collectReport(cfg, ids))
		return nil
	},
}

type datasetReport struct {
	numSongs  int
	numFailed int

	measures       []float64
	phrases        []float64
	paddedChords   []float64
	paddedMeasures []float64
	chordKeys      map[string]int
}

func collectReport(cfg dataset.Config, ids []int) datasetReport {
	report := datasetReport{chordKeys: make(map[string]int)}
	for _, id := range ids {
		report.numSongs += 1
		sum, chords, err := summarize(cfg, id)
		if err != nil {
			logger.Error("song failed", "song", dataset.SongName(id), "err", err)
			report.numFailed += 1
			continue
		}
		report.measures = append(report.measures, float64(sum.TotalMeasures))
		report.phrases = append(report.phrases, float64(len(sum.Phrases)))
		report.paddedChords = append(report.paddedChords, float64(sum.PaddedChords))
		report.paddedMeasures = append(report.paddedMeasures, float64(sum.PaddedMeasures))
		for _, c := range chords {
			report.chordKeys[chord.CreateChordKey(c.Chroma)] += 1
		}
	}
	return report
}

func summarize(cfg dataset.Config, id int) (model.SongSummary, []model.Chord, error) {
	raw, err := dataset.ReadSong(cfg, id, chord.HarteEncoder{})
	if err != nil {
		return model.SongSummary{}, nil, err
	}
	s, err := song.New(raw.Name, raw.Notes, raw.Chords, raw.Phrases, song.Options{
		BeatsPerMeasure: raw.BeatsPerMeasure,
		StepsPerBeat:    raw.StepsPerBeat,
	})
	if err != nil {
		return model.SongSummary{}, nil, err
	}
	return s.Summary(), s.Chords(), nil
}

func countNonZero(xs []float64) int {
	n := 0
	for _, x := range xs {
		if x != 0 {
			n++
		}
	}
	return n
}

func printStat(name string, xs []float64) {
	if len(xs) == 0 {
		return
	}
	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) == 1 {
		std = 0
	}
	fmt.Printf("%v: mean %.2f, stddev %.2f\n", name, mean, std)
}

func printReport(report datasetReport) {
	fmt.Printf("songs: %v, failed: %v\n", report.numSongs, report.numFailed)
	printStat("measures", report.measures)
	printStat("phrases", report.phrases)
	printStat("padded chord segments", report.paddedChords)
	printStat("padded measures", report.paddedMeasures)
	fmt.Printf("songs needing chord padding: %v\n", countNonZero(report.paddedChords))
	fmt.Printf("songs needing phrase padding: %v\n", countNonZero(report.paddedMeasures))
	fmt.Printf("distinct chord pitch sets: %v\n", len(report.chordKeys))
}
