package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/mcpreduce/chord"
	"github.com/jsphweid/mcpreduce/constants"
	"github.com/jsphweid/mcpreduce/dataset"
	"github.com/jsphweid/mcpreduce/pipeline"
	"github.com/jsphweid/mcpreduce/reduce"
	"github.com/spf13/cobra"
)

var (
	reduceOpts = pipeline.Options{}
	reduceIDs  []int
)

func init() {
	addDatasetFlags(reduceCmd)
	f := reduceCmd.Flags()
	f.StringVarP(&reduceOpts.OutDir, "out", "o", constants.GetOutDir(), "output folder")
	f.Float64Var(&reduceOpts.BPM, "bpm", constants.DefaultBPM, "tempo of the written files")
	f.IntVarP(&reduceOpts.NumSamples, "samples", "n", constants.DefaultNumSamples, "reductions per song")
	f.IntVar(&reduceOpts.CleanChordUnit, "chord-unit", 0, "chord grid in beats, must divide a measure; 0 for one measure")
	f.BoolVar(&reduceOpts.FailFast, "fail-fast", false, "stop at the first failing song")
	f.IntSliceVar(&reduceIDs, "ids", nil, "song ids, default all")
	rootCmd.AddCommand(reduceCmd)
}

var reduceCmd = &cobra.Command{
	Use:   "reduce [max songs]",
	Short: "Reduces songs of the dataset",
	Long:  `Reduces songs of the dataset and writes <song>-red.mid for each of them`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ids, err := songIDs(cfg, args, reduceIDs)
		if err != nil {
			return err
		}
		return runReduce(cfg, ids)
	},
}

func runReduce(cfg dataset.Config, ids []int) error {
	b := pipeline.Batch{
		Config:  cfg,
		Encoder: chord.HarteEncoder{},
		Reducer: reduce.Skeleton{},
		Options: reduceOpts,
		Logger:  logger,
	}
	if !quiet {
		b.Progress = os.Stderr
	}

	summary, err := b.Run(ids)
	for _, f := range summary.Failed {
		fmt.Fprintf(os.Stderr, "failed: %v\n", f)
	}
	if err != nil {
		return err
	}
	fmt.Printf("run %v: %v songs written to %v, %v failed\n",
		summary.RunID, len(summary.Processed), reduceOpts.OutDir, len(summary.Failed))
	return nil
}
