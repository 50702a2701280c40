package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	logger  = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "mcpreduce",
	Short: "Melody reduction over melody, chord and phrase annotations",
	Long: `Reconciles melody, chord and phrase annotations of a song,
splits it into phrases, reduces every phrase and writes the result as MIDI.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		if quiet {
			level = slog.LevelError
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every song")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors, no progress bar")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
