package cmd

import (
	"strconv"

	"github.com/jsphweid/mcpreduce/dataset"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var configPath string

func addDatasetFlags(c *cobra.Command) {
	c.Flags().StringVarP(&configPath, "config", "c", "", "dataset config (yaml)")
}

func loadConfig() (dataset.Config, error) {
	if configPath == "" {
		cfg := dataset.DefaultConfig()
		return cfg, cfg.Validate()
	}
	return dataset.LoadConfig(configPath)
}

// songIDs turns the optional positional argument (max number of songs) and
// explicit ids into the list of songs to process.
func songIDs(cfg dataset.Config, args []string, ids []int) ([]int, error) {
	if len(ids) > 0 {
		return ids, nil
	}
	all := cfg.IDs()
	if len(args) == 1 {
		maxNum, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, errors.Wrapf(err, "bad song count %q", args[0])
		}
		if maxNum > 0 && maxNum < len(all) {
			all = all[:maxNum]
		}
	}
	return all, nil
}
