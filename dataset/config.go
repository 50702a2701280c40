package dataset

import (
	"os"

	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/constants"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Songs of POP909 in 3/4.
var Pop909TripleMeter = []int{
	34, 62, 102, 107, 152, 173, 176, 203, 215, 231, 254, 280, 307, 328, 369,
	584, 592, 653, 654, 662, 744, 749, 756, 770, 799, 843, 869, 872, 887,
}

const Pop909Size = 909

type Config struct {
	Root         string `yaml:"root"`
	StepsPerBeat int    `yaml:"steps_per_beat"`

	// BeatsPerMeasure applies to every song not listed in TripleMeter.
	BeatsPerMeasure int   `yaml:"beats_per_measure"`
	TripleMeter     []int `yaml:"triple_meter"`

	// LabelSource[id-1] picks human_label1.txt (1) or human_label2.txt (2).
	// Songs past the end of the list use DefaultLabel.
	LabelSource  []int `yaml:"label_source"`
	DefaultLabel int   `yaml:"default_label"`

	NumSongs int `yaml:"num_songs"`
}

func DefaultConfig() Config {
	return Config{
		Root:            constants.GetDatasetDir(),
		StepsPerBeat:    constants.DefaultStepsPerBeat,
		BeatsPerMeasure: constants.DefaultBeatsPerMeasure,
		TripleMeter:     Pop909TripleMeter,
		DefaultLabel:    1,
		NumSongs:        Pop909Size,
	}
}

// LoadConfig reads a YAML config on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	dat, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading dataset config")
	}
	if err := yaml.Unmarshal(dat, &cfg); err != nil {
		return cfg, apperr.Configuration("decoding %s: %v", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.StepsPerBeat <= 0 {
		return apperr.Configuration("steps_per_beat must be positive, got %d", c.StepsPerBeat)
	}
	if c.BeatsPerMeasure <= 0 {
		return apperr.Configuration("beats_per_measure must be positive, got %d", c.BeatsPerMeasure)
	}
	if c.DefaultLabel != 1 && c.DefaultLabel != 2 {
		return apperr.Configuration("default_label must be 1 or 2, got %d", c.DefaultLabel)
	}
	return nil
}

func (c Config) Label(id int) int {
	if id >= 1 && id <= len(c.LabelSource) {
		return c.LabelSource[id-1]
	}
	return c.DefaultLabel
}

func (c Config) MeasureLength(id int) int {
	for _, t := range c.TripleMeter {
		if t == id {
			return 3
		}
	}
	return c.BeatsPerMeasure
}

// IDs lists 1..NumSongs.
func (c Config) IDs() []int {
	ids := make([]int, c.NumSongs)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}
