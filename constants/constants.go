package constants

import "os"

func GetDatasetDir() string {
	path := os.Getenv("DATASET_PATH")
	if path != "" {
		return path
	}
	return "./data/pop909_w_structure_label"
}

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./tra_demo"
}

const (
	DefaultStepsPerBeat    = 4
	DefaultBeatsPerMeasure = 4
	DefaultBPM             = 90.0
	DefaultNumSamples      = 1
)

// MaxRequestMeasures caps how long a song submitted over HTTP may be.
const MaxRequestMeasures = 1024

// Registers the chord track is voiced in. Bass lands in C2..B2 and chord
// tones in C3..B3.
const (
	BassRegister  = 36
	ChordRegister = 48
)

const (
	Velocity = 80

	// denominator of the time signature marker, always a quarter note
	MeterDenominator = 4

	TicksPerQuarter = 480
)

const (
	MelodyFile  = "melody.txt"
	ChordFile   = "finalized_chord.txt"
	Label1File  = "human_label1.txt"
	Label2File  = "human_label2.txt"
	OutputExt   = ".mid"
	OutputTrail = "-red"
)

// PaddingPhraseType labels the phrase appended when phrase labels stop short
// of the song's end.
const PaddingPhraseType = "z"
