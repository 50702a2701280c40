package model

type SongRequestBody struct {
	Name            string   `json:"name"`
	Melody          [][2]int `json:"melody"`
	Chords          []string `json:"chords"`
	Phrase          string   `json:"phrase"`
	BeatsPerMeasure int      `json:"beats_per_measure"`
	StepsPerBeat    int      `json:"steps_per_beat"`
	BPM             float64  `json:"bpm"`
	NumSamples      int      `json:"num_samples"`
}

type PhraseSummary struct {
	Phrase      Phrase `json:"phrase"`
	MelodySpan  Span   `json:"melody_span"`
	ChordSpan   Span   `json:"chord_span"`
	StartBeat   int    `json:"start_beat"`
	EndBeat     int    `json:"end_beat"`
	NumNotes    int    `json:"num_notes"`
	NumSegments int    `json:"num_segments"`
}

type SongSummary struct {
	Name           string          `json:"name"`
	TotalMeasures  int             `json:"total_measures"`
	TotalBeats     int             `json:"total_beats"`
	TotalSteps     int             `json:"total_steps"`
	NumNotes       int             `json:"num_notes"`
	NumChords      int             `json:"num_chords"`
	PaddedChords   int             `json:"padded_chords"`
	PaddedMeasures int             `json:"padded_measures"`
	Phrases        []PhraseSummary `json:"phrases"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
