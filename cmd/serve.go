package cmd

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jsphweid/mcpreduce/annotation"
	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/chord"
	"github.com/jsphweid/mcpreduce/constants"
	"github.com/jsphweid/mcpreduce/dataset"
	"github.com/jsphweid/mcpreduce/midi"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/jsphweid/mcpreduce/pipeline"
	"github.com/jsphweid/mcpreduce/reduce"
	"github.com/jsphweid/mcpreduce/render"
	"github.com/jsphweid/mcpreduce/song"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves segmentation and rendering over HTTP",
	Long:  `Serves POST /segment and POST /render`,
	Run: func(cmd *cobra.Command, args []string) {
		logger.Info("listening", "addr", serveAddr)
		log.Fatal(http.ListenAndServe(serveAddr, NewHandler()))
	},
}

func NewHandler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/segment", HandleSegment).Methods("POST")
	router.HandleFunc("/render", HandleRender).Methods("POST")
	return cors.Default().Handler(router)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if apperr.IsParse(err) || apperr.IsConfiguration(err) {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func rawSongFromRequest(r *http.Request) (model.SongRequestBody, dataset.RawSong, error) {
	var input model.SongRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return input, dataset.RawSong{}, apperr.Parse("request body", 0, "%v", err)
	}
	if input.BeatsPerMeasure == 0 {
		input.BeatsPerMeasure = constants.DefaultBeatsPerMeasure
	}
	if input.StepsPerBeat == 0 {
		input.StepsPerBeat = constants.DefaultStepsPerBeat
	}
	if input.BPM == 0 {
		input.BPM = constants.DefaultBPM
	}
	if input.NumSamples == 0 {
		input.NumSamples = constants.DefaultNumSamples
	}

	raw := dataset.RawSong{
		Name:            input.Name,
		BeatsPerMeasure: input.BeatsPerMeasure,
		StepsPerBeat:    input.StepsPerBeat,
	}

	events := make([]model.RawEvent, len(input.Melody))
	for i, m := range input.Melody {
		if m[0] < 0 || m[1] <= 0 {
			return input, raw, apperr.Parse("melody", i+1, "out of range event (%d, %d)", m[0], m[1])
		}
		events[i] = model.RawEvent{Pitch: m[0], Duration: m[1]}
	}
	raw.Notes = annotation.MelodyFromEvents(events)

	var err error
	raw.Chords, err = annotation.ReadChords(strings.NewReader(strings.Join(input.Chords, "\n")), "chords", chord.HarteEncoder{})
	if err != nil {
		return input, raw, err
	}
	raw.Phrases, err = annotation.ParsePhraseLabel(input.Phrase)
	if err != nil {
		return input, raw, err
	}
	if raw.BeatsPerMeasure < 0 || raw.StepsPerBeat < 0 {
		return input, raw, apperr.Configuration("meter must be positive, got %d beats of %d steps", raw.BeatsPerMeasure, raw.StepsPerBeat)
	}
	measures := song.TotalMeasures(raw.Notes, raw.Chords, raw.Phrases, raw.BeatsPerMeasure, raw.StepsPerBeat)
	if measures > constants.MaxRequestMeasures {
		return input, raw, apperr.Parse("request body", 0, "song of %d measures exceeds the limit of %d", measures, constants.MaxRequestMeasures)
	}
	return input, raw, nil
}

func HandleSegment(w http.ResponseWriter, r *http.Request) {
	_, raw, err := rawSongFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s, err := song.New(raw.Name, raw.Notes, raw.Chords, raw.Phrases, song.Options{
		BeatsPerMeasure: raw.BeatsPerMeasure,
		StepsPerBeat:    raw.StepsPerBeat,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Summary())
}

type scoreSink struct {
	score *model.Score
}

func (s scoreSink) Write(score model.Score) error {
	*s.score = score
	return nil
}

func HandleRender(w http.ResponseWriter, r *http.Request) {
	input, raw, err := rawSongFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var score model.Score
	_, err = pipeline.RunSong(raw, reduce.Skeleton{}, pipeline.Options{
		BPM:        input.BPM,
		NumSamples: input.NumSamples,
		NewSink:    func(string) render.Sink { return scoreSink{&score} },
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	if err := midi.Encode(score, w); err != nil {
		logger.Error("writing response", "err", err)
	}
}
