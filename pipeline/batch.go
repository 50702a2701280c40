package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jsphweid/mcpreduce/chord"
	"github.com/jsphweid/mcpreduce/dataset"
	"github.com/jsphweid/mcpreduce/reduce"
	"github.com/jsphweid/mcpreduce/util"
	"github.com/pkg/errors"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// SongError ties a failure to the song it happened in.
type SongError struct {
	Song string
	Err  error
}

func (e SongError) Error() string {
	return fmt.Sprintf("song %s: %v", e.Song, e.Err)
}

func (e SongError) Unwrap() error {
	return e.Err
}

type Summary struct {
	RunID     string
	Processed []Result
	Failed    []SongError
}

// Batch processes songs one after another. A failing song is recorded and
// the batch moves on unless Options.FailFast is set.
type Batch struct {
	Config  dataset.Config
	Encoder chord.Encoder
	Reducer reduce.Reducer
	Options Options
	Logger  *slog.Logger

	// Progress receives a progress bar when not nil.
	Progress io.Writer
}

func (b Batch) newBar(total int) (*mpb.Progress, *mpb.Bar) {
	if b.Progress == nil || total == 0 {
		return nil, nil
	}
	p := mpb.New(mpb.WithOutput(b.Progress), mpb.WithWidth(64))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Reducing: "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)
	return p, bar
}

func (b Batch) Run(ids []int) (Summary, error) {
	summary := Summary{RunID: uuid.New().String()}
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("run", summary.RunID)

	if err := util.EnsureOutputDir(b.Options.OutDir); err != nil {
		return summary, errors.Wrap(err, "creating output dir")
	}

	p, bar := b.newBar(len(ids))
	defer func() {
		if p != nil {
			p.Wait()
		}
	}()

	names := dataset.CreateSongNameMap(ids)
	for _, id := range ids {
		name := names[id]
		res, err := b.runOne(id)
		if bar != nil {
			bar.Increment()
		}
		if err != nil {
			logger.Error("song failed", "song", name, "err", err)
			summary.Failed = append(summary.Failed, SongError{Song: name, Err: err})
			if b.Options.FailFast {
				if bar != nil {
					bar.Abort(false)
				}
				return summary, summary.Failed[len(summary.Failed)-1]
			}
			continue
		}
		logger.Debug("song done", "song", name,
			"measures", res.Summary.TotalMeasures,
			"phrases", len(res.Summary.Phrases),
			"padded_chords", res.Summary.PaddedChords,
			"padded_measures", res.Summary.PaddedMeasures)
		summary.Processed = append(summary.Processed, res)
	}

	logger.Info("batch finished", "processed", len(summary.Processed), "failed", len(summary.Failed))
	return summary, nil
}

func (b Batch) runOne(id int) (Result, error) {
	raw, err := dataset.ReadSong(b.Config, id, b.Encoder)
	if err != nil {
		return Result{}, err
	}
	return RunSong(raw, b.Reducer, b.Options)
}
