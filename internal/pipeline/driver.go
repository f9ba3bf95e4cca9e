package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tweetlens/internal/model"
	"tweetlens/pkg/llm"
	"tweetlens/pkg/socialdata"
)

const defaultWindowDays = 7

// Provider is the slice of the socialdata API the pipeline uses.
type Provider interface {
	LookupUser(ctx context.Context, handle string) (string, error)
	UserTweets(ctx context.Context, userID string) ([]any, error)
	SearchTweets(ctx context.Context, query string, windowDays int) ([]any, error)
}

// DatasetStore persists the aggregated rows as the tabular artifact.
type DatasetStore interface {
	WriteRows(rows []model.Row) error
}

// AnalysisStore persists the per-group analyses as the text artifact.
type AnalysisStore interface {
	WriteAnalyses(analyses []model.GroupAnalysis) error
}

// Driver runs one batch: resolve/fetch/normalize every key, aggregate,
// persist the dataset, summarize each group, persist the analyses.
type Driver struct {
	provider Provider
	llm      llm.Summarizer
	datasets DatasetStore
	analyses AnalysisStore
	mode     model.Mode
}

func NewDriver(provider Provider, summarizer llm.Summarizer, datasets DatasetStore, analyses AnalysisStore, mode model.Mode) *Driver {
	return &Driver{
		provider: provider,
		llm:      summarizer,
		datasets: datasets,
		analyses: analyses,
		mode:     mode,
	}
}

// Run executes the batch. An empty request list yields an empty result, not
// an error. On cancellation the partial dataset and the analyses produced so
// far are still persisted; the returned error then carries ctx.Err().
func (d *Driver) Run(ctx context.Context, reqs []model.Request) (model.RunResult, error) {
	result := model.RunResult{
		RunID:     uuid.NewString(),
		Mode:      d.mode,
		StartedAt: time.Now(),
	}

	slog.Info("starting run", "run_id", result.RunID, "mode", d.mode, "keys", len(reqs))

	if len(reqs) == 0 {
		result.FinishedAt = time.Now()
		return result, nil
	}

	var reports []model.KeyReport
	fetch := func(ctx context.Context, req model.Request) ([]model.Row, int) {
		rows, malformed, status := d.fetchAndNormalize(ctx, req)
		reports = append(reports, model.KeyReport{
			Key:       req.Key,
			Rows:      len(rows),
			Malformed: malformed,
			Status:    status,
		})
		return rows, malformed
	}

	dataset := aggregate(ctx, reqs, fetch)
	result.Rows = dataset.Rows
	result.Malformed = dataset.Malformed
	result.Reports = reports

	var persistErr error
	if err := d.datasets.WriteRows(dataset.Rows); err != nil {
		slog.Error("error writing dataset", "run_id", result.RunID, "error", err)
		persistErr = fmt.Errorf("writing dataset: %w", err)
	}

	summarizer := &groupSummarizer{llm: d.llm, mode: d.mode}
	result.Analyses = summarizer.summarizeGroups(ctx, dataset)

	if err := d.analyses.WriteAnalyses(result.Analyses); err != nil {
		slog.Error("error writing analyses", "run_id", result.RunID, "error", err)
		persistErr = errors.Join(persistErr, fmt.Errorf("writing analyses: %w", err))
	}

	result.FinishedAt = time.Now()

	slog.Info("run complete",
		"run_id", result.RunID,
		"rows", len(result.Rows),
		"malformed", result.Malformed,
		"groups", len(result.Analyses),
	)

	return result, errors.Join(persistErr, ctx.Err())
}

func (d *Driver) fetchAndNormalize(ctx context.Context, req model.Request) ([]model.Row, int, model.FetchStatus) {
	raws, status := d.fetchRaw(ctx, req)
	rows, malformed := normalizeAll(req.Key, raws)
	return rows, malformed, status
}

// fetchRaw is best effort per key: every failure is logged, classified and
// becomes an empty result so one bad key cannot abort the batch.
func (d *Driver) fetchRaw(ctx context.Context, req model.Request) ([]any, model.FetchStatus) {
	if d.mode == model.ModeTopics {
		windowDays := req.WindowDays
		if windowDays <= 0 {
			windowDays = defaultWindowDays
		}

		raws, err := d.provider.SearchTweets(ctx, req.Key, windowDays)
		if err != nil {
			slog.Error("error searching tweets", "query", req.Key, "error", err)
			return nil, model.FetchError
		}
		return raws, model.FetchOK
	}

	userID, err := d.provider.LookupUser(ctx, req.Key)
	if err != nil {
		if errors.Is(err, socialdata.ErrNotFound) {
			slog.Warn("user not found", "handle", req.Key)
			return nil, model.FetchNotFound
		}
		slog.Error("error resolving handle", "handle", req.Key, "error", err)
		// No id means no fetch attempt for this key.
		return nil, model.FetchError
	}

	raws, err := d.provider.UserTweets(ctx, userID)
	if err != nil {
		slog.Error("error fetching tweets", "handle", req.Key, "error", err)
		return nil, model.FetchError
	}

	return raws, model.FetchOK
}
