package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tweetlens/internal/model"
	"tweetlens/pkg/llm"
)

type groupSummarizer struct {
	llm  llm.Summarizer
	mode model.Mode
}

// summarizeGroups dispatches one completion per group, in group order.
// A failed call yields an entry carrying the diagnostic and never stops the
// remaining groups. Every group gets exactly one entry, empty groups included.
func (s *groupSummarizer) summarizeGroups(ctx context.Context, d Dataset) []model.GroupAnalysis {
	systemPrompt := accountAnalysisPrompt
	if s.mode == model.ModeTopics {
		systemPrompt = topicAnalysisPrompt
	}

	var analyses []model.GroupAnalysis

	for _, key := range d.GroupKeys() {
		if ctx.Err() != nil {
			slog.Warn("summarization cancelled, keeping partial analyses", "done", len(analyses))
			break
		}

		rows := d.RowsFor(key)
		slog.Info("analyzing group", "key", key, "rows", len(rows), "model", s.llm.ModelName())

		text, err := s.llm.Complete(ctx, systemPrompt, buildGroupPrompt(key, rows))
		if err != nil {
			slog.Error("error analyzing group", "key", key, "error", err)
			analyses = append(analyses, model.GroupAnalysis{Key: key, Err: err.Error()})
			continue
		}

		analyses = append(analyses, model.GroupAnalysis{Key: key, Text: text})
	}

	return analyses
}

// buildGroupPrompt concatenates the group's texts one per line with a 1-based
// label. Empty texts still get their numbered line; a silent row stays
// visible to the model rather than being filtered out.
func buildGroupPrompt(key string, rows []model.Row) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tweets for '%s':\n", key))
	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("Tweet %d: %s\n", i+1, row.Text))
	}
	return sb.String()
}
