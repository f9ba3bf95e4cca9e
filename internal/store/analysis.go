package store

import (
	"fmt"
	"os"
	"strings"

	"tweetlens/internal/model"
)

var analysisSeparator = strings.Repeat("=", 50)

// AnalysisStore persists the per-group analyses as one plain-text artifact:
// each entry has a header line naming its key, the analysis body (or the
// failure diagnostic), then a separator line.
type AnalysisStore struct {
	path string
}

func NewAnalysisStore(path string) *AnalysisStore {
	return &AnalysisStore{path: path}
}

func (s *AnalysisStore) Path() string {
	return s.path
}

func (s *AnalysisStore) WriteAnalyses(analyses []model.GroupAnalysis) error {
	var sb strings.Builder

	for _, a := range analyses {
		fmt.Fprintf(&sb, "Analysis for '%s':\n", a.Key)
		if a.Failed() {
			fmt.Fprintf(&sb, "ERROR: %s\n", a.Err)
		} else {
			sb.WriteString(a.Text)
			sb.WriteString("\n")
		}
		sb.WriteString(analysisSeparator)
		sb.WriteString("\n")
	}

	if err := os.WriteFile(s.path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("analysis write: %w", err)
	}

	return nil
}

func (s *AnalysisStore) ReadText() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("analysis read: %w", err)
	}
	return string(b), nil
}
