package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"tweetlens/internal/model"
)

func TestWriteAnalysesFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.txt")
	s := NewAnalysisStore(path)

	analyses := []model.GroupAnalysis{
		{Key: "alice", Text: "talks about Go a lot"},
		{Key: "bob", Err: "quota exceeded"},
	}

	err := s.WriteAnalyses(analyses)
	assert.Equal(t, nil, err)

	text, err := s.ReadText()
	assert.Equal(t, nil, err)

	separator := strings.Repeat("=", 50)
	want := "Analysis for 'alice':\n" +
		"talks about Go a lot\n" +
		separator + "\n" +
		"Analysis for 'bob':\n" +
		"ERROR: quota exceeded\n" +
		separator + "\n"

	assert.Equal(t, want, text)
}

func TestWriteAnalysesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.txt")
	s := NewAnalysisStore(path)

	err := s.WriteAnalyses(nil)
	assert.Equal(t, nil, err)

	text, err := s.ReadText()
	assert.Equal(t, nil, err)
	assert.Equal(t, "", text)
}

func TestReadTextMissingFile(t *testing.T) {
	s := NewAnalysisStore(filepath.Join(t.TempDir(), "nope.txt"))

	_, err := s.ReadText()
	assert.NotEqual(t, nil, err)
}
