package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNormalizeRecordPrimaryText(t *testing.T) {
	row, ok := normalizeRecord("alice", map[string]any{
		"id":             json.Number("123"),
		"text":           "hello",
		"full_text":      "ignored",
		"created_at":     "Wed Feb 26 12:00:00 +0000 2026",
		"favorite_count": json.Number("42"),
	})

	assert.Equal(t, true, ok)
	assert.Equal(t, "alice", row.Key)
	assert.Equal(t, "hello", row.Text)
	assert.Equal(t, "123", *row.PostID)
	assert.Equal(t, "Wed Feb 26 12:00:00 +0000 2026", *row.CreatedAt)
	assert.Equal(t, 42, row.LikeCount)
}

func TestNormalizeRecordFallbackText(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]any
		want   string
	}{
		{
			name:   "primary missing",
			record: map[string]any{"full_text": "world"},
			want:   "world",
		},
		{
			name:   "primary empty",
			record: map[string]any{"text": "", "full_text": "world"},
			want:   "world",
		},
		{
			name:   "both missing",
			record: map[string]any{"id": json.Number("1")},
			want:   "",
		},
		{
			name:   "both empty",
			record: map[string]any{"text": "", "full_text": ""},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := normalizeRecord("alice", tt.record)
			assert.Equal(t, true, ok)
			assert.Equal(t, tt.want, row.Text)
		})
	}
}

func TestNormalizeRecordAbsentFields(t *testing.T) {
	row, ok := normalizeRecord("alice", map[string]any{"text": "hi"})

	assert.Equal(t, true, ok)
	assert.Equal(t, nil, row.PostID)
	assert.Equal(t, nil, row.CreatedAt)
	assert.Equal(t, 0, row.LikeCount)
}

func TestNormalizeRecordEmptyCreatedAtIsPresent(t *testing.T) {
	row, ok := normalizeRecord("alice", map[string]any{"text": "hi", "created_at": ""})

	assert.Equal(t, true, ok)
	assert.NotEqual(t, nil, row.CreatedAt)
	assert.Equal(t, "", *row.CreatedAt)
}

func TestNormalizeRecordNotAnObject(t *testing.T) {
	_, ok := normalizeRecord("alice", "just a string")
	assert.Equal(t, false, ok)

	_, ok = normalizeRecord("alice", nil)
	assert.Equal(t, false, ok)

	_, ok = normalizeRecord("alice", []any{"nested"})
	assert.Equal(t, false, ok)
}

func TestNormalizeAllCountsMalformed(t *testing.T) {
	raws := []any{
		map[string]any{"text": "one"},
		"not an object",
		map[string]any{"full_text": "two"},
		json.Number("7"),
	}

	rows, malformed := normalizeAll("alice", raws)

	assert.Equal(t, 2, len(rows))
	assert.Equal(t, 2, malformed)
	assert.Equal(t, "one", rows[0].Text)
	assert.Equal(t, "two", rows[1].Text)
}
