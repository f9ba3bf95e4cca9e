package pipeline

import (
	"encoding/json"

	"tweetlens/internal/model"
)

const (
	primaryTextField   = "text"
	secondaryTextField = "full_text"
)

// normalizeRecord maps one raw provider record into the fixed row schema.
// ok is false when the record is not a JSON object; such records are skipped
// and counted by the caller, never inserted.
func normalizeRecord(key string, raw any) (model.Row, bool) {
	record, isObject := raw.(map[string]any)
	if !isObject {
		return model.Row{}, false
	}

	row := model.Row{Key: key}

	row.Text = stringValue(record[primaryTextField])
	if row.Text == "" {
		row.Text = stringValue(record[secondaryTextField])
	}

	row.PostID = optionalString(record, "id")
	row.CreatedAt = optionalString(record, "created_at")
	row.LikeCount = intValue(record["favorite_count"])

	return row, true
}

// normalizeAll normalizes a raw record sequence for one key, returning the
// rows in input order and the count of malformed entries skipped.
func normalizeAll(key string, raws []any) ([]model.Row, int) {
	rows := make([]model.Row, 0, len(raws))
	malformed := 0

	for _, raw := range raws {
		row, ok := normalizeRecord(key, raw)
		if !ok {
			malformed++
			continue
		}
		rows = append(rows, row)
	}

	return rows, malformed
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

// optionalString keeps a missing field distinguishable from an empty value:
// nil means the provider sent nothing under this name.
func optionalString(record map[string]any, field string) *string {
	v, ok := record[field]
	if !ok || v == nil {
		return nil
	}
	s := stringValue(v)
	return &s
}

func intValue(v any) int {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
