package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"tweetlens/internal/model"
)

var datasetHeader = []string{"key", "post_id", "text", "created_at", "like_count"}

// DatasetStore persists the aggregated rows as a CSV file, one data row per
// normalized row in dataset order, header included.
type DatasetStore struct {
	path string
}

func NewDatasetStore(path string) *DatasetStore {
	return &DatasetStore{path: path}
}

func (s *DatasetStore) Path() string {
	return s.path
}

func (s *DatasetStore) WriteRows(rows []model.Row) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("dataset create: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(datasetHeader); err != nil {
		return fmt.Errorf("dataset write: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Key,
			stringOrEmpty(row.PostID),
			row.Text,
			stringOrEmpty(row.CreatedAt),
			strconv.Itoa(row.LikeCount),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("dataset write: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("dataset write: %w", err)
	}

	return f.Close()
}

// ReadRows reads the artifact back. An empty post_id or created_at cell comes
// back as absent; like_count is coerced to int.
func (s *DatasetStore) ReadRows() ([]model.Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("dataset open: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset read: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("dataset read: missing header")
	}

	rows := make([]model.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(datasetHeader) {
			return nil, fmt.Errorf("dataset read: expected %d columns, got %d", len(datasetHeader), len(record))
		}

		likeCount, err := strconv.Atoi(record[4])
		if err != nil {
			likeCount = 0
		}

		rows = append(rows, model.Row{
			Key:       record[0],
			PostID:    emptyAsAbsent(record[1]),
			Text:      record[2],
			CreatedAt: emptyAsAbsent(record[3]),
			LikeCount: likeCount,
		})
	}

	return rows, nil
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func emptyAsAbsent(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
