package pipeline

import (
	"context"
	"log/slog"

	"tweetlens/internal/model"
)

// Dataset is the ordered aggregation of all normalized rows for one run,
// together with the originally requested keys in caller order.
type Dataset struct {
	Keys      []string
	Rows      []model.Row
	Malformed int
}

// fetchFunc produces the normalized rows for one request plus the count of
// raw records skipped as malformed. Failures are contained inside: a bad key
// yields zero rows, never an error.
type fetchFunc func(ctx context.Context, req model.Request) ([]model.Row, int)

// aggregate walks the requests in caller order and appends each key's rows
// in fetch order. Cancellation between keys leaves a valid partial dataset.
func aggregate(ctx context.Context, reqs []model.Request, fetch fetchFunc) Dataset {
	d := Dataset{Keys: make([]string, 0, len(reqs))}
	for _, req := range reqs {
		d.Keys = append(d.Keys, req.Key)
	}

	for _, req := range reqs {
		if ctx.Err() != nil {
			slog.Warn("aggregation cancelled, keeping partial dataset", "rows", len(d.Rows))
			break
		}

		rows, malformed := fetch(ctx, req)
		d.Rows = append(d.Rows, rows...)
		d.Malformed += malformed

		slog.Info("fetch complete", "key", req.Key, "rows", len(rows), "malformed", malformed)
	}

	return d
}

// GroupKeys returns the grouping order: requested keys deduped by first
// occurrence, then any row keys that were never requested, by first
// appearance in the dataset.
func (d Dataset) GroupKeys() []string {
	seen := make(map[string]bool, len(d.Keys))
	keys := make([]string, 0, len(d.Keys))

	for _, k := range d.Keys {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	for _, row := range d.Rows {
		if !seen[row.Key] {
			seen[row.Key] = true
			keys = append(keys, row.Key)
		}
	}

	return keys
}

// RowsFor returns key's rows in dataset order.
func (d Dataset) RowsFor(key string) []model.Row {
	var rows []model.Row
	for _, row := range d.Rows {
		if row.Key == key {
			rows = append(rows, row)
		}
	}
	return rows
}
