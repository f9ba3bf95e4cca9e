package pipeline

import (
	"context"
	"testing"

	"github.com/go-playground/assert/v2"

	"tweetlens/internal/model"
)

func rowsFor(key string, texts ...string) []model.Row {
	rows := make([]model.Row, 0, len(texts))
	for _, text := range texts {
		rows = append(rows, model.Row{Key: key, Text: text})
	}
	return rows
}

func TestAggregatePreservesOrder(t *testing.T) {
	perKey := map[string][]model.Row{
		"alice": rowsFor("alice", "a1", "a2"),
		"bob":   rowsFor("bob", "b1"),
	}

	var visited []string
	fetch := func(ctx context.Context, req model.Request) ([]model.Row, int) {
		visited = append(visited, req.Key)
		return perKey[req.Key], 0
	}

	d := aggregate(context.Background(), []model.Request{{Key: "alice"}, {Key: "bob"}}, fetch)

	assert.Equal(t, []string{"alice", "bob"}, visited)
	assert.Equal(t, []string{"alice", "bob"}, d.Keys)
	assert.Equal(t, 3, len(d.Rows))
	assert.Equal(t, "a1", d.Rows[0].Text)
	assert.Equal(t, "a2", d.Rows[1].Text)
	assert.Equal(t, "b1", d.Rows[2].Text)
}

func TestAggregateSumsMalformed(t *testing.T) {
	fetch := func(ctx context.Context, req model.Request) ([]model.Row, int) {
		return nil, 1
	}

	d := aggregate(context.Background(), []model.Request{{Key: "a"}, {Key: "b"}}, fetch)

	assert.Equal(t, 2, d.Malformed)
	assert.Equal(t, 0, len(d.Rows))
}

func TestAggregateCancelledKeepsPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	fetch := func(ctx context.Context, req model.Request) ([]model.Row, int) {
		cancel() // cancel after the first key has been fetched
		return rowsFor(req.Key, "row"), 0
	}

	d := aggregate(ctx, []model.Request{{Key: "a"}, {Key: "b"}}, fetch)

	assert.Equal(t, 1, len(d.Rows))
	assert.Equal(t, "a", d.Rows[0].Key)
	// requested keys are still all recorded
	assert.Equal(t, []string{"a", "b"}, d.Keys)
}

func TestGroupKeysFirstAppearance(t *testing.T) {
	d := Dataset{
		Keys: []string{"A", "B", "A"},
		Rows: append(append(rowsFor("A", "a1"), rowsFor("B", "b1")...), rowsFor("A", "a2")...),
	}

	assert.Equal(t, []string{"A", "B"}, d.GroupKeys())

	a := d.RowsFor("A")
	assert.Equal(t, 2, len(a))
	assert.Equal(t, "a1", a[0].Text)
	assert.Equal(t, "a2", a[1].Text)
}

func TestGroupKeysIncludesZeroRowKeys(t *testing.T) {
	d := Dataset{
		Keys: []string{"alice", "bob"},
		Rows: rowsFor("alice", "hello"),
	}

	assert.Equal(t, []string{"alice", "bob"}, d.GroupKeys())
	assert.Equal(t, 0, len(d.RowsFor("bob")))
}
