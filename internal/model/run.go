package model

import "time"

// Mode selects which fetch path and which analysis prompt a run uses.
type Mode string

const (
	ModeAccounts Mode = "accounts"
	ModeTopics   Mode = "topics"
)

// Request is one unit of the batch: a handle in account mode, or a search
// query plus its day window in topic mode.
type Request struct {
	Key        string
	WindowDays int
}

// Row is one normalized post. PostID and CreatedAt are nil when the raw
// record carried no such field, which is distinct from an empty value.
// Text is never absent; a post with no recognized text field gets "".
type Row struct {
	Key       string
	PostID    *string
	Text      string
	CreatedAt *string
	LikeCount int
}

// GroupAnalysis is the outcome of one summarization call. Err is a short
// diagnostic when the call failed; exactly one of Text/Err is meaningful.
type GroupAnalysis struct {
	Key  string
	Text string
	Err  string
}

func (a GroupAnalysis) Failed() bool {
	return a.Err != ""
}

// FetchStatus classifies how fetching one key went. Failures are contained
// per key; the status is diagnostic, separate from the data payload.
type FetchStatus string

const (
	FetchOK       FetchStatus = "ok"
	FetchNotFound FetchStatus = "not_found"
	FetchError    FetchStatus = "fetch_error"
)

// KeyReport is the fetch outcome for one requested key.
type KeyReport struct {
	Key       string
	Rows      int
	Malformed int
	Status    FetchStatus
}

type RunResult struct {
	RunID      string
	Mode       Mode
	Rows       []Row
	Malformed  int
	Reports    []KeyReport
	Analyses   []GroupAnalysis
	StartedAt  time.Time
	FinishedAt time.Time
}
