package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tweetlens/internal/model"
)

// RowStore reads the persisted tabular dataset of the latest run.
type RowStore interface {
	ReadRows() ([]model.Row, error)
}

// AnalysisReader reads the persisted analysis artifact of the latest run.
type AnalysisReader interface {
	ReadText() (string, error)
}

type RunHandler struct {
	rows     RowStore
	analyses AnalysisReader
}

func NewRunHandler(rows RowStore, analyses AnalysisReader) *RunHandler {
	return &RunHandler{rows: rows, analyses: analyses}
}

func (h *RunHandler) GetRows(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	rows, err := h.rows.ReadRows()
	if err != nil {
		slog.Error("error reading dataset", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Dataset unavailable"})
		return
	}

	total := len(rows)

	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	res := RowsResponse{
		Rows:   make([]RowResponse, 0, end-offset),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}

	for _, row := range rows[offset:end] {
		res.Rows = append(res.Rows, RowResponse{
			Key:       row.Key,
			PostID:    row.PostID,
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
			LikeCount: row.LikeCount,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *RunHandler) GetAnalyses(c *gin.Context) {
	text, err := h.analyses.ReadText()
	if err != nil {
		slog.Error("error reading analyses", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analyses unavailable"})
		return
	}

	c.String(http.StatusOK, text)
}

func (h *RunHandler) GetHealth(c *gin.Context) {
	_, err := h.rows.ReadRows()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"dataset": "unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"dataset": "available",
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
