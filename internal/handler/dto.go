package handler

type RowResponse struct {
	Key       string  `json:"key"`
	PostID    *string `json:"post_id"`
	Text      string  `json:"text"`
	CreatedAt *string `json:"created_at"`
	LikeCount int     `json:"like_count"`
}

type RowsResponse struct {
	Rows   []RowResponse `json:"rows"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
