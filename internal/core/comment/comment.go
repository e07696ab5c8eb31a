package comment

import "time"

// Comment is a user's reply attached to exactly one article.
type Comment struct {
	ID        int64     `json:"comment_id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	BelongsTo int64     `json:"belongs_to"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `json:"votes"`
}

// ListQuery is the raw comment listing input. Empty means absent.
type ListQuery struct {
	SortBy string
	Order  string
}

// Client-facing messages
const (
	MsgArticleNotFound = "article_id not found"
)

// Query field names
const (
	FieldSortBy = "sort_by"
	FieldOrder  = "order"
)
