package article

import "time"

// Article is a piece of writing filed under a topic by a user.
//
// CommentCount is derived at read time and never stored. It travels as a
// JSON string for compatibility with existing consumers.
type Article struct {
	ID           int64     `json:"article_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int64     `json:"comment_count,string"`
}

// Client-facing messages
const (
	MsgInvalidSortBy   = "Bad Request"
	MsgInvalidOrder    = "Bad Request: Invalid order query"
	MsgUserNotFound    = "User Not Found"
	MsgTopicNotFound   = "Topic Not Found"
	MsgArticleNotFound = "article_id not found"
)

// Query field names
const (
	FieldSortBy   = "sort_by"
	FieldOrder    = "order"
	FieldAuthor   = "author"
	FieldTopic    = "topic"
	FieldIncVotes = "inc_votes"
)
