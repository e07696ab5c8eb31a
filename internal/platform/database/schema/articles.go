package schema

// ArticlesTable represents the 'articles' table
type ArticlesTable struct {
	Table     string
	ID        string
	Title     string
	Body      string
	Topic     string
	Author    string
	CreatedAt string
	Votes     string

	// CommentCount is the alias of the derived per-article comment aggregate.
	CommentCount string
}

// Articles is the schema definition for articles
var Articles = ArticlesTable{
	Table:        "articles",
	ID:           "article_id",
	Title:        "title",
	Body:         "body",
	Topic:        "topic",
	Author:       "author",
	CreatedAt:    "created_at",
	Votes:        "votes",
	CommentCount: "comment_count",
}

func (t ArticlesTable) Columns() []string {
	return []string{t.ID, t.Title, t.Body, t.Topic, t.Author, t.CreatedAt, t.Votes}
}
