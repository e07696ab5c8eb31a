package schema

// CommentsTable represents the 'comments' table
type CommentsTable struct {
	Table     string
	ID        string
	Body      string
	Author    string
	BelongsTo string
	CreatedAt string
	Votes     string
}

// Comments is the schema definition for comments
var Comments = CommentsTable{
	Table:     "comments",
	ID:        "comment_id",
	Body:      "body",
	Author:    "author",
	BelongsTo: "belongs_to",
	CreatedAt: "created_at",
	Votes:     "votes",
}

func (t CommentsTable) Columns() []string {
	return []string{t.ID, t.Body, t.Author, t.BelongsTo, t.CreatedAt, t.Votes}
}
