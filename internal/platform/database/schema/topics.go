package schema

// TopicsTable represents the 'topics' table
type TopicsTable struct {
	Table       string
	Slug        string
	Description string
}

// Topics is the schema definition for topics
var Topics = TopicsTable{
	Table:       "topics",
	Slug:        "slug",
	Description: "description",
}

func (t TopicsTable) Columns() []string {
	return []string{t.Slug, t.Description}
}
