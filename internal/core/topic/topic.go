package topic

// Topic is a subject area articles are filed under. Slug is its identity.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
