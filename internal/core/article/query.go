package article

import (
	"github.com/taibuivan/newsboard/internal/platform/constants"
	"github.com/taibuivan/newsboard/internal/platform/database/schema"
	"github.com/taibuivan/newsboard/internal/platform/validate"
)

// SortableColumns is the whitelist accepted by the sort_by query.
var SortableColumns = []string{
	schema.Articles.ID,
	schema.Articles.Title,
	schema.Articles.Author,
	schema.Articles.Topic,
	schema.Articles.CreatedAt,
	schema.Articles.Votes,
	schema.Articles.CommentCount,
}

// Orders is the whitelist accepted by the order query. Matching is case-sensitive.
var Orders = []string{constants.OrderAsc, constants.OrderDesc}

// ListQuery is the raw listing input. Empty means absent.
type ListQuery struct {
	SortBy string
	Order  string
	Author string
	Topic  string
}

// ListParams is a [ListQuery] that passed validation, with defaults applied.
type ListParams struct {
	SortBy string
	Order  string
	Author string
	Topic  string
}

// Normalize applies defaults and checks sort_by and order against their
// whitelists. sort_by is checked first. Author and topic pass through
// unchecked; whether they exist is only asked when a read comes back empty.
func Normalize(query ListQuery) (ListParams, error) {
	params := ListParams{
		SortBy: query.SortBy,
		Order:  query.Order,
		Author: query.Author,
		Topic:  query.Topic,
	}

	if params.SortBy == "" {
		params.SortBy = constants.DefaultSortBy
	}
	if params.Order == "" {
		params.Order = constants.OrderDesc
	}

	err := validate.New().
		OneOf(params.SortBy, SortableColumns, MsgInvalidSortBy).
		OneOf(params.Order, Orders, MsgInvalidOrder).
		Err()
	if err != nil {
		return ListParams{}, err
	}

	return params, nil
}
