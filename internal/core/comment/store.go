package comment

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListByArticle(context context.Context, articleID int64, query ListQuery) ([]*Comment, error)
}
