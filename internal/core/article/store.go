package article

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListArticles(context context.Context, params ListParams) ([]*Article, error)
	GetArticleByID(context context.Context, id int64) (*Article, error)

	// IncrementVotes adds delta to the stored votes in a single statement.
	IncrementVotes(context context.Context, id int64, delta int) (*Article, error)
}
