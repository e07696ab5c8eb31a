package comment

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/taibuivan/newsboard/internal/platform/constants"
	"github.com/taibuivan/newsboard/internal/platform/database/schema"
	"github.com/taibuivan/newsboard/internal/platform/dberr"
	"github.com/taibuivan/newsboard/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
ListByArticle returns the comments of one article.

sort_by is not whitelisted here. It is sent as a quoted identifier, so an
unknown column comes back from the store as undefined_column and is
reported to the caller as a bad request. order is not validated either; see
[direction].
*/
func (repository *PostgresRepository) ListByArticle(context context.Context, articleID int64, query ListQuery) ([]*Comment, error) {
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = constants.DefaultSortBy
	}

	statement, args, err := postgres.SQL.
		Select(schema.Comments.Columns()...).
		From(schema.Comments.Table).
		Where(squirrel.Eq{schema.Comments.BelongsTo: articleID}).
		OrderBy(postgres.Ident(sortBy) + " " + direction(query.Order)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := repository.db.Query(context, statement, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		c := &Comment{}
		if err := rows.Scan(&c.ID, &c.Body, &c.Author, &c.BelongsTo, &c.CreatedAt, &c.Votes); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, dberr.Wrap(rows.Err(), "list_comments")
}

// direction maps the comment order query onto a SQL keyword. An empty order
// sorts descending, "desc" in any case sorts descending, and any other value
// sorts ascending.
func direction(order string) string {
	if order == "" || strings.EqualFold(order, constants.OrderDesc) {
		return "DESC"
	}
	return "ASC"
}
