package article

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

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

// column qualifies an articles column with its table name.
func column(name string) string {
	return schema.Articles.Table + "." + name
}

// commentCountExpr counts the joined comments of each grouped article.
var commentCountExpr = fmt.Sprintf("COUNT(%s.%s) AS %s",
	schema.Comments.Table, schema.Comments.ID, schema.Articles.CommentCount)

// selectWithCount is the base read: articles left-joined with their comments,
// grouped per article so every row carries its live comment count.
func selectWithCount() squirrel.SelectBuilder {
	return postgres.SQL.
		Select(
			column(schema.Articles.ID),
			column(schema.Articles.Title),
			column(schema.Articles.Body),
			column(schema.Articles.Topic),
			column(schema.Articles.Author),
			column(schema.Articles.CreatedAt),
			column(schema.Articles.Votes),
			commentCountExpr,
		).
		From(schema.Articles.Table).
		LeftJoin(fmt.Sprintf("%s ON %s.%s = %s",
			schema.Comments.Table,
			schema.Comments.Table, schema.Comments.BelongsTo,
			column(schema.Articles.ID),
		)).
		GroupBy(column(schema.Articles.ID))
}

// sortExpression maps a whitelisted sort column to its SQL expression.
// comment_count sorts on the aggregate alias so it orders as an integer.
func sortExpression(sortBy string) string {
	if sortBy == schema.Articles.CommentCount {
		return schema.Articles.CommentCount
	}
	return column(sortBy)
}

func (repository *PostgresRepository) ListArticles(context context.Context, params ListParams) ([]*Article, error) {
	builder := selectWithCount()

	// Equality filters
	if params.Author != "" {
		builder = builder.Where(squirrel.Eq{column(schema.Articles.Author): params.Author})
	}
	if params.Topic != "" {
		builder = builder.Where(squirrel.Eq{column(schema.Articles.Topic): params.Topic})
	}

	// Sorting; both values are whitelisted by Normalize
	builder = builder.OrderBy(sortExpression(params.SortBy) + " " + postgres.Direction(params.Order))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	articles := make([]*Article, 0)
	for rows.Next() {
		a := &Article{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Topic, &a.Author, &a.CreatedAt, &a.Votes, &a.CommentCount); err != nil {
			return nil, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, a)
	}

	return articles, dberr.Wrap(rows.Err(), "list_articles")
}

func (repository *PostgresRepository) GetArticleByID(context context.Context, id int64) (*Article, error) {
	query, args, err := selectWithCount().
		Where(squirrel.Eq{column(schema.Articles.ID): id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	a := &Article{}
	err = repository.db.QueryRow(context, query, args...).Scan(
		&a.ID, &a.Title, &a.Body, &a.Topic, &a.Author, &a.CreatedAt, &a.Votes, &a.CommentCount,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_article")
	}

	return a, nil
}

func (repository *PostgresRepository) IncrementVotes(context context.Context, id int64, delta int) (*Article, error) {
	// votes = votes + delta runs as one statement, so concurrent patches never
	// lose an update. The comment count is recomputed in RETURNING.
	query, args, err := postgres.SQL.
		Update(schema.Articles.Table).
		Set(schema.Articles.Votes, squirrel.Expr(schema.Articles.Votes+" + ?", delta)).
		Where(squirrel.Eq{schema.Articles.ID: id}).
		Suffix(fmt.Sprintf(
			"RETURNING %s, %s, %s, %s, %s, %s, %s, (SELECT COUNT(*) FROM %s WHERE %s.%s = %s) AS %s",
			schema.Articles.ID, schema.Articles.Title, schema.Articles.Body, schema.Articles.Topic,
			schema.Articles.Author, schema.Articles.CreatedAt, schema.Articles.Votes,
			schema.Comments.Table, schema.Comments.Table, schema.Comments.BelongsTo,
			column(schema.Articles.ID), schema.Articles.CommentCount,
		)).
		ToSql()
	if err != nil {
		return nil, err
	}

	a := &Article{}
	err = repository.db.QueryRow(context, query, args...).Scan(
		&a.ID, &a.Title, &a.Body, &a.Topic, &a.Author, &a.CreatedAt, &a.Votes, &a.CommentCount,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "increment_votes")
	}

	return a, nil
}
