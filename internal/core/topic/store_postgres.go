package topic

import (
	"context"

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

func (repository *PostgresRepository) ListTopics(context context.Context) ([]*Topic, error) {
	query, args, err := postgres.SQL.
		Select(schema.Topics.Columns()...).
		From(schema.Topics.Table).
		OrderBy(schema.Topics.Slug + " ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}
	defer rows.Close()

	topics := make([]*Topic, 0)
	for rows.Next() {
		t := &Topic{}
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_topic")
		}
		topics = append(topics, t)
	}

	return topics, dberr.Wrap(rows.Err(), "list_topics")
}
