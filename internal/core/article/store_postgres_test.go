package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsboard/internal/core/article"
	"github.com/taibuivan/newsboard/internal/platform/apperr"
	"github.com/taibuivan/newsboard/internal/platform/dberr"
	"github.com/taibuivan/newsboard/internal/platform/postgres/pgtest"
)

const baseSelect = "SELECT articles.article_id, articles.title, articles.body, articles.topic, " +
	"articles.author, articles.created_at, articles.votes, COUNT(comments.comment_id) AS comment_count " +
	"FROM articles LEFT JOIN comments ON comments.belongs_to = articles.article_id"

var createdAt = time.Date(2018, 11, 15, 12, 21, 54, 0, time.UTC)

func articleRow(id int64, title string, commentCount int64) []any {
	return []any{id, title, "body", "mitch", "butter_bridge", createdAt, 100, commentCount}
}

/*
TestPostgresRepository_ListArticles_SQL checks filters and ordering per parameter set.
*/
func TestPostgresRepository_ListArticles_SQL(t *testing.T) {
	tests := []struct {
		name     string
		params   article.ListParams
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "defaults",
			params:  article.ListParams{SortBy: "created_at", Order: "desc"},
			wantSQL: baseSelect + " GROUP BY articles.article_id ORDER BY articles.created_at DESC",
		},
		{
			name:     "author_filter",
			params:   article.ListParams{SortBy: "title", Order: "asc", Author: "butter_bridge"},
			wantSQL:  baseSelect + " WHERE articles.author = $1 GROUP BY articles.article_id ORDER BY articles.title ASC",
			wantArgs: []any{"butter_bridge"},
		},
		{
			name:     "author_and_topic",
			params:   article.ListParams{SortBy: "votes", Order: "desc", Author: "rogersop", Topic: "cats"},
			wantSQL:  baseSelect + " WHERE articles.author = $1 AND articles.topic = $2 GROUP BY articles.article_id ORDER BY articles.votes DESC",
			wantArgs: []any{"rogersop", "cats"},
		},
		{
			name:    "comment_count_sorts_on_aggregate",
			params:  article.ListParams{SortBy: "comment_count", Order: "asc"},
			wantSQL: baseSelect + " GROUP BY articles.article_id ORDER BY comment_count ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := pgtest.New().Returns()

			articles, err := article.NewPostgresRepository(db).ListArticles(context.Background(), tt.params)
			require.NoError(t, err)
			assert.NotNil(t, articles)
			assert.Empty(t, articles)

			calls := db.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantSQL, calls[0].SQL)
			assert.Equal(t, len(tt.wantArgs), len(calls[0].Args))
			for i, arg := range tt.wantArgs {
				assert.Equal(t, arg, calls[0].Args[i])
			}
		})
	}
}

/*
TestPostgresRepository_ListArticles_Scan maps every selected column.
*/
func TestPostgresRepository_ListArticles_Scan(t *testing.T) {
	db := pgtest.New().Returns(articleRow(1, "Living in the shadow of a great man", 13), articleRow(2, "Sony Vaio", 0))

	articles, err := article.NewPostgresRepository(db).ListArticles(context.Background(), article.ListParams{SortBy: "created_at", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, &article.Article{
		ID: 1, Title: "Living in the shadow of a great man", Body: "body", Topic: "mitch",
		Author: "butter_bridge", CreatedAt: createdAt, Votes: 100, CommentCount: 13,
	}, articles[0])
}

/*
TestPostgresRepository_GetArticleByID filters by id and maps missing rows.
*/
func TestPostgresRepository_GetArticleByID(t *testing.T) {
	db := pgtest.New().Returns(articleRow(2, "Sony Vaio", 0)).Returns()
	repository := article.NewPostgresRepository(db)

	found, err := repository.GetArticleByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.ID)

	_, err = repository.GetArticleByID(context.Background(), 9999)
	assert.True(t, errors.Is(err, dberr.ErrNotFound))

	calls := db.Calls()
	assert.Equal(t, baseSelect+" WHERE articles.article_id = $1 GROUP BY articles.article_id", calls[0].SQL)
	assert.Equal(t, []any{int64(2)}, calls[0].Args)
}

/*
TestPostgresRepository_IncrementVotes issues one arithmetic UPDATE.
*/
func TestPostgresRepository_IncrementVotes(t *testing.T) {
	db := pgtest.New().Returns(articleRow(1, "Living in the shadow of a great man", 13))

	updated, err := article.NewPostgresRepository(db).IncrementVotes(context.Background(), 1, -3)
	require.NoError(t, err)
	assert.Equal(t, int64(13), updated.CommentCount)

	calls := db.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t,
		"UPDATE articles SET votes = votes + $1 WHERE article_id = $2 "+
			"RETURNING article_id, title, body, topic, author, created_at, votes, "+
			"(SELECT COUNT(*) FROM comments WHERE comments.belongs_to = articles.article_id) AS comment_count",
		calls[0].SQL,
	)
	assert.Equal(t, []any{-3, int64(1)}, calls[0].Args)
}

/*
TestPostgresRepository_StoreInputFailure reclassifies malformed input as 400.
*/
func TestPostgresRepository_StoreInputFailure(t *testing.T) {
	db := pgtest.New().Fails(&pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange})

	_, err := article.NewPostgresRepository(db).IncrementVotes(context.Background(), 1, 1<<31)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
}
