// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package existence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsboard/internal/platform/existence"
	"github.com/taibuivan/newsboard/internal/platform/postgres/pgtest"
)

/*
TestStatement builds one EXISTS lookup per kind.
*/
func TestStatement(t *testing.T) {
	tests := []struct {
		kind existence.Kind
		key  any
		want string
	}{
		{existence.User, "lurker", "SELECT EXISTS ( SELECT 1 FROM users WHERE username = $1 )"},
		{existence.Topic, "paper", "SELECT EXISTS ( SELECT 1 FROM topics WHERE slug = $1 )"},
		{existence.Article, int64(2), "SELECT EXISTS ( SELECT 1 FROM articles WHERE article_id = $1 )"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			query, args, err := existence.Statement(tt.kind, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{tt.key}, args)
		})
	}
}

/*
TestStatement_UnknownKind refuses kinds outside the closed set.
*/
func TestStatement_UnknownKind(t *testing.T) {
	_, _, err := existence.Statement(existence.Kind(99), "x")
	assert.Error(t, err)
}

/*
TestResolver_Exists scans the boolean and forwards the key.
*/
func TestResolver_Exists(t *testing.T) {
	db := pgtest.New().Returns([]any{true}).Returns([]any{false})
	resolver := existence.NewResolver(db)

	found, err := resolver.Exists(context.Background(), existence.User, "butter_bridge")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = resolver.Exists(context.Background(), existence.Topic, "not-a-topic")
	require.NoError(t, err)
	assert.False(t, found)

	calls := db.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, []any{"butter_bridge"}, calls[0].Args)
}

/*
TestResolver_StoreFailure surfaces store errors instead of reporting false.
*/
func TestResolver_StoreFailure(t *testing.T) {
	cause := errors.New("connection reset by peer")
	resolver := existence.NewResolver(pgtest.New().Fails(cause))

	_, err := resolver.Exists(context.Background(), existence.Article, int64(1))
	assert.ErrorIs(t, err, cause)
}
