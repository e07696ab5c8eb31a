// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package existence confirms that a referenced entity is present in the store.

It is only consulted after a filtered read came back empty, to tell
"nothing matched" apart from "the thing you filtered by does not exist".
The set of entity kinds is closed, so table and column names never come
from the caller.
*/
package existence

import (
	"context"
	"fmt"

	"github.com/taibuivan/newsboard/internal/platform/database/schema"
	"github.com/taibuivan/newsboard/internal/platform/dberr"
	"github.com/taibuivan/newsboard/internal/platform/postgres"
)

// Kind is an entity that can be resolved by key.
type Kind uint8

const (
	// User resolves users.username.
	User Kind = iota + 1
	// Topic resolves topics.slug.
	Topic
	// Article resolves articles.article_id.
	Article
)

type target struct {
	table  string
	column string
}

var targets = map[Kind]target{
	User:    {table: schema.Users.Table, column: schema.Users.Username},
	Topic:   {table: schema.Topics.Table, column: schema.Topics.Slug},
	Article: {table: schema.Articles.Table, column: schema.Articles.ID},
}

// String names the kind for logs.
func (k Kind) String() string {
	switch k {
	case User:
		return "user"
	case Topic:
		return "topic"
	case Article:
		return "article"
	default:
		return "unknown"
	}
}

// Checker is the contract consumed by services.
type Checker interface {
	Exists(ctx context.Context, kind Kind, key any) (bool, error)
}

// Resolver implements [Checker] against Postgres.
type Resolver struct {
	db postgres.Querier
}

// NewResolver creates a Resolver on top of db.
func NewResolver(db postgres.Querier) *Resolver {
	return &Resolver{db: db}
}

// Exists reports whether an entity of kind with the given key is stored.
// Store failures are returned, never folded into false.
func (resolver *Resolver) Exists(ctx context.Context, kind Kind, key any) (bool, error) {
	query, args, err := Statement(kind, key)
	if err != nil {
		return false, err
	}

	var found bool
	if err := resolver.db.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, dberr.Wrap(err, "exists_"+kind.String())
	}
	return found, nil
}

// Statement builds the minimal existence lookup for kind.
func Statement(kind Kind, key any) (string, []any, error) {
	t, ok := targets[kind]
	if !ok {
		return "", nil, fmt.Errorf("existence: unknown entity kind %d", kind)
	}

	return postgres.SQL.
		Select("1").
		From(t.table).
		Where(t.column+" = ?", key).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
}
