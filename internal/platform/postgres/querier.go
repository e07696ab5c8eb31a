// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of [pgxpool.Pool] that repositories depend on.
//
// *pgxpool.Pool, *pgxpool.Conn and pgx.Tx all satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// SQL is the statement builder every repository starts from.
// It emits $N placeholders as Postgres expects.
var SQL = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Direction returns the SQL keyword for an order query value.
// Only "asc" sorts ascending; the caller is responsible for validation.
func Direction(order string) string {
	if order == "asc" {
		return "ASC"
	}
	return "DESC"
}

// Ident quotes a single identifier so it can be placed in ORDER BY safely.
func Ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}
