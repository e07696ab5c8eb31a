// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pgtest provides an in-memory [postgres.Querier] for repository tests.
//
// Responses are queued in the order the repository is expected to issue its
// statements; every statement and its arguments are recorded for assertions.
package pgtest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Call is one recorded statement.
type Call struct {
	SQL  string
	Args []any
}

type response struct {
	rows [][]any
	err  error
}

// Querier records statements and replays queued responses.
type Querier struct {
	mu        sync.Mutex
	calls     []Call
	responses []response
}

// New returns an empty Querier.
func New() *Querier {
	return &Querier{}
}

// Returns queues a result set for the next statement.
func (q *Querier) Returns(rows ...[]any) *Querier {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.responses = append(q.responses, response{rows: rows})
	return q
}

// Fails queues an error for the next statement.
func (q *Querier) Fails(err error) *Querier {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.responses = append(q.responses, response{err: err})
	return q
}

// Calls returns a copy of every recorded statement.
func (q *Querier) Calls() []Call {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Call(nil), q.calls...)
}

func (q *Querier) next(sql string, args []any) response {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.calls = append(q.calls, Call{SQL: sql, Args: args})
	if len(q.responses) == 0 {
		return response{err: fmt.Errorf("pgtest: unexpected statement %q", sql)}
	}
	head := q.responses[0]
	q.responses = q.responses[1:]
	return head
}

// Query implements postgres.Querier.
func (q *Querier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	res := q.next(sql, args)
	if res.err != nil {
		return nil, res.err
	}
	return &rows{data: res.rows, index: -1}, nil
}

// QueryRow implements postgres.Querier.
func (q *Querier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	res := q.next(sql, args)
	return &row{res: res}
}

// Exec implements postgres.Querier.
func (q *Querier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	res := q.next(sql, args)
	if res.err != nil {
		return pgconn.CommandTag{}, res.err
	}
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", len(res.rows))), nil
}

// # Rows

type rows struct {
	data   [][]any
	index  int
	closed bool
}

func (r *rows) Close()                                       { r.closed = true }
func (r *rows) Err() error                                   { return nil }
func (r *rows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *rows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *rows) RawValues() [][]byte                          { return nil }
func (r *rows) Conn() *pgx.Conn                              { return nil }

func (r *rows) Next() bool {
	if r.closed {
		return false
	}
	r.index++
	return r.index < len(r.data)
}

func (r *rows) Values() ([]any, error) {
	if r.index < 0 || r.index >= len(r.data) {
		return nil, fmt.Errorf("pgtest: no current row")
	}
	return r.data[r.index], nil
}

func (r *rows) Scan(dest ...any) error {
	values, err := r.Values()
	if err != nil {
		return err
	}
	return assign(values, dest)
}

type row struct {
	res response
}

func (r *row) Scan(dest ...any) error {
	if r.res.err != nil {
		return r.res.err
	}
	if len(r.res.rows) == 0 {
		return pgx.ErrNoRows
	}
	return assign(r.res.rows[0], dest)
}

// assign copies values into pointer destinations, converting where the
// Go types are convertible (e.g. int -> int64).
func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("pgtest: %d values for %d destinations", len(values), len(dest))
	}

	for i, value := range values {
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("pgtest: destination %d is not a pointer", i)
		}
		elem := target.Elem()

		if value == nil {
			elem.Set(reflect.Zero(elem.Type()))
			continue
		}

		source := reflect.ValueOf(value)
		switch {
		case source.Type().AssignableTo(elem.Type()):
			elem.Set(source)
		case source.Type().ConvertibleTo(elem.Type()):
			elem.Set(source.Convert(elem.Type()))
		default:
			return fmt.Errorf("pgtest: cannot scan %T into %s", value, elem.Type())
		}
	}
	return nil
}
