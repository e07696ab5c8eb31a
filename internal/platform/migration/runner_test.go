// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsboard/internal/platform/migration"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeMigrator struct {
	version uint
	dirty   bool
	verErr  error
	upErr   error
	ups     int
	closed  bool
}

func (m *fakeMigrator) Version() (uint, bool, error) { return m.version, m.dirty, m.verErr }

func (m *fakeMigrator) Close() (error, error) {
	m.closed = true
	return nil, nil
}

func (m *fakeMigrator) Up() error {
	m.ups++
	if m.upErr == nil {
		m.version++
	}
	return m.upErr
}

/*
TestApply covers fresh, current, dirty and failing databases.
*/
func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		m       *fakeMigrator
		wantErr bool
		wantUps int
	}{
		{"fresh_database", &fakeMigrator{verErr: migrate.ErrNilVersion}, false, 1},
		{"already_current", &fakeMigrator{version: 1, upErr: migrate.ErrNoChange}, false, 1},
		{"dirty_refused", &fakeMigrator{version: 1, dirty: true}, true, 0},
		{"version_lookup_fails", &fakeMigrator{verErr: errors.New("connection refused")}, true, 0},
		{"up_fails", &fakeMigrator{upErr: errors.New("syntax error")}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := migration.Apply(tt.m, discard)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantUps, tt.m.ups)
			assert.True(t, tt.m.closed)
		})
	}
}

/*
TestPgx5DSN rewrites only URL schemes the driver does not register.
*/
func TestPgx5DSN(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@localhost:5432/nc_news", migration.Pgx5DSN("postgres://u:p@localhost:5432/nc_news"))
	assert.Equal(t, "pgx5://localhost/nc_news", migration.Pgx5DSN("postgresql://localhost/nc_news"))
	assert.Equal(t, "pgx5://localhost/nc_news", migration.Pgx5DSN("pgx5://localhost/nc_news"))
	assert.Equal(t, "host=localhost dbname=nc_news", migration.Pgx5DSN("host=localhost dbname=nc_news"))
}
