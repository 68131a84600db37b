package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"
	"time"

	"codeberg.org/hearth/server/internal/config"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Database
		want string
	}{
		{
			name: "full config",
			cfg:  config.Database{Name: "hearth", Host: "db.internal", User: "app", Password: "s3cret", Port: "5432"},
			want: `host='db.internal' port='5432' dbname='hearth' user='app' password='s3cret'`,
		},
		{
			name: "password is quoted",
			cfg:  config.Database{Name: "hearth", Host: "localhost", User: "app", Password: `it's p@ss\word`, Port: "6543"},
			want: `host='localhost' port='6543' dbname='hearth' user='app' password='it\'s p@ss\\word'`,
		},
		{
			name: "socket directory",
			cfg:  config.Database{Name: "hearth", Host: "/var/run/postgresql"},
			want: `host='/var/run/postgresql' port='5432' dbname='hearth'`,
		},
		{
			name: "bad port falls back",
			cfg:  config.Database{Name: "hearth", Host: "localhost", Port: "abc"},
			want: `host='localhost' port='5432' dbname='hearth'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, connSettings(tt.cfg))
		})
	}
}

func TestResolvePort(t *testing.T) {
	tests := []struct {
		raw  string
		want uint16
	}{
		{"", 5432},
		{"6543", 6543},
		{"not-a-port", 5432},
		{"70000", 5432},
		{"0", 5432},
		{"-1", 5432},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, resolvePort(tt.raw))
		})
	}
}

func TestBuilder_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Builder().
		Select("*").
		From("user_settings").
		Where(sq.Eq{`"user"`: int64(42)}).
		Limit(1).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM user_settings WHERE "user" = $1 LIMIT 1`, query)
	assert.Equal(t, []any{int64(42)}, args)
}

func TestOpen_IsLazy(t *testing.T) {
	cfg := config.Database{Name: "hearth", Host: "127.0.0.1", User: "app", Password: "pw", Port: "1", MaxConns: 10}

	db, err := Open(context.Background(), cfg)
	require.NoError(t, err, "opening must not dial the database")
	defer db.Close()

	assert.Equal(t, int32(10), db.pool.Config().MaxConns)
	assert.NotNil(t, db.SQL())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, db.Ping(ctx), "errors surface on first use")
}

func TestOpen_DefaultsMaxConns(t *testing.T) {
	db, err := Open(context.Background(), config.Database{Name: "hearth", Host: "127.0.0.1", Port: "1"})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, int32(10), db.pool.Config().MaxConns)
}

func TestOpen_InvalidPortFallsBack(t *testing.T) {
	db, err := Open(context.Background(), config.Database{Name: "hearth", Host: "localhost", Port: "not-a-port"})
	require.NoError(t, err, "a bad port is logged, not fatal")
	defer db.Close()

	assert.Equal(t, uint16(5432), db.pool.Config().ConnConfig.Port)
}

func TestOpen_SocketHost(t *testing.T) {
	cfg := config.Database{Name: "hearth", Host: "/var/run/postgresql", User: "app", Password: `it's`, Port: "5432"}

	db, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer db.Close()

	connConfig := db.pool.Config().ConnConfig
	assert.Equal(t, "/var/run/postgresql", connConfig.Host)
	assert.Equal(t, "hearth", connConfig.Database)
	assert.Equal(t, "app", connConfig.User)
	assert.Equal(t, `it's`, connConfig.Password)
	assert.Nil(t, connConfig.TLSConfig, "no TLS over a unix socket")
}

func TestMigrations_Embedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}

	assert.Equal(t, []string{"00001_users.sql", "00002_user_settings.sql"}, names)
}

func TestMigrate_CommandAndDir(t *testing.T) {
	original := gooseRun
	defer func() { gooseRun = original }()

	var gotCommand, gotDir string
	gooseRun = func(_ context.Context, command string, _ *sql.DB, dir string) error {
		gotCommand, gotDir = command, dir
		return nil
	}

	require.NoError(t, Migrate(context.Background(), nil, "status", "."))
	assert.Equal(t, "status", gotCommand)
	assert.Equal(t, "migrations", gotDir)

	gooseRun = func(context.Context, string, *sql.DB, string) error {
		return errors.New("relation exists")
	}

	err := Migrate(context.Background(), nil, "up", "")
	assert.ErrorContains(t, err, "migration up failed")
}
