package database

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"codeberg.org/hearth/server/internal/config"
	"codeberg.org/hearth/server/internal/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// the single long-lived connection handle shared by every repository.
// built once at startup, read-only afterwards
type DB struct {
	pool *pgxpool.Pool
	sql  *sqlx.DB
}

// builds the pool without dialing. a misconfigured or unreachable database
// only surfaces once a query runs
func Open(ctx context.Context, cfg config.Database) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(connSettings(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	return &DB{
		pool: pool,
		sql:  sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx"),
	}, nil
}

const defaultPort = 5432

// renders the DB_* settings as keyword/value pairs. unlike a URL this keeps
// unix socket directories (DB_HOST=/var/run/postgresql) intact, and pgconn
// skips TLS for them. empty settings are left to the PG* env defaults
func connSettings(cfg config.Database) string {
	pairs := []struct{ key, value string }{
		{"host", cfg.Host},
		{"port", strconv.Itoa(int(resolvePort(cfg.Port)))},
		{"dbname", cfg.Name},
		{"user", cfg.User},
		{"password", cfg.Password},
	}

	var b strings.Builder
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(quoteSetting(p.value))
	}

	return b.String()
}

// a bad DB_PORT is a configuration error, not a startup failure
func resolvePort(raw string) uint16 {
	if raw == "" {
		return defaultPort
	}

	port, err := strconv.ParseUint(raw, 10, 16)
	if err != nil || port == 0 {
		logger.Error("invalid DB_PORT, falling back to the default",
			"port", raw,
			"default", defaultPort,
		)
		return defaultPort
	}

	return uint16(port)
}

func quoteSetting(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return "'" + escaped + "'"
}

// returns a statement builder using postgres $n placeholders
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// database/sql view of the pool, used by repositories and migrations
func (d *DB) SQL() *sqlx.DB {
	return d.sql
}

func (d *DB) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

func (d *DB) Close() {
	d.sql.Close() //nolint:errcheck,gosec // closing the wrapper never fails before the pool does
	d.pool.Close()
}
