package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// seam for tests
var gooseRun = func(ctx context.Context, command string, db *sql.DB, dir string) error {
	return goose.RunContext(ctx, command, db, dir)
}

// runs an embedded goose migration command (up, down, status)
func Migrate(ctx context.Context, db *sql.DB, command, dir string) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if dir == "" || dir == "." {
		dir = "migrations"
	}

	if err := gooseRun(ctx, command, db, dir); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	return nil
}
