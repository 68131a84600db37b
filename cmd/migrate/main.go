package main

import (
	"context"
	"os"
	"time"

	"codeberg.org/hearth/server/internal/config"
	"codeberg.org/hearth/server/internal/database"
	"codeberg.org/hearth/server/internal/logger"
)

// applies the embedded schema migrations, e.g.
//
//	go run ./cmd/migrate -command up
func main() {
	flags, err := config.ParseMigrateFlags(os.Args[1:])
	if err != nil {
		logger.Fatal("invalid flags", "error", err)
	}

	dbConfig := config.LoadDatabase()

	if missing := dbConfig.Missing(); len(missing) > 0 {
		logger.Fatal("database configuration incomplete", "missing", missing)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.Open(ctx, dbConfig)
	if err != nil {
		logger.Fatal("failed to open database", "error", err)
	}
	defer db.Close()

	logger.Info("running migrations", "command", flags.Command, "host", dbConfig.Host, "database", dbConfig.Name)

	if err := database.Migrate(ctx, db.SQL().DB, flags.Command, flags.Dir); err != nil {
		db.Close()
		logger.Fatal("migration failed", "error", err)
	}

	logger.Info("migrations finished", "command", flags.Command)
}
