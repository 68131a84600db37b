package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/hearth/server/hearth/settings"
	"codeberg.org/hearth/server/internal/auth"
	"codeberg.org/hearth/server/internal/config"
	"codeberg.org/hearth/server/internal/database"
	"codeberg.org/hearth/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const startupPingTimeout = 5 * time.Second

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// an unreachable database is not fatal, requests that need it will fail
	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()

	if err := db.Ping(pingCtx); err != nil {
		logger.Warn("database not reachable at startup", "error", err, "host", cfg.Database.Host)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestLogger())

	server := &Server{
		db:           db,
		config:       cfg,
		tokens:       tokens,
		settingsRepo: settings.NewRepository(db.SQL()),
		router:       router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
