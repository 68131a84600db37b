package main

import (
	"codeberg.org/hearth/server/api/rest/auth"
	"codeberg.org/hearth/server/api/rest/health"
	"codeberg.org/hearth/server/api/rest/settings"
	"codeberg.org/hearth/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config.AllowedOrigins))
	router.GET("/health", health.Handler(server.db))

	api := router.Group("/api")

	{
		api.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(api, server.tokens)
		settings.RegisterRoutes(api, server.tokens, server.settingsRepo)
	}
}

// allows the configured origins, or any origin when none are configured
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", logger.RequestIDHeader)
	cfg.ExposeHeaders = []string{logger.RequestIDHeader}

	return cors.New(cfg)
}
