package main

import (
	"codeberg.org/hearth/server/hearth/settings"
	"codeberg.org/hearth/server/internal/auth"
	"codeberg.org/hearth/server/internal/config"
	"codeberg.org/hearth/server/internal/database"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *database.DB
	config       *config.Config
	tokens       *auth.TokenService
	settingsRepo *settings.Repository
	router       *gin.Engine
}
