package settings

import (
	"codeberg.org/hearth/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, tokens auth.Decoder, repo Finder) {
	settings := rg.Group("/settings")
	settings.Use(auth.RequireAuth(tokens)) // all settings routes require authentication

	settings.GET("", GetSettings(repo))
}
