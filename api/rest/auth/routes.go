package auth

import (
	"codeberg.org/hearth/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, tokens auth.Refresher) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/refresh", RefreshHandler(tokens))
	}
}
