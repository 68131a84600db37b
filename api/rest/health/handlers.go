package health

import (
	"context"
	"net/http"
	"time"

	"codeberg.org/hearth/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	serviceName = "hearth"
	version     = "1.0.0"
	pingTimeout = 2 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler godoc
// @Summary Health check
// @Description Reports whether the server and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get]
func Handler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()

		resp := Response{
			Status:   "healthy",
			Service:  serviceName,
			Version:  version,
			Database: "up",
		}

		if err := db.Ping(ctx); err != nil {
			logger.FromContext(c.Request.Context()).Warn("database ping failed", "error", err)

			resp.Status = "degraded"
			resp.Database = "down"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
