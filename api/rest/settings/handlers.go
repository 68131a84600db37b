package settings

import (
	"context"
	stderrors "errors"
	"net/http"

	"codeberg.org/hearth/server/hearth/settings"
	"codeberg.org/hearth/server/internal/auth"
	"codeberg.org/hearth/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// the read side of the settings repository
type Finder interface {
	FindByUser(ctx context.Context, userID int64) (settings.Settings, error)
}

// GetSettings godoc
// @Summary Get user settings
// @Description Returns the settings row of the authenticated user
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/settings [get]
// @Security BearerAuth
func GetSettings(repo Finder) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		row, err := repo.FindByUser(c.Request.Context(), user.ID)
		if err != nil {
			// every account gets a settings row when it is created, so a
			// missing one is our fault rather than the client's
			if stderrors.Is(err, settings.ErrNotFound) {
				errors.InternalError(c, "Could not load user settings.", err)
				return
			}

			errors.InternalError(c, "failed to fetch user settings", err)
			return
		}

		c.JSON(http.StatusOK, SettingsResponse{
			Success: true,
			Data:    row,
		})
	}
}
