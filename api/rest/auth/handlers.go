package auth

import (
	"net/http"

	"codeberg.org/hearth/server/internal/auth"
	"codeberg.org/hearth/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const (
	msgNoRefreshToken = "No refreshToken provided in the payload."
	msgInvalidToken   = "Invalid token provided."
)

// RefreshHandler godoc
// @Summary Refresh tokens
// @Description Exchange a refresh token for a new access token and refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} RefreshResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/auth/refresh [post]
func RefreshHandler(tokens auth.Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshRequest

		// an unreadable body is treated the same as a missing field
		if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
			errors.BadRequest(c, msgNoRefreshToken, nil)
			return
		}

		claims, ok := tokens.Decode(req.RefreshToken)
		if !ok {
			errors.BadRequest(c, msgInvalidToken, nil)
			return
		}

		// the claims are not re-checked against the users table, so a
		// deleted or changed account keeps refreshing until this token expires
		user := auth.ProjectUser(claims)

		accessToken, err := tokens.IssueAccess(user)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		newRefreshToken, err := tokens.IssueRefresh(user)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, RefreshResponse{
			Token: TokenPair{
				AccessToken:     accessToken,
				NewRefreshToken: newRefreshToken,
			},
		})
	}
}
