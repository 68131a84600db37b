package auth

import (
	"errors"
	"strings"

	apierrors "codeberg.org/hearth/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const userContextKey = "auth_user"

var (
	ErrMissingToken = errors.New("authorization header required")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// anything that can turn a bearer token into claims
type Decoder interface {
	Decode(tokenString string) (*Claims, bool)
}

// anything that can sign access and refresh tokens for a user
type Issuer interface {
	IssueAccess(user User) (string, error)
	IssueRefresh(user User) (string, error)
}

// the refresh flow needs both halves
type Refresher interface {
	Decoder
	Issuer
}

// extracts the bearer token from the request and decodes it. the returned
// user is exactly what the token carries; no database lookup happens here
func EnsureAuthenticated(c *gin.Context, tokens Decoder) (*User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, ErrMissingToken
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	// auth schemes are case-insensitive (RFC 7235)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return nil, ErrInvalidToken
	}

	claims, ok := tokens.Decode(token)
	if !ok {
		return nil, ErrInvalidToken
	}

	user := claims.User
	return &user, nil
}

// validates JWT tokens and adds the user to the context.
// aborts with 401 before any later handler runs
func RequireAuth(tokens Decoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := EnsureAuthenticated(c, tokens)
		if err != nil {
			apierrors.Unauthorized(c, err.Error())
			return
		}

		c.Set(userContextKey, user)
		c.Set("user_id", user.ID)

		c.Next()
	}
}

// returns the user stored by RequireAuth
func CurrentUser(c *gin.Context) (*User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*User)
	return user, ok
}
