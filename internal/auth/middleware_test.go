package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apierrors "codeberg.org/hearth/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(tokens Decoder, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		*reached = true

		user, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusOK, user)
	})

	return router
}

func TestRequireAuth_ValidToken(t *testing.T) {
	s := newTestService(t, &fakeClock{now: issuedAt})

	token, err := s.IssueAccess(testUser())
	require.NoError(t, err)

	var reached bool
	router := newGuardedRouter(s, &reached)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)

	var user User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, testUser(), user)
}

func TestRequireAuth_SchemeIsCaseInsensitive(t *testing.T) {
	s := newTestService(t, &fakeClock{now: issuedAt})

	token, err := s.IssueAccess(testUser())
	require.NoError(t, err)

	for _, scheme := range []string{"bearer", "BEARER", "BeArEr"} {
		t.Run(scheme, func(t *testing.T) {
			var reached bool
			router := newGuardedRouter(s, &reached)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", scheme+" "+token)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, reached)
		})
	}
}

func TestRequireAuth_Rejects(t *testing.T) {
	clock := &fakeClock{now: issuedAt}
	s := newTestService(t, clock)

	valid, err := s.IssueAccess(testUser())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + valid},
		{"no token", "Bearer "},
		{"bare token", valid},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			router := newGuardedRouter(s, &reached)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, reached, "handler must not run without a valid token")

			var body apierrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, apierrors.CodeUnauthorized, body.Error)
		})
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	clock := &fakeClock{now: issuedAt}
	s := newTestService(t, clock)

	token, err := s.IssueAccess(testUser())
	require.NoError(t, err)

	clock.now = issuedAt.Add(15 * time.Minute)

	var reached bool
	router := newGuardedRouter(s, &reached)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestCurrentUser_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	user, ok := CurrentUser(c)
	assert.False(t, ok)
	assert.Nil(t, user)
}
