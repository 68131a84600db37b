package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// lifetime of a refresh token (60 * 60 * 24 seconds)
const RefreshTokenTTL = 24 * time.Hour

var ErrMissingSecret = errors.New("jwt secret not set")

// issues and decodes HS256 tokens carrying a User payload.
// access and refresh tokens share one schema and differ only by expiry
type TokenService struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

type Option func(*TokenService)

// overrides the clock used for issuance and expiry checks
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

func NewTokenService(secret string, accessTTL time.Duration, opts ...Option) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	if accessTTL <= 0 {
		return nil, fmt.Errorf("access token ttl must be positive, got %s", accessTTL)
	}

	s := &TokenService{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// signs user with an expiry of now + ttl. a non-positive ttl means the
// default access token lifetime. now is cut to whole seconds first, the
// precision of iat and exp, so exp - iat is always exactly ttl
func (s *TokenService) Issue(user User, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.accessTTL
	}

	now := s.now().Truncate(time.Second)

	claims := Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *TokenService) IssueAccess(user User) (string, error) {
	return s.Issue(user, s.accessTTL)
}

func (s *TokenService) IssueRefresh(user User) (string, error) {
	return s.Issue(user, RefreshTokenTTL)
}

// verifies signature, algorithm and expiry. any failure (malformed, expired,
// wrong secret, unexpected algorithm) yields false; it never returns an error
func (s *TokenService) Decode(tokenString string) (*Claims, bool) {
	if tokenString == "" {
		return nil, false
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		return nil, false
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, false
	}

	return claims, true
}

// copies the allowed user fields out of decoded claims into a fresh User.
// every field is listed explicitly and Deleted is always reset to false
func ProjectUser(claims *Claims) User {
	decoded := claims.User

	return User{
		ID:        decoded.ID,
		FirstName: decoded.FirstName,
		LastName:  decoded.LastName,
		Email:     decoded.Email,
		Username:  decoded.Username,
		Avatar:    decoded.Avatar,
		IsAdmin:   decoded.IsAdmin,
		Deleted:   false,
	}
}
