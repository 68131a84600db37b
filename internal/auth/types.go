package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// the user fields carried inside every token. there is deliberately no
// password field: anything built from decoded claims cannot hold one
type User struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Avatar    *string `json:"avatar"`
	IsAdmin   bool    `json:"is_admin"`
	Deleted   bool    `json:"deleted"`
}

// represents JWT claims
type Claims struct {
	User
	jwt.RegisteredClaims
}
