package auth

// RefreshRequest carries the refresh token to exchange
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPair is the freshly minted access/refresh pair
type TokenPair struct {
	AccessToken     string `json:"accessToken"`
	NewRefreshToken string `json:"newRefreshToken"`
}

// RefreshResponse returned after a successful refresh
type RefreshResponse struct {
	Token TokenPair `json:"token"`
}
