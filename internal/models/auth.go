package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenRequest exchanges a partner API key for an access token.
type TokenRequest struct {
	PartnerID string `json:"partner_id" validate:"required"`
	APIKey    string `json:"api_key" validate:"required"`
}

// TokenResponse returns the issued bearer token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
}

// JWTClaims identify the calling partner on protected routes.
type JWTClaims struct {
	PartnerID string `json:"partner_id"`
	jwt.RegisteredClaims
}
