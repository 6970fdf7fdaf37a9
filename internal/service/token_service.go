package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/registrar-mock-api/internal/models"
	appErrors "github.com/noah-isme/registrar-mock-api/pkg/errors"
)

// TokenConfig defines configuration for partner token flows.
type TokenConfig struct {
	Secret string
	Issuer string
	Expiry time.Duration
	// PartnerKeyHash is the bcrypt hash of the accepted partner API key.
	// Token issuing is disabled when empty.
	PartnerKeyHash string
}

// TokenService issues and validates partner access tokens. Real deployments
// delegate authentication to the OAuth provider; the mock keeps the same
// bearer-token surface with a single configured partner credential.
type TokenService struct {
	config    TokenConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTokenService constructs a TokenService instance.
func NewTokenService(config TokenConfig, validate *validator.Validate, logger *zap.Logger) *TokenService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Expiry <= 0 {
		config.Expiry = 24 * time.Hour
	}
	return &TokenService{config: config, validator: validate, logger: logger}
}

// IssuingEnabled reports whether a partner credential is configured.
func (s *TokenService) IssuingEnabled() bool {
	return s.config.PartnerKeyHash != ""
}

// Issue exchanges a partner API key for a signed access token.
func (s *TokenService) Issue(ctx context.Context, req models.TokenRequest) (*models.TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid token payload")
	}
	if !s.IssuingEnabled() {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "token issuing disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.config.PartnerKeyHash), []byte(req.APIKey)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := &models.JWTClaims{
		PartnerID: req.PartnerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.Issuer,
			Subject:   req.PartnerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}

	s.logger.Info("partner token issued", zap.String("partner_id", req.PartnerID))

	return &models.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.Expiry.Seconds()),
		IssuedAt:    now,
	}, nil
}

// ValidateToken parses and verifies a bearer token, returning its claims.
func (s *TokenService) ValidateToken(raw string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid access token")
	}
	return claims, nil
}
