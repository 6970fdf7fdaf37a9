package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/registrar-mock-api/internal/models"
	appErrors "github.com/noah-isme/registrar-mock-api/pkg/errors"
	"github.com/noah-isme/registrar-mock-api/pkg/response"
)

// ContextPartnerKey is the gin context key storing JWT claims.
const ContextPartnerKey = "currentPartner"

// TokenValidator verifies bearer tokens.
type TokenValidator interface {
	ValidateToken(raw string) (*models.JWTClaims, error)
}

// JWT protects routes by requiring a valid partner access token. It runs
// before any registry or enrollment logic, so unauthenticated calls always
// yield 401 regardless of the target resource.
func JWT(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextPartnerKey, claims)
		c.Next()
	}
}
