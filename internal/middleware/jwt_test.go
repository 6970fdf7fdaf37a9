package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/registrar-mock-api/internal/models"
	appErrors "github.com/noah-isme/registrar-mock-api/pkg/errors"
)

type tokenValidatorStub struct {
	claims *models.JWTClaims
	err    error
}

func (s *tokenValidatorStub) ValidateToken(raw string) (*models.JWTClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func runJWT(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/programs", nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c.Request = req
	JWT(validator)(c)
	return w, c
}

func TestJWTMissingHeader(t *testing.T) {
	w, c := runJWT(t, &tokenValidatorStub{}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestJWTMalformedHeader(t *testing.T) {
	w, c := runJWT(t, &tokenValidatorStub{}, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestJWTInvalidToken(t *testing.T) {
	w, c := runJWT(t, &tokenValidatorStub{err: appErrors.ErrUnauthorized}, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestJWTValidTokenStoresClaims(t *testing.T) {
	claims := &models.JWTClaims{PartnerID: "acme"}
	_, c := runJWT(t, &tokenValidatorStub{claims: claims}, "Bearer good")

	assert.False(t, c.IsAborted())
	stored, exists := c.Get(ContextPartnerKey)
	require.True(t, exists)
	assert.Equal(t, claims, stored)
}
