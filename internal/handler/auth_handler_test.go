package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/registrar-mock-api/internal/models"
	appErrors "github.com/noah-isme/registrar-mock-api/pkg/errors"
)

type tokenIssuerMock struct {
	resp    *models.TokenResponse
	err     error
	lastReq models.TokenRequest
}

func (m *tokenIssuerMock) Issue(ctx context.Context, req models.TokenRequest) (*models.TokenResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

func postToken(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/auth/token", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	h.Token(c)
	return w
}

func TestAuthHandlerToken(t *testing.T) {
	mock := &tokenIssuerMock{resp: &models.TokenResponse{AccessToken: "jwt", TokenType: "Bearer"}}
	h := NewAuthHandler(mock)

	w := postToken(t, h, `{"partner_id":"acme","api_key":"secret"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acme", mock.lastReq.PartnerID)
	assert.Contains(t, w.Body.String(), `"access_token":"jwt"`)
}

func TestAuthHandlerTokenInvalidBody(t *testing.T) {
	h := NewAuthHandler(&tokenIssuerMock{})

	w := postToken(t, h, `{"partner_id":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerTokenRejected(t *testing.T) {
	h := NewAuthHandler(&tokenIssuerMock{err: appErrors.ErrInvalidCredentials})

	w := postToken(t, h, `{"partner_id":"acme","api_key":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
