package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/registrar-mock-api/internal/models"
	appErrors "github.com/noah-isme/registrar-mock-api/pkg/errors"
	"github.com/noah-isme/registrar-mock-api/pkg/response"
)

type tokenIssuer interface {
	Issue(ctx context.Context, req models.TokenRequest) (*models.TokenResponse, error)
}

// AuthHandler exposes the partner token exchange.
type AuthHandler struct {
	tokens tokenIssuer
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(tokens tokenIssuer) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// Token godoc
// @Summary Exchange a partner API key for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.TokenRequest true "Partner credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	token, err := h.tokens.Issue(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, token)
}
