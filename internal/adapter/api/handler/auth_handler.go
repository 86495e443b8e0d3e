package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type verifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// VerifyToken exchanges a Firebase ID token for the local user record,
// creating the record on first sight.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	var req verifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.VerifyToken(c.Request().Context(), req.Token)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
