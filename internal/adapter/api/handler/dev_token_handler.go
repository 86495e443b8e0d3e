package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/domain/repository"
	"toromarket/internal/infrastructure/firebase"
	"toromarket/pkg/errors"
	"toromarket/pkg/response"
)

// DevTokenHandler mints custom tokens for local testing. Only routed in
// development.
type DevTokenHandler struct {
	authClient *firebase.AuthClient
	userRepo   repository.UserRepository
}

var devTokenHandler *DevTokenHandler

func SetupDevTokenHandler(authClient *firebase.AuthClient, userRepo repository.UserRepository) {
	devTokenHandler = &DevTokenHandler{
		authClient: authClient,
		userRepo:   userRepo,
	}
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.Error(c, errors.BadRequest("email query param is required", nil))
	}

	user, err := h.userRepo.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}

	token, err := h.authClient.CustomToken(c.Request().Context(), user.ID)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to mint token", err))
	}

	return response.Success(c, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}
