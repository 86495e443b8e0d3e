package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/errors"
	"toromarket/pkg/response"
)

// AuthMiddleware verifies the bearer token and attaches the local user to
// the request context under "uid" and "user".
type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		result, err := m.authUseCase.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return response.Error(c, err)
		}

		c.Set("uid", result.User.ID)
		c.Set("user", result.User)

		return next(c)
	}
}
