package middleware

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/domain/entity"
	"toromarket/pkg/errors"
	"toromarket/pkg/response"
)

// AdminMiddleware gates admin-only routes. Runs after Authenticate, which
// has already attached the local user.
type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*entity.User)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}
		if !user.IsAdmin {
			return response.Error(c, errors.Forbidden("Admin privileges required", nil))
		}
		return next(c)
	}
}
