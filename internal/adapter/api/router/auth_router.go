package router

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/verify", authHandler.VerifyToken)
}
