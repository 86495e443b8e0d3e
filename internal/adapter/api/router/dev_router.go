package router

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/adapter/api/handler"
	"toromarket/pkg/logger"
)

func SetupDevRouter(e *echo.Echo, environment string) {
	if environment != "development" {
		return
	}

	logger.Warn("dev token endpoint enabled, do not run this in production")

	dev := e.Group("/v1/dev")
	dev.GET("/token", handler.GetDevTokenHandler().GenerateToken)
}
