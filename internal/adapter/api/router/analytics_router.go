package router

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/adapter/api/handler"
	"toromarket/internal/adapter/api/middleware"
)

func SetupAnalyticsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	analyticsHandler := handler.GetAnalyticsHandler()

	analytics := e.Group("/v1/analytics")
	analytics.Use(authMiddleware.Authenticate)

	analytics.GET("/overview", analyticsHandler.Overview)
	analytics.GET("/posts-by-month", analyticsHandler.PostsByMonth)
	analytics.GET("/sales-by-month", analyticsHandler.SalesByMonth)
	analytics.GET("/sales-by-category", analyticsHandler.SalesByCategory)
	analytics.GET("/notifications-summary", analyticsHandler.NotificationsSummary)
}
