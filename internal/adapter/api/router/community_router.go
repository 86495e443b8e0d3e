package router

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/adapter/api/handler"
	"toromarket/internal/adapter/api/middleware"
)

// SetupCommunityRouter wires the campus features: events, reminders, and
// shared resources.
func SetupCommunityRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	eventHandler := handler.GetEventHandler()
	reminderHandler := handler.GetReminderHandler()
	resourceHandler := handler.GetResourceHandler()

	e.GET("/v1/events", eventHandler.List)
	e.GET("/v1/events/:id", eventHandler.GetByID)

	events := e.Group("/v1/events")
	events.Use(authMiddleware.Authenticate)
	events.POST("", eventHandler.Create)
	events.DELETE("/:id", eventHandler.Delete)

	reminders := e.Group("/v1/reminders")
	reminders.Use(authMiddleware.Authenticate)
	reminders.POST("", reminderHandler.Create)
	reminders.GET("", reminderHandler.List)
	reminders.PUT("/:id", reminderHandler.Update)
	reminders.DELETE("/:id", reminderHandler.Delete)
	reminders.POST("/:id/complete", reminderHandler.MarkComplete)

	resources := e.Group("/v1/resources")
	resources.Use(authMiddleware.Authenticate)
	resources.POST("", resourceHandler.Create)
	resources.GET("", resourceHandler.List)
	resources.PUT("/:id", resourceHandler.Update)
	resources.DELETE("/:id", resourceHandler.Delete)
}
