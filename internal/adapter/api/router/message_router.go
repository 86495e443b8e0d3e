package router

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/adapter/api/handler"
	"toromarket/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)

	messages.POST("", messageHandler.Send)
	messages.GET("", messageHandler.Conversation)
	messages.GET("/inbox", messageHandler.Inbox)
	messages.POST("/mark-read", messageHandler.MarkRead)
	messages.POST("/:id/read", messageHandler.ToggleRead)
	messages.POST("/:id/reply", messageHandler.Reply)
	messages.DELETE("/conversation", messageHandler.DeleteConversation)
}
