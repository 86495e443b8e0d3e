package router

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/adapter/api/handler"
	"toromarket/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)

	favorites.POST("", favoriteHandler.Add)
	favorites.GET("", favoriteHandler.List)
	favorites.DELETE("/:id", favoriteHandler.Remove)
}
