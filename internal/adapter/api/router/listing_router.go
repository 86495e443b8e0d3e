package router

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/adapter/api/handler"
	"toromarket/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()
	catalogHandler := handler.GetCatalogHandler()
	orderHandler := handler.GetOrderHandler()

	// Browsing is public; everything that writes requires auth.
	e.GET("/v1/listings", listingHandler.List)
	e.GET("/v1/listings/:id", listingHandler.GetByID)
	e.GET("/v1/listings/:id/tags", catalogHandler.ListListingTags)

	listings := e.Group("/v1/listings")
	listings.Use(authMiddleware.Authenticate)

	listings.POST("", listingHandler.Create)
	listings.GET("/mine", listingHandler.ListMine)
	listings.PUT("/:id", listingHandler.Update)
	listings.DELETE("/:id", listingHandler.Delete)
	listings.POST("/:id/tags", catalogHandler.TagListing)
	listings.GET("/:id/orders", orderHandler.ListForListing)
}
