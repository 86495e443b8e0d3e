package router

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/adapter/api/handler"
	"toromarket/internal/adapter/api/middleware"
)

func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	catalogHandler := handler.GetCatalogHandler()

	// Reference data is readable without auth.
	e.GET("/v1/categories", catalogHandler.ListCategories)
	e.GET("/v1/tags", catalogHandler.ListTags)
	e.GET("/v1/payment-methods", catalogHandler.ListPaymentMethods)
	e.GET("/v1/offerings", catalogHandler.ListOfferings)

	// Mutations are admin-only.
	admin := e.Group("/v1")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)
	admin.POST("/tags", catalogHandler.CreateTag)
	admin.DELETE("/tags/:id", catalogHandler.DeleteTag)
	admin.POST("/payment-methods", catalogHandler.CreatePaymentMethod)
	admin.DELETE("/payment-methods/:id", catalogHandler.DeletePaymentMethod)
	admin.POST("/offerings", catalogHandler.CreateOffering)
	admin.DELETE("/offerings/:id", catalogHandler.DeleteOffering)

	// Detaching a tag only needs ownership, checked in the use case.
	listingTags := e.Group("/v1/listing-tags")
	listingTags.Use(authMiddleware.Authenticate)
	listingTags.DELETE("/:id", catalogHandler.UntagListing)
}
