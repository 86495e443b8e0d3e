package router

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupCatalogRouter(e, authMiddleware, adminMiddleware)
	SetupFavoriteRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupPaymentRouter(e, authMiddleware)
	SetupAnalyticsRouter(e, authMiddleware)
	SetupCommunityRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
