package router

import (
	"github.com/labstack/echo/v4"

	"laporin/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, sessionMiddleware *middleware.SessionMiddleware) {
	SetupHealthRouter(e)
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware, sessionMiddleware)
	SetupComplaintRouter(e, authMiddleware, sessionMiddleware)
	SetupNotificationRouter(e, authMiddleware, sessionMiddleware)
	SetupDepartmentRouter(e, authMiddleware, sessionMiddleware)
}
