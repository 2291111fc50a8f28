package router

import (
	"github.com/labstack/echo/v4"

	"laporin/internal/adapter/api/handler"
	"laporin/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, sessionMiddleware *middleware.SessionMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.Use(sessionMiddleware.LoadUser)

	users.GET("/me", userHandler.GetProfile)
	users.PATCH("/me", userHandler.UpdateProfile)
	users.PUT("/me/avatar", userHandler.UpdateAvatar)

	technicians := e.Group("/v1/technicians")
	technicians.Use(authMiddleware.Authenticate)
	technicians.Use(sessionMiddleware.LoadUser)
	technicians.Use(sessionMiddleware.AdminOnly)

	technicians.GET("", userHandler.ListTechnicians)
}
