package router

import (
	"github.com/labstack/echo/v4"

	"laporin/internal/adapter/api/handler"
	"laporin/internal/adapter/api/middleware"
)

func SetupDepartmentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, sessionMiddleware *middleware.SessionMiddleware) {
	departmentHandler := handler.GetDepartmentHandler()

	departments := e.Group("/v1/departments")
	departments.Use(authMiddleware.Authenticate)
	departments.Use(sessionMiddleware.LoadUser)

	departments.GET("", departmentHandler.List)
	departments.GET("/:id", departmentHandler.Get)
	departments.POST("", departmentHandler.Create, sessionMiddleware.AdminOnly)
	departments.PATCH("/:id", departmentHandler.Update, sessionMiddleware.AdminOnly)
	departments.DELETE("/:id", departmentHandler.Delete, sessionMiddleware.AdminOnly)
}
