package router

import (
	"github.com/labstack/echo/v4"

	"laporin/internal/adapter/api/handler"
	"laporin/internal/adapter/api/middleware"
)

func SetupComplaintRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, sessionMiddleware *middleware.SessionMiddleware) {
	complaintHandler := handler.GetComplaintHandler()

	complaints := e.Group("/v1/complaints")
	complaints.Use(authMiddleware.Authenticate)
	complaints.Use(sessionMiddleware.LoadUser)

	complaints.POST("", complaintHandler.Create)
	complaints.GET("", complaintHandler.List)
	complaints.GET("/:id", complaintHandler.Get)
	complaints.POST("/:id/assign", complaintHandler.Assign, sessionMiddleware.AdminOnly)
	complaints.POST("/:id/complete", complaintHandler.Complete, sessionMiddleware.TechnicianOnly)
	complaints.POST("/:id/rate", complaintHandler.Rate)
	complaints.DELETE("/:id", complaintHandler.Delete, sessionMiddleware.AdminOnly)

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(sessionMiddleware.LoadUser)
	admin.Use(sessionMiddleware.AdminOnly)

	admin.GET("/statistics", complaintHandler.Statistics)
}
