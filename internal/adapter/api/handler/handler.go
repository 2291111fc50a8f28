package handler

import (
	"laporin/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	complaintHandler    *ComplaintHandler
	notificationHandler *NotificationHandler
	departmentHandler   *DepartmentHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	complaintUseCase *usecase.ComplaintUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	departmentUseCase *usecase.DepartmentUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	complaintHandler = NewComplaintHandler(complaintUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	departmentHandler = NewDepartmentHandler(departmentUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetComplaintHandler() *ComplaintHandler {
	return complaintHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetDepartmentHandler() *DepartmentHandler {
	return departmentHandler
}
