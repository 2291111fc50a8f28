package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"laporin/internal/adapter/api/middleware"
	"laporin/internal/usecase"
	"laporin/pkg/errors"
	"laporin/pkg/response"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) List(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	unreadOnly := c.QueryParam("unreadOnly") == "true"

	limit := 20
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	notifications, err := h.notificationUseCase.ListForUser(c.Request().Context(), actor.ID, unreadOnly, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, notifications)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	count, err := h.notificationUseCase.UnreadCount(c.Request().Context(), actor.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int64{"count": count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	if err := h.notificationUseCase.MarkRead(c.Request().Context(), actor.ID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "read"})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	count, err := h.notificationUseCase.MarkAllRead(c.Request().Context(), actor.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int64{"count": count})
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	if err := h.notificationUseCase.Delete(c.Request().Context(), actor.ID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
