package handler

import (
	"github.com/labstack/echo/v4"

	"laporin/internal/adapter/api/middleware"
	"laporin/internal/usecase"
	"laporin/pkg/errors"
	"laporin/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	return response.Success(c, actor)
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), actor.ID, usecase.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return response.Error(c, errors.BadRequest("Avatar image is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Unable to read avatar image", err))
	}
	defer file.Close()

	user, err := h.userUseCase.UpdateAvatar(c.Request().Context(), actor.ID, usecase.ImageFile{
		Reader:      file,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) ListTechnicians(c echo.Context) error {
	technicians, err := h.userUseCase.ListTechnicians(c.Request().Context(), c.QueryParam("department"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, technicians)
}
