package handler

import (
	"github.com/labstack/echo/v4"

	"laporin/internal/adapter/api/middleware"
	"laporin/internal/usecase"
	"laporin/pkg/errors"
	"laporin/pkg/response"
)

type DepartmentHandler struct {
	departmentUseCase *usecase.DepartmentUseCase
}

func NewDepartmentHandler(departmentUseCase *usecase.DepartmentUseCase) *DepartmentHandler {
	return &DepartmentHandler{
		departmentUseCase: departmentUseCase,
	}
}

type departmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *DepartmentHandler) Create(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	department, err := h.departmentUseCase.Create(c.Request().Context(), actor, usecase.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, department)
}

func (h *DepartmentHandler) Get(c echo.Context) error {
	department, err := h.departmentUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, department)
}

func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.departmentUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, departments)
}

type updateDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *DepartmentHandler) Update(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	var req updateDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	department, err := h.departmentUseCase.Update(c.Request().Context(), actor, c.Param("id"), usecase.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, department)
}

func (h *DepartmentHandler) Delete(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	if err := h.departmentUseCase.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
