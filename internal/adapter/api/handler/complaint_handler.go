package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/labstack/echo/v4"

	"laporin/internal/adapter/api/middleware"
	"laporin/internal/domain/entity"
	"laporin/internal/domain/repository"
	"laporin/internal/usecase"
	"laporin/pkg/errors"
	"laporin/pkg/response"
)

type ComplaintHandler struct {
	complaintUseCase *usecase.ComplaintUseCase
}

func NewComplaintHandler(complaintUseCase *usecase.ComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUseCase: complaintUseCase,
	}
}

// Create accepts a multipart form so the metadata and the photos arrive in
// one request; uploaded photos are stored under the new complaint's folder.
func (h *ComplaintHandler) Create(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	input := usecase.CreateComplaintInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Location:    c.FormValue("location"),
		Place:       c.FormValue("place"),
		Department:  c.FormValue("department"),
		Priority:    c.FormValue("priority"),
	}

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		images, cleanup, err := openImages(form.File["images"])
		if err != nil {
			return response.Error(c, err)
		}
		defer cleanup()
		input.Images = images
	}

	complaint, err := h.complaintUseCase.Create(c.Request().Context(), actor, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, complaint)
}

func (h *ComplaintHandler) Get(c echo.Context) error {
	complaint, err := h.complaintUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

func (h *ComplaintHandler) List(c echo.Context) error {
	filter := repository.ComplaintFilter{
		Status:       entity.ComplaintStatus(c.QueryParam("status")),
		UserID:       c.QueryParam("userId"),
		TechnicianID: c.QueryParam("technicianId"),
		Category:     c.QueryParam("category"),
		Priority:     c.QueryParam("priority"),
	}

	limit := 20
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	complaints, hasMore, cursor, err := h.complaintUseCase.List(c.Request().Context(), filter, limit, c.QueryParam("cursor"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Page(c, complaints, hasMore, cursor)
}

type assignRequest struct {
	TechnicianID string `json:"technicianId" validate:"required"`
}

func (h *ComplaintHandler) Assign(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	complaint, err := h.complaintUseCase.Assign(c.Request().Context(), actor, c.Param("id"), req.TechnicianID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

func (h *ComplaintHandler) Complete(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	input := usecase.CompleteComplaintInput{
		Description: c.FormValue("description"),
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Unable to read completion image", err))
		}
		defer file.Close()

		input.Image = usecase.ImageFile{
			Reader:      file,
			ContentType: fileHeader.Header.Get("Content-Type"),
		}
	}

	complaint, err := h.complaintUseCase.Complete(c.Request().Context(), actor, c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

type rateRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
}

func (h *ComplaintHandler) Rate(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	complaint, err := h.complaintUseCase.Rate(c.Request().Context(), actor, c.Param("id"), req.Rating, req.Feedback)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

func (h *ComplaintHandler) Delete(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	if err := h.complaintUseCase.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ComplaintHandler) Statistics(c echo.Context) error {
	stats, err := h.complaintUseCase.Statistics(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func openImages(fileHeaders []*multipart.FileHeader) ([]usecase.ImageFile, func(), error) {
	var images []usecase.ImageFile
	var opened []multipart.File

	cleanup := func() {
		for _, file := range opened {
			file.Close()
		}
	}

	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			cleanup()
			return nil, func() {}, errors.BadRequest("Unable to read uploaded image", err)
		}
		opened = append(opened, file)
		images = append(images, usecase.ImageFile{
			Reader:      file,
			ContentType: fileHeader.Header.Get("Content-Type"),
		})
	}

	return images, cleanup, nil
}
