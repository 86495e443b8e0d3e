package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/errors"
	"toromarket/pkg/response"
)

type ResourceHandler struct {
	resourceUseCase *usecase.ResourceUseCase
}

func NewResourceHandler(resourceUseCase *usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{
		resourceUseCase: resourceUseCase,
	}
}

// Create accepts a multipart form: title, description, and a file part.
func (h *ResourceHandler) Create(c echo.Context) error {
	title := c.FormValue("title")
	if title == "" {
		return response.Error(c, errors.Validation("title is required", nil))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.Validation("file is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer file.Close()

	uid := c.Get("uid").(string)

	resource, err := h.resourceUseCase.Create(c.Request().Context(), uid, usecase.CreateResourceInput{
		Title:       title,
		Description: c.FormValue("description"),
		File:        file,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, resource)
}

func (h *ResourceHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)

	resources, err := h.resourceUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, resources)
}

type updateResourceRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

func (h *ResourceHandler) Update(c echo.Context) error {
	var req updateResourceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	resource, err := h.resourceUseCase.Update(c.Request().Context(), uid, c.Param("id"), req.Title, req.Description)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, resource)
}

func (h *ResourceHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.resourceUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}
