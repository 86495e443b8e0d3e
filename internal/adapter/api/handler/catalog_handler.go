package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/response"
)

// CatalogHandler serves the reference collections: categories, tags,
// payment methods, and offerings.
type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

type nameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.catalogUseCase.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, category)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalogUseCase.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}

func (h *CatalogHandler) CreateTag(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	tag, err := h.catalogUseCase.CreateTag(c.Request().Context(), req.Name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, tag)
}

func (h *CatalogHandler) ListTags(c echo.Context) error {
	tags, err := h.catalogUseCase.ListTags(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, tags)
}

func (h *CatalogHandler) DeleteTag(c echo.Context) error {
	if err := h.catalogUseCase.DeleteTag(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}

type tagListingRequest struct {
	TagID string `json:"tag" validate:"required"`
}

func (h *CatalogHandler) TagListing(c echo.Context) error {
	var req tagListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	listingTag, err := h.catalogUseCase.TagListing(c.Request().Context(), uid, c.Param("id"), req.TagID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, listingTag)
}

func (h *CatalogHandler) ListListingTags(c echo.Context) error {
	listingTags, err := h.catalogUseCase.ListListingTags(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listingTags)
}

func (h *CatalogHandler) UntagListing(c echo.Context) error {
	if err := h.catalogUseCase.UntagListing(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}

type paymentMethodRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Icon string `json:"icon" validate:"omitempty,url"`
}

func (h *CatalogHandler) CreatePaymentMethod(c echo.Context) error {
	var req paymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	method, err := h.catalogUseCase.CreatePaymentMethod(c.Request().Context(), req.Name, req.Icon)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, method)
}

func (h *CatalogHandler) ListPaymentMethods(c echo.Context) error {
	methods, err := h.catalogUseCase.ListPaymentMethods(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, methods)
}

func (h *CatalogHandler) DeletePaymentMethod(c echo.Context) error {
	if err := h.catalogUseCase.DeletePaymentMethod(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}

type offeringRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	ExtraCost   float64 `json:"extra_cost" validate:"gte=0"`
}

func (h *CatalogHandler) CreateOffering(c echo.Context) error {
	var req offeringRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	offering, err := h.catalogUseCase.CreateOffering(c.Request().Context(), req.Name, req.Description, req.ExtraCost)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, offering)
}

func (h *CatalogHandler) ListOfferings(c echo.Context) error {
	offerings, err := h.catalogUseCase.ListOfferings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, offerings)
}

func (h *CatalogHandler) DeleteOffering(c echo.Context) error {
	if err := h.catalogUseCase.DeleteOffering(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}
