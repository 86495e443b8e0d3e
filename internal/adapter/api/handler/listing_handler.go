package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/response"
	"toromarket/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type listingRequest struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Description      string   `json:"description" validate:"required"`
	Category         string   `json:"category" validate:"required"`
	Price            float64  `json:"price" validate:"required,gt=0"`
	Location         string   `json:"location" validate:"omitempty,max=200"`
	PaymentMethodIDs []string `json:"payment_methods_ids"`
	OfferingIDs      []string `json:"offerings_ids"`
	ImageURLs        []string `json:"images"`
}

func (r *listingRequest) toInput() usecase.ListingInput {
	return usecase.ListingInput{
		Title:            r.Title,
		Description:      r.Description,
		CategoryID:       r.Category,
		Price:            r.Price,
		Location:         r.Location,
		PaymentMethodIDs: r.PaymentMethodIDs,
		OfferingIDs:      r.OfferingIDs,
		ImageURLs:        r.ImageURLs,
	}
}

func (h *ListingHandler) Create(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	listing, err := h.listingUseCase.Create(c.Request().Context(), uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, listing)
}

func (h *ListingHandler) GetByID(c echo.Context) error {
	listing, err := h.listingUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) Update(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	listing, err := h.listingUseCase.Update(c.Request().Context(), uid, c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.listingUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}

func (h *ListingHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, listings, total, params.Page, params.PageSize)
}

func (h *ListingHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	listings, err := h.listingUseCase.ListMine(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listings)
}
