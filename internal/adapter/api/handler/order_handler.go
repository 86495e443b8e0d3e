package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type createOrderRequest struct {
	Listing        string                 `json:"listing" validate:"required"`
	PaymentMethod  string                 `json:"payment_method" validate:"required"`
	Offerings      []string               `json:"offerings"`
	AddressDetails map[string]interface{} `json:"address_details"`
}

// Create places an order. The total is always computed server-side from
// the listing price and the selected offerings.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), uid, usecase.CreateOrderInput{
		ListingID:       req.Listing,
		PaymentMethodID: req.PaymentMethod,
		OfferingIDs:     req.Offerings,
		AddressDetails:  req.AddressDetails,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, order)
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListMyOrders(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *OrderHandler) ListSales(c echo.Context) error {
	uid := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListSales(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *OrderHandler) ListForListing(c echo.Context) error {
	uid := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListForListing(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *OrderHandler) MarkPaid(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.MarkPaid(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}
