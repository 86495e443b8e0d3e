package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type createIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.paymentUseCase.CreateIntent(c.Request().Context(), req.Amount)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

type checkoutSessionRequest struct {
	Listing string `json:"listing" validate:"required"`
}

func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	var req checkoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.paymentUseCase.CreateCheckoutSession(c.Request().Context(), req.Listing)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
