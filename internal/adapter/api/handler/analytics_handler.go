package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/response"
)

type AnalyticsHandler struct {
	analyticsUseCase *usecase.AnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUseCase *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
	}
}

func (h *AnalyticsHandler) Overview(c echo.Context) error {
	uid := c.Get("uid").(string)

	overview, err := h.analyticsUseCase.Overview(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, overview)
}

func (h *AnalyticsHandler) PostsByMonth(c echo.Context) error {
	uid := c.Get("uid").(string)

	buckets, err := h.analyticsUseCase.PostsByMonth(c.Request().Context(), uid, c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, buckets)
}

func (h *AnalyticsHandler) SalesByMonth(c echo.Context) error {
	uid := c.Get("uid").(string)

	buckets, err := h.analyticsUseCase.SalesByMonth(c.Request().Context(), uid, c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, buckets)
}

func (h *AnalyticsHandler) SalesByCategory(c echo.Context) error {
	uid := c.Get("uid").(string)

	values, err := h.analyticsUseCase.SalesByCategory(c.Request().Context(), uid, c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, values)
}

func (h *AnalyticsHandler) NotificationsSummary(c echo.Context) error {
	uid := c.Get("uid").(string)

	summary, err := h.analyticsUseCase.NotificationsSummary(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, summary)
}
