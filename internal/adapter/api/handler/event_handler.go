package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/response"
)

type EventHandler struct {
	eventUseCase *usecase.EventUseCase
}

func NewEventHandler(eventUseCase *usecase.EventUseCase) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
	}
}

type eventRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"omitempty,url"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required,max=200"`
}

func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	event, err := h.eventUseCase.Create(c.Request().Context(), uid, usecase.EventInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.Image,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, event)
}

func (h *EventHandler) GetByID(c echo.Context) error {
	event, err := h.eventUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, event)
}

func (h *EventHandler) List(c echo.Context) error {
	events, err := h.eventUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, events)
}

func (h *EventHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.eventUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}
