package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/errors"
	"toromarket/pkg/response"
)

type ReminderHandler struct {
	reminderUseCase *usecase.ReminderUseCase
}

func NewReminderHandler(reminderUseCase *usecase.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{
		reminderUseCase: reminderUseCase,
	}
}

type reminderRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Course  string `json:"course" validate:"omitempty,max=200"`
	DueDate string `json:"due_date"`
	Notes   string `json:"notes" validate:"omitempty,max=2000"`
}

func (r *reminderRequest) toInput() (usecase.ReminderInput, error) {
	input := usecase.ReminderInput{
		Title:  r.Title,
		Course: r.Course,
		Notes:  r.Notes,
	}
	if r.DueDate != "" {
		due, err := time.Parse(time.RFC3339, r.DueDate)
		if err != nil {
			due, err = time.Parse("2006-01-02", r.DueDate)
		}
		if err != nil {
			return input, errors.BadRequest("Invalid due date format", err)
		}
		input.DueDate = &due
	}
	return input, nil
}

func (h *ReminderHandler) Create(c echo.Context) error {
	var req reminderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	reminder, err := h.reminderUseCase.Create(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, reminder)
}

func (h *ReminderHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)

	reminders, err := h.reminderUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reminders)
}

func (h *ReminderHandler) Update(c echo.Context) error {
	var req reminderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	reminder, err := h.reminderUseCase.Update(c.Request().Context(), uid, c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reminder)
}

func (h *ReminderHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.reminderUseCase.SoftDelete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}

func (h *ReminderHandler) MarkComplete(c echo.Context) error {
	uid := c.Get("uid").(string)

	reminder, err := h.reminderUseCase.MarkComplete(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reminder)
}
