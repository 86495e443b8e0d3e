package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/domain/entity"
	"toromarket/internal/usecase"
	"toromarket/pkg/errors"
	"toromarket/pkg/response"
)

// MessageHandler covers the HTTP side of messaging; live delivery goes
// through the websocket handler.
type MessageHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewMessageHandler(chatUseCase *usecase.ChatUseCase) *MessageHandler {
	return &MessageHandler{
		chatUseCase: chatUseCase,
	}
}

func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get("user").(*entity.User)
	if !ok {
		return nil, errors.Unauthorized("Authentication required", nil)
	}
	return user, nil
}

type sendMessageRequest struct {
	Recipient string `json:"recipient" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Listing   string `json:"listing"`
	Parent    string `json:"parent_message"`
}

func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), user, usecase.SendMessageInput{
		RecipientUsername: req.Recipient,
		ListingID:         req.Listing,
		ParentID:          req.Parent,
		Content:           req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

// Conversation returns the history with ?recipient=<username>, optionally
// scoped by ?listing=<id>.
func (h *MessageHandler) Conversation(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	messages, err := h.chatUseCase.Conversation(c.Request().Context(), user, c.QueryParam("recipient"), c.QueryParam("listing"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *MessageHandler) Inbox(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	messages, err := h.chatUseCase.Inbox(c.Request().Context(), user)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

type markReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	updated, err := h.chatUseCase.MarkRead(c.Request().Context(), uid, req.IDs)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int{"updated": updated})
}

func (h *MessageHandler) ToggleRead(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.ToggleRead(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, message)
}

type replyRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *MessageHandler) Reply(c echo.Context) error {
	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.Reply(c.Request().Context(), user, c.Param("id"), req.Content)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

// DeleteConversation bulk-removes the caller's messages under a listing,
// given as ?listing=<id>.
func (h *MessageHandler) DeleteConversation(c echo.Context) error {
	listingID := c.QueryParam("listing")
	if listingID == "" {
		return response.Error(c, errors.Validation("listing query param required", nil))
	}

	user, err := currentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	deleted, err := h.chatUseCase.DeleteConversation(c.Request().Context(), user, listingID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int{"deleted": deleted})
}
