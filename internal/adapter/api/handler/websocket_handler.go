package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"toromarket/internal/domain/entity"
	"toromarket/internal/infrastructure/channel"
	"toromarket/internal/usecase"
	apperrors "toromarket/pkg/errors"
	"toromarket/pkg/logger"
	"toromarket/pkg/response"
)

// SocketAuthenticator resolves a raw token into a local user before the
// connection is upgraded. Satisfied by usecase.AuthUseCase.
type SocketAuthenticator interface {
	AuthenticateSocket(ctx context.Context, idToken string) (*entity.User, error)
}

// WebSocketHandler runs the live messaging sessions. A connection moves
// through three states: unauthenticated (before the token check), joined
// (member of its user group, frames flowing), and closed.
type WebSocketHandler struct {
	auth        SocketAuthenticator
	chatUseCase *usecase.ChatUseCase
	broadcaster channel.Broadcaster
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict to the frontend origin before launch
	},
}

func NewWebSocketHandler(auth SocketAuthenticator, chatUseCase *usecase.ChatUseCase, broadcaster channel.Broadcaster) *WebSocketHandler {
	return &WebSocketHandler{
		auth:        auth,
		chatUseCase: chatUseCase,
		broadcaster: broadcaster,
	}
}

type errorFrame struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HandleConnection authenticates, upgrades, joins the user's group, and
// pumps frames until the peer goes away. Submission errors are reported
// on the sender's connection only; the session stays open.
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		token = bearerToken(c)
	}
	if token == "" {
		return response.Error(c, apperrors.Unauthorized("Authentication required", nil))
	}

	user, err := h.auth.AuthenticateSocket(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return apperrors.Internal("Failed to upgrade connection", err)
	}

	client := channel.NewClient(user.ID, conn)
	h.broadcaster.Join(client.Group, client)
	logger.Info("ws: %s joined %s", user.Username, client.Group)

	go client.WritePump()
	go client.ReadPump(h.broadcaster, func(raw []byte) {
		if err := h.chatUseCase.HandleInbound(context.Background(), user, raw); err != nil {
			h.sendError(client, err)
		}
	})

	return nil
}

// sendError pushes a structured error frame to the failing sender. Best
// effort, like every other delivery.
func (h *WebSocketHandler) sendError(client *channel.Client, err error) {
	frame := errorFrame{Type: "error", Code: "INTERNAL_ERROR", Message: "Something went wrong"}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		frame.Code = appErr.Code
		frame.Message = appErr.Message
	}

	payload, marshalErr := json.Marshal(frame)
	if marshalErr != nil {
		return
	}

	select {
	case client.Send <- payload:
	default:
	}
}

func bearerToken(c echo.Context) string {
	const prefix = "Bearer "
	header := c.Request().Header.Get("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
