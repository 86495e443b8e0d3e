package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/internal/infrastructure/channel"
	"toromarket/internal/infrastructure/ratelimit"
	"toromarket/pkg/errors"
	"toromarket/pkg/logger"
)

// ChatUseCase owns both messaging paths: the websocket submission pipeline
// (persist, notify, fan out to the sender's and recipient's groups) and
// the HTTP conversation endpoints.
type ChatUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
	notifier    *NotificationUseCase
	broadcaster channel.Broadcaster
	rateLimiter *ratelimit.RateLimiter
}

func NewChatUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	listingRepo repository.ListingRepository,
	notifier *NotificationUseCase,
	broadcaster channel.Broadcaster,
) *ChatUseCase {
	return &ChatUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		listingRepo: listingRepo,
		notifier:    notifier,
		broadcaster: broadcaster,
		rateLimiter: ratelimit.NewRateLimiter(),
	}
}

// inboundChat is the client-to-server wire format.
type inboundChat struct {
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
}

// WireMessage is the server-to-client wire format.
type WireMessage struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	Read      bool   `json:"read"`
}

// HandleInbound processes one raw frame from a joined session. Blank or
// malformed submissions are dropped without error. Any returned error is
// for the sender's own connection only; nothing has been broadcast when
// an error comes back.
func (uc *ChatUseCase) HandleInbound(ctx context.Context, sender *entity.User, raw []byte) error {
	var in inboundChat
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil
	}

	content := strings.TrimSpace(in.Message)
	recipientUsername := strings.TrimSpace(in.Recipient)
	if content == "" || recipientUsername == "" {
		return nil
	}

	if allowed, wait := uc.rateLimiter.Allow(sender.ID, "send_message"); !allowed {
		logger.Warn("chat: rate limited %s for %v", sender.Username, wait)
		return errors.TooManyRequests("Sending too fast, slow down")
	}

	recipient, err := uc.userRepo.GetByUsername(ctx, recipientUsername)
	if err != nil {
		return errors.NotFound("Recipient", err)
	}

	message := &entity.Message{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Content:     content,
		Read:        false,
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return err
	}

	if err := uc.notifier.NotifyMessageSent(ctx, message); err != nil {
		return err
	}

	payload, err := json.Marshal(WireMessage{
		ID:        message.ID,
		Sender:    sender.Username,
		Recipient: recipient.Username,
		Content:   message.Content,
		CreatedAt: message.CreatedAt.Format(time.RFC3339),
		Read:      message.Read,
	})
	if err != nil {
		return errors.Internal("Failed to serialize message", err)
	}

	// Both participants get the frame: the recipient sees the new message,
	// the sender's other devices see the echo.
	uc.broadcaster.Broadcast(channel.UserGroup(recipient.ID), payload)
	uc.broadcaster.Broadcast(channel.UserGroup(sender.ID), payload)

	return nil
}

type SendMessageInput struct {
	RecipientUsername string
	ListingID         string
	ParentID          string
	Content           string
}

type MessageResponse struct {
	*entity.Message
	Sender            string `json:"sender"`
	SenderUsername    string `json:"sender_username"`
	SenderDisplayName string `json:"sender_display_name"`
	Recipient         string `json:"recipient"`
}

// SendMessage is the HTTP create path. Same persistence and notification
// step as the websocket path, but without the fan-out: HTTP clients poll
// the conversation endpoint.
func (uc *ChatUseCase) SendMessage(ctx context.Context, sender *entity.User, input SendMessageInput) (*MessageResponse, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.Validation("content is required", nil)
	}

	recipient, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(input.RecipientUsername))
	if err != nil {
		return nil, errors.NotFound("Recipient", err)
	}

	if input.ListingID != "" {
		if _, err := uc.listingRepo.GetByID(ctx, input.ListingID); err != nil {
			return nil, errors.NotFound("Listing", err)
		}
	}
	if input.ParentID != "" {
		if _, err := uc.messageRepo.GetByID(ctx, input.ParentID); err != nil {
			return nil, errors.NotFound("Parent message", err)
		}
	}

	message := &entity.Message{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		ListingID:   input.ListingID,
		ParentID:    input.ParentID,
		Content:     content,
		Read:        false,
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if err := uc.notifier.NotifyMessageSent(ctx, message); err != nil {
		return nil, err
	}

	return uc.toResponse(message, sender, recipient), nil
}

// Conversation returns the ascending message history between the caller
// and another user, optionally scoped to a listing.
func (uc *ChatUseCase) Conversation(ctx context.Context, user *entity.User, recipientUsername, listingID string) ([]*MessageResponse, error) {
	if strings.TrimSpace(recipientUsername) == "" {
		return nil, errors.Validation("recipient query param required", nil)
	}

	other, err := uc.userRepo.GetByUsername(ctx, recipientUsername)
	if err != nil {
		return nil, errors.NotFound("Recipient", err)
	}

	messages, err := uc.messageRepo.ListConversation(ctx, user.ID, other.ID, listingID)
	if err != nil {
		return nil, err
	}

	responses := make([]*MessageResponse, 0, len(messages))
	for _, m := range messages {
		sender, recipient := user, other
		if m.SenderID == other.ID {
			sender, recipient = other, user
		}
		responses = append(responses, uc.toResponse(m, sender, recipient))
	}
	return responses, nil
}

// Inbox returns every message the user participates in, ascending.
func (uc *ChatUseCase) Inbox(ctx context.Context, user *entity.User) ([]*MessageResponse, error) {
	messages, err := uc.messageRepo.ListByParticipant(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	users := map[string]*entity.User{user.ID: user}
	lookup := func(id string) *entity.User {
		if u, ok := users[id]; ok {
			return u
		}
		u, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			u = &entity.User{ID: id}
		}
		users[id] = u
		return u
	}

	responses := make([]*MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, uc.toResponse(m, lookup(m.SenderID), lookup(m.RecipientID)))
	}
	return responses, nil
}

func (uc *ChatUseCase) MarkRead(ctx context.Context, userID string, ids []string) (int, error) {
	return uc.messageRepo.MarkRead(ctx, userID, ids)
}

// ToggleRead flips the read flag. Only the recipient may do this.
func (uc *ChatUseCase) ToggleRead(ctx context.Context, user *entity.User, messageID string) (*entity.Message, error) {
	message, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, errors.NotFound("Message", err)
	}
	if message.RecipientID != user.ID {
		return nil, errors.Forbidden("Only the recipient can change the read flag", nil)
	}

	message.Read = !message.Read
	if err := uc.messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Reply creates a threaded response to an existing message, addressed to
// the other participant.
func (uc *ChatUseCase) Reply(ctx context.Context, user *entity.User, messageID, content string) (*MessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.Validation("content is required", nil)
	}

	original, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, errors.NotFound("Message", err)
	}

	targetID := original.SenderID
	if targetID == user.ID {
		targetID = original.RecipientID
	}
	target, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, errors.NotFound("Recipient", err)
	}

	reply := &entity.Message{
		SenderID:    user.ID,
		RecipientID: target.ID,
		ListingID:   original.ListingID,
		ParentID:    original.ID,
		Content:     content,
		Read:        false,
	}
	if err := uc.messageRepo.Create(ctx, reply); err != nil {
		return nil, err
	}
	if err := uc.notifier.NotifyMessageSent(ctx, reply); err != nil {
		return nil, err
	}

	return uc.toResponse(reply, user, target), nil
}

// DeleteConversation removes the caller's messages under a listing in bulk.
func (uc *ChatUseCase) DeleteConversation(ctx context.Context, user *entity.User, listingID string) (int, error) {
	return uc.messageRepo.DeleteConversation(ctx, listingID, user.ID)
}

func (uc *ChatUseCase) toResponse(m *entity.Message, sender, recipient *entity.User) *MessageResponse {
	return &MessageResponse{
		Message:           m,
		Sender:            sender.Email,
		SenderUsername:    sender.Username,
		SenderDisplayName: sender.DisplayName(),
		Recipient:         recipient.Username,
	}
}
