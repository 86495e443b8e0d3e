package repository

import (
	"context"

	"toromarket/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	GetByID(ctx context.Context, id string) (*entity.Message, error)
	Update(ctx context.Context, message *entity.Message) error

	// ListConversation returns messages between two users ordered by
	// creation time ascending, optionally scoped to a listing.
	ListConversation(ctx context.Context, userID, otherUserID, listingID string) ([]*entity.Message, error)

	// ListByParticipant returns every message the user sent or received,
	// ordered by creation time ascending.
	ListByParticipant(ctx context.Context, userID string) ([]*entity.Message, error)

	// MarkRead flips read=true on the given messages, restricted to ones
	// addressed to recipientID. Returns the number actually updated.
	MarkRead(ctx context.Context, recipientID string, ids []string) (int, error)

	// DeleteConversation removes the user's messages under a listing and
	// returns the number deleted.
	DeleteConversation(ctx context.Context, listingID, userID string) (int, error)

	CountUnread(ctx context.Context, recipientID string) (int64, error)
}
