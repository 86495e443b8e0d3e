package repository

import (
	"context"

	"toromarket/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*entity.Notification, int64, error)
	MarkRead(ctx context.Context, recipientID string, ids []string) (int, error)
}
