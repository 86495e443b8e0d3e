package usecase

import (
	"context"
	"time"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
)

// NotificationUseCase records "event happened, addressed to user X"
// independent of delivery channel. The Notify* methods are invoked
// explicitly by the creating flow, in the same unit of work as the
// triggering entity: a failure here fails that operation.
type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

// NotifyMessageSent creates exactly one notification for the recipient of
// a freshly persisted message. Messages without a recipient are skipped.
func (uc *NotificationUseCase) NotifyMessageSent(ctx context.Context, message *entity.Message) error {
	if message.RecipientID == "" {
		return nil
	}

	return uc.notificationRepo.Create(ctx, &entity.Notification{
		RecipientID: message.RecipientID,
		ActorID:     message.SenderID,
		Verb:        entity.VerbMessageSent,
		Target: &entity.NotificationTarget{
			Kind: entity.NotificationTargetMessage,
			ID:   message.ID,
		},
		Unread:    true,
		Timestamp: time.Now(),
	})
}

// NotifyOrderPlaced creates exactly one notification for the owner of the
// ordered listing. Fires for every order creation.
func (uc *NotificationUseCase) NotifyOrderPlaced(ctx context.Context, order *entity.Order, listing *entity.Listing) error {
	return uc.notificationRepo.Create(ctx, &entity.Notification{
		RecipientID: listing.UserID,
		ActorID:     order.BuyerID,
		Verb:        entity.VerbListingOrdered,
		Target: &entity.NotificationTarget{
			Kind: entity.NotificationTargetOrder,
			ID:   order.ID,
		},
		Unread:    true,
		Timestamp: time.Now(),
	})
}

func (uc *NotificationUseCase) List(ctx context.Context, recipientID string, limit, offset int) ([]*entity.Notification, int64, error) {
	return uc.notificationRepo.ListByRecipient(ctx, recipientID, limit, offset)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, recipientID string, ids []string) (int, error) {
	return uc.notificationRepo.MarkRead(ctx, recipientID, ids)
}
