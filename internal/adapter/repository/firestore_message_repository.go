package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/pkg/errors"
)

// Messages live in a single flat collection. Firestore has no OR queries
// on different fields, so conversation reads merge a sent query and a
// received query and sort in memory.
type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}
	return nil
}

func (r *firestoreMessageRepository) GetByID(ctx context.Context, id string) (*entity.Message, error) {
	doc, err := r.client.Collection("messages").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Message", err)
		}
		return nil, errors.Internal("Failed to get message", err)
	}

	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse message data", err)
	}
	return &message, nil
}

func (r *firestoreMessageRepository) Update(ctx context.Context, message *entity.Message) error {
	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to update message", err)
	}
	return nil
}

func (r *firestoreMessageRepository) ListConversation(ctx context.Context, userID, otherUserID, listingID string) ([]*entity.Message, error) {
	sent := r.client.Collection("messages").
		Where("senderId", "==", userID).
		Where("recipientId", "==", otherUserID)
	received := r.client.Collection("messages").
		Where("senderId", "==", otherUserID).
		Where("recipientId", "==", userID)

	if listingID != "" {
		sent = sent.Where("listingId", "==", listingID)
		received = received.Where("listingId", "==", listingID)
	}

	messages, err := collectMessages(sent.Documents(ctx))
	if err != nil {
		return nil, err
	}
	more, err := collectMessages(received.Documents(ctx))
	if err != nil {
		return nil, err
	}
	messages = append(messages, more...)

	sortMessagesByCreatedAt(messages)
	return messages, nil
}

func (r *firestoreMessageRepository) ListByParticipant(ctx context.Context, userID string) ([]*entity.Message, error) {
	sent, err := collectMessages(r.client.Collection("messages").
		Where("senderId", "==", userID).
		Documents(ctx))
	if err != nil {
		return nil, err
	}
	received, err := collectMessages(r.client.Collection("messages").
		Where("recipientId", "==", userID).
		Documents(ctx))
	if err != nil {
		return nil, err
	}

	messages := append(sent, received...)
	sortMessagesByCreatedAt(messages)
	return messages, nil
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, recipientID string, ids []string) (int, error) {
	updated := 0
	for _, id := range ids {
		message, err := r.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				continue
			}
			return updated, err
		}
		if message.RecipientID != recipientID || message.Read {
			continue
		}

		_, err = r.client.Collection("messages").Doc(id).Update(ctx, []firestore.Update{
			{Path: "read", Value: true},
		})
		if err != nil {
			return updated, errors.Internal("Failed to mark message read", err)
		}
		updated++
	}
	return updated, nil
}

func (r *firestoreMessageRepository) DeleteConversation(ctx context.Context, listingID, userID string) (int, error) {
	sent := r.client.Collection("messages").
		Where("listingId", "==", listingID).
		Where("senderId", "==", userID)
	received := r.client.Collection("messages").
		Where("listingId", "==", listingID).
		Where("recipientId", "==", userID)

	deleted := 0
	for _, query := range []firestore.Query{sent, received} {
		docs, err := query.Documents(ctx).GetAll()
		if err != nil {
			return deleted, errors.Internal("Failed to query conversation", err)
		}
		for _, doc := range docs {
			if _, err := doc.Ref.Delete(ctx); err != nil {
				return deleted, errors.Internal("Failed to delete message", err)
			}
			deleted++
		}
	}
	return deleted, nil
}

func (r *firestoreMessageRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	docs, err := r.client.Collection("messages").
		Where("recipientId", "==", recipientID).
		Where("read", "==", false).
		Documents(ctx).
		GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count unread messages", err)
	}
	return int64(len(docs)), nil
}

func collectMessages(iter *firestore.DocumentIterator) ([]*entity.Message, error) {
	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}
	return messages, nil
}

func sortMessagesByCreatedAt(messages []*entity.Message) {
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}
