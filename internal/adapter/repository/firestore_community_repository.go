package repository

import (
	"context"
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

type firestoreEventRepository struct {
	client *firestore.Client
}

func NewFirestoreEventRepository(client *firestore.Client) repository.EventRepository {
	return &firestoreEventRepository{client: client}
}

func (r *firestoreEventRepository) Create(ctx context.Context, event *entity.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()

	_, err := r.client.Collection("events").Doc(event.ID).Set(ctx, event)
	if err != nil {
		return errors.Internal("Failed to create event", err)
	}
	return nil
}

func (r *firestoreEventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	doc, err := r.client.Collection("events").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Event", err)
		}
		return nil, errors.Internal("Failed to get event", err)
	}

	var event entity.Event
	if err := doc.DataTo(&event); err != nil {
		return nil, errors.Internal("Failed to parse event data", err)
	}
	return &event, nil
}

func (r *firestoreEventRepository) Update(ctx context.Context, event *entity.Event) error {
	_, err := r.client.Collection("events").Doc(event.ID).Set(ctx, event)
	if err != nil {
		return errors.Internal("Failed to update event", err)
	}
	return nil
}

func (r *firestoreEventRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("events").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete event", err)
	}
	return nil
}

func (r *firestoreEventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	iter := r.client.Collection("events").OrderBy("date", firestore.Asc).Documents(ctx)

	var events []*entity.Event
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate events", err)
		}

		var event entity.Event
		if err := doc.DataTo(&event); err != nil {
			return nil, errors.Internal("Failed to parse event data", err)
		}
		events = append(events, &event)
	}
	return events, nil
}

type firestoreReminderRepository struct {
	client *firestore.Client
}

func NewFirestoreReminderRepository(client *firestore.Client) repository.ReminderRepository {
	return &firestoreReminderRepository{client: client}
}

func (r *firestoreReminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}

	now := time.Now()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now

	_, err := r.client.Collection("reminders").Doc(reminder.ID).Set(ctx, reminder)
	if err != nil {
		return errors.Internal("Failed to create reminder", err)
	}
	return nil
}

func (r *firestoreReminderRepository) GetByID(ctx context.Context, id string) (*entity.Reminder, error) {
	doc, err := r.client.Collection("reminders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Reminder", err)
		}
		return nil, errors.Internal("Failed to get reminder", err)
	}

	var reminder entity.Reminder
	if err := doc.DataTo(&reminder); err != nil {
		return nil, errors.Internal("Failed to parse reminder data", err)
	}
	return &reminder, nil
}

func (r *firestoreReminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	_, err := r.client.Collection("reminders").Doc(reminder.ID).Set(ctx, reminder)
	if err != nil {
		return errors.Internal("Failed to update reminder", err)
	}
	return nil
}

func (r *firestoreReminderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	iter := r.client.Collection("reminders").
		Where("userId", "==", userID).
		Where("deleted", "==", false).
		OrderBy("dueDate", firestore.Asc).
		Documents(ctx)

	var reminders []*entity.Reminder
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reminders", err)
		}

		var reminder entity.Reminder
		if err := doc.DataTo(&reminder); err != nil {
			return nil, errors.Internal("Failed to parse reminder data", err)
		}
		reminders = append(reminders, &reminder)
	}
	return reminders, nil
}

type firestoreResourceRepository struct {
	client *firestore.Client
}

func NewFirestoreResourceRepository(client *firestore.Client) repository.ResourceRepository {
	return &firestoreResourceRepository{client: client}
}

func (r *firestoreResourceRepository) Create(ctx context.Context, resource *entity.Resource) error {
	if resource.ID == "" {
		resource.ID = uuid.New().String()
	}

	now := time.Now()
	resource.CreatedAt = now
	resource.UpdatedAt = now

	_, err := r.client.Collection("resources").Doc(resource.ID).Set(ctx, resource)
	if err != nil {
		return errors.Internal("Failed to create resource", err)
	}
	return nil
}

func (r *firestoreResourceRepository) GetByID(ctx context.Context, id string) (*entity.Resource, error) {
	doc, err := r.client.Collection("resources").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Resource", err)
		}
		return nil, errors.Internal("Failed to get resource", err)
	}

	var resource entity.Resource
	if err := doc.DataTo(&resource); err != nil {
		return nil, errors.Internal("Failed to parse resource data", err)
	}
	return &resource, nil
}

func (r *firestoreResourceRepository) Update(ctx context.Context, resource *entity.Resource) error {
	_, err := r.client.Collection("resources").Doc(resource.ID).Set(ctx, resource)
	if err != nil {
		return errors.Internal("Failed to update resource", err)
	}
	return nil
}

func (r *firestoreResourceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("resources").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete resource", err)
	}
	return nil
}

func (r *firestoreResourceRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Resource, error) {
	iter := r.client.Collection("resources").
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var resources []*entity.Resource
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate resources", err)
		}

		var resource entity.Resource
		if err := doc.DataTo(&resource); err != nil {
			return nil, errors.Internal("Failed to parse resource data", err)
		}
		resources = append(resources, &resource)
	}
	return resources, nil
}
