package usecase

import (
	"context"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/pkg/errors"
)

type EventUseCase struct {
	eventRepo repository.EventRepository
}

func NewEventUseCase(eventRepo repository.EventRepository) *EventUseCase {
	return &EventUseCase{
		eventRepo: eventRepo,
	}
}

type EventInput struct {
	Title       string
	Description string
	ImageURL    string
	Date        string
	Time        string
	Location    string
}

func (uc *EventUseCase) Create(ctx context.Context, creatorID string, input EventInput) (*entity.Event, error) {
	event := &entity.Event{
		CreatorID:   creatorID,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
	}
	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (uc *EventUseCase) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Event", err)
	}
	return event, nil
}

func (uc *EventUseCase) List(ctx context.Context) ([]*entity.Event, error) {
	return uc.eventRepo.List(ctx)
}

func (uc *EventUseCase) Delete(ctx context.Context, userID, id string) error {
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return errors.NotFound("Event", err)
	}
	if event.CreatorID != userID {
		return errors.Forbidden("You can only delete your own events", nil)
	}
	return uc.eventRepo.Delete(ctx, id)
}
