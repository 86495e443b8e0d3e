package usecase

import (
	"context"
	"time"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/pkg/errors"
)

type ReminderUseCase struct {
	reminderRepo repository.ReminderRepository
}

func NewReminderUseCase(reminderRepo repository.ReminderRepository) *ReminderUseCase {
	return &ReminderUseCase{
		reminderRepo: reminderRepo,
	}
}

type ReminderInput struct {
	Title   string
	Course  string
	DueDate *time.Time
	Notes   string
}

func (uc *ReminderUseCase) Create(ctx context.Context, userID string, input ReminderInput) (*entity.Reminder, error) {
	reminder := &entity.Reminder{
		UserID:  userID,
		Title:   input.Title,
		Course:  input.Course,
		DueDate: input.DueDate,
		Notes:   input.Notes,
		Status:  entity.ReminderStatusPending,
	}
	if err := uc.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// List returns the user's reminders, soft-deleted ones excluded, ordered
// by due date.
func (uc *ReminderUseCase) List(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	return uc.reminderRepo.ListByUser(ctx, userID)
}

func (uc *ReminderUseCase) Update(ctx context.Context, userID, id string, input ReminderInput) (*entity.Reminder, error) {
	reminder, err := uc.ownedReminder(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	reminder.Title = input.Title
	reminder.Course = input.Course
	reminder.DueDate = input.DueDate
	reminder.Notes = input.Notes
	reminder.UpdatedAt = time.Now()

	if err := uc.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// SoftDelete hides a reminder without removing the record.
func (uc *ReminderUseCase) SoftDelete(ctx context.Context, userID, id string) error {
	reminder, err := uc.ownedReminder(ctx, userID, id)
	if err != nil {
		return err
	}
	reminder.Deleted = true
	reminder.UpdatedAt = time.Now()
	return uc.reminderRepo.Update(ctx, reminder)
}

func (uc *ReminderUseCase) MarkComplete(ctx context.Context, userID, id string) (*entity.Reminder, error) {
	reminder, err := uc.ownedReminder(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	reminder.Status = entity.ReminderStatusCompleted
	reminder.UpdatedAt = time.Now()
	if err := uc.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (uc *ReminderUseCase) ownedReminder(ctx context.Context, userID, id string) (*entity.Reminder, error) {
	reminder, err := uc.reminderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Reminder", err)
	}
	if reminder.UserID != userID || reminder.Deleted {
		return nil, errors.NotFound("Reminder", nil)
	}
	return reminder, nil
}
