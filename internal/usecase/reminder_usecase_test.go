package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toromarket/internal/domain/entity"
	"toromarket/pkg/errors"
)

func TestReminderLifecycle(t *testing.T) {
	repo := newFakeReminderRepo()
	uc := NewReminderUseCase(repo)
	ctx := context.Background()

	due := time.Now().AddDate(0, 0, 7)
	reminder, err := uc.Create(ctx, "u1", ReminderInput{Title: "Midterm", Course: "MAT 211", DueDate: &due})
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusPending, reminder.Status)

	completed, err := uc.MarkComplete(ctx, "u1", reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusCompleted, completed.Status)

	require.NoError(t, uc.SoftDelete(ctx, "u1", reminder.ID))

	// Soft-deleted reminders disappear from reads but keep their record.
	list, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.True(t, repo.reminders[reminder.ID].Deleted)

	_, err = uc.Update(ctx, "u1", reminder.ID, ReminderInput{Title: "changed"})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestReminderOwnershipHidesOtherUsers(t *testing.T) {
	repo := newFakeReminderRepo()
	uc := NewReminderUseCase(repo)
	ctx := context.Background()

	reminder, err := uc.Create(ctx, "u1", ReminderInput{Title: "Essay draft"})
	require.NoError(t, err)

	// Another user probing the id gets the same answer as a missing one.
	_, err = uc.MarkComplete(ctx, "u2", reminder.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	err = uc.SoftDelete(ctx, "u2", reminder.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.False(t, repo.reminders[reminder.ID].Deleted)
}
