package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toromarket/internal/domain/entity"
	"toromarket/internal/infrastructure/firebase"
)

func TestResolveUserReturnsExisting(t *testing.T) {
	existing := &entity.User{ID: "uid-1", Email: "alice@csudh.edu", Username: "alice"}
	uc := NewAuthUseCase(newFakeUserRepo(existing), nil)

	user, err := uc.ResolveUser(context.Background(), &firebase.Identity{UID: "uid-1", Email: "alice@csudh.edu"})
	require.NoError(t, err)
	assert.Same(t, existing, user)
}

func TestResolveUserCreatesOnFirstSight(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, nil)

	user, err := uc.ResolveUser(context.Background(), &firebase.Identity{UID: "uid-42", Email: "carol@csudh.edu"})
	require.NoError(t, err)

	assert.Equal(t, "uid-42", user.ID)
	assert.Equal(t, "carol", user.Username)
	assert.True(t, user.IsBuyer)
	assert.True(t, user.IsSeller)
	assert.False(t, user.IsAdmin)

	stored, err := repo.GetByID(context.Background(), "uid-42")
	require.NoError(t, err)
	assert.Equal(t, user, stored)
}

func TestResolveUserDisambiguatesTakenUsername(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: "uid-1", Email: "carol@gmail.com", Username: "carol"})
	uc := NewAuthUseCase(repo, nil)

	user, err := uc.ResolveUser(context.Background(), &firebase.Identity{UID: "abcdef123", Email: "carol@csudh.edu"})
	require.NoError(t, err)
	assert.Equal(t, "carol_abcdef", user.Username)
}
