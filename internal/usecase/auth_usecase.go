package usecase

import (
	"context"
	"strings"
	"time"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/internal/infrastructure/firebase"
	"toromarket/pkg/errors"
	"toromarket/pkg/logger"
)

// AuthUseCase maps verified bearer credentials to local users, creating
// the local record the first time an identity shows up.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	authClient *firebase.AuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, authClient *firebase.AuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		authClient: authClient,
	}
}

type VerifyTokenResult struct {
	UID   string       `json:"uid"`
	Email string       `json:"email"`
	User  *entity.User `json:"user"`
}

// VerifyToken validates the credential and returns the local user,
// creating one on first sight with a username derived from the email
// prefix.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, idToken string) (*VerifyTokenResult, error) {
	ident, err := uc.authClient.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.ResolveUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	return &VerifyTokenResult{UID: ident.UID, Email: ident.Email, User: user}, nil
}

// ResolveUser looks up the local user for a verified identity, creating
// one when absent.
func (uc *AuthUseCase) ResolveUser(ctx context.Context, ident *firebase.Identity) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, ident.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	username := strings.SplitN(ident.Email, "@", 2)[0]
	if _, err := uc.userRepo.GetByUsername(ctx, username); err == nil {
		// Prefix taken by another account; disambiguate with the uid tail.
		suffix := ident.UID
		if len(suffix) > 6 {
			suffix = suffix[:6]
		}
		username = username + "_" + suffix
	}

	now := time.Now()
	user = &entity.User{
		ID:        ident.UID,
		Email:     ident.Email,
		Username:  username,
		IsBuyer:   true,
		IsSeller:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user", err)
	}

	logger.Info("auth: created local user %s for %s", user.Username, user.Email)
	return user, nil
}

// AuthenticateSocket resolves a raw token for the websocket connect path.
func (uc *AuthUseCase) AuthenticateSocket(ctx context.Context, idToken string) (*entity.User, error) {
	ident, err := uc.authClient.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return uc.ResolveUser(ctx, ident)
}
