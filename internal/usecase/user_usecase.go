package usecase

import (
	"context"
	"time"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type UpdateProfileInput struct {
	FirstName        *string
	LastName         *string
	ProfilePicture   *string
	About            *string
	Interests        *string
	GraduationDate   *string
	CompanyName      *string
	DisplayAsCompany *bool
	PhoneNumber      *string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

// UpdateProfile applies only the fields present in the input. Email,
// username, and role flags are read-only here.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = *input.ProfilePicture
	}
	if input.About != nil {
		user.About = *input.About
	}
	if input.Interests != nil {
		user.Interests = *input.Interests
	}
	if input.GraduationDate != nil {
		user.GraduationDate = *input.GraduationDate
	}
	if input.CompanyName != nil {
		user.CompanyName = *input.CompanyName
	}
	if input.DisplayAsCompany != nil {
		user.DisplayAsCompany = *input.DisplayAsCompany
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update profile", err)
	}
	return user, nil
}

func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, limit, offset)
}

func (uc *UserUseCase) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
