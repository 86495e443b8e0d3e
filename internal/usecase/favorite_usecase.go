package usecase

import (
	"context"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/pkg/errors"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	listingRepo  repository.ListingRepository
}

func NewFavoriteUseCase(favoriteRepo repository.FavoriteRepository, listingRepo repository.ListingRepository) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
	}
}

func (uc *FavoriteUseCase) Add(ctx context.Context, userID, listingID string) (*entity.Favorite, error) {
	if _, err := uc.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, errors.NotFound("Listing", err)
	}

	if existing, err := uc.favoriteRepo.FindByUserAndListing(ctx, userID, listingID); err == nil && existing != nil {
		return nil, errors.Conflict("Listing already favorited")
	}

	favorite := &entity.Favorite{UserID: userID, ListingID: listingID}
	if err := uc.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (uc *FavoriteUseCase) List(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	return uc.favoriteRepo.ListByUser(ctx, userID)
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, id string) error {
	favorite, err := uc.favoriteRepo.GetByID(ctx, id)
	if err != nil {
		return errors.NotFound("Favorite", err)
	}
	if favorite.UserID != userID {
		return errors.Forbidden("Not your favorite", nil)
	}
	return uc.favoriteRepo.Delete(ctx, id)
}
