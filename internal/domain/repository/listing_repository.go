package repository

import (
	"context"

	"toromarket/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Listing, int64, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Listing, error)
}

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	GetByID(ctx context.Context, id string) (*entity.Favorite, error)
	FindByUserAndListing(ctx context.Context, userID, listingID string) (*entity.Favorite, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error)
	Delete(ctx context.Context, id string) error
}
