package repository

import (
	"context"

	"toromarket/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Category, error)
}

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	GetByID(ctx context.Context, id string) (*entity.Tag, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Tag, error)

	CreateListingTag(ctx context.Context, listingTag *entity.ListingTag) error
	DeleteListingTag(ctx context.Context, id string) error
	ListByListing(ctx context.Context, listingID string) ([]*entity.ListingTag, error)
}

type PaymentMethodRepository interface {
	Create(ctx context.Context, method *entity.PaymentMethod) error
	GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error)
	Update(ctx context.Context, method *entity.PaymentMethod) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.PaymentMethod, error)
}

type OfferingRepository interface {
	Create(ctx context.Context, offering *entity.Offering) error
	GetByID(ctx context.Context, id string) (*entity.Offering, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Offering, error)
	Update(ctx context.Context, offering *entity.Offering) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Offering, error)
}
