package usecase

import (
	"context"
	"time"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/pkg/errors"
)

type ListingUseCase struct {
	listingRepo  repository.ListingRepository
	categoryRepo repository.CategoryRepository
}

func NewListingUseCase(listingRepo repository.ListingRepository, categoryRepo repository.CategoryRepository) *ListingUseCase {
	return &ListingUseCase{
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
	}
}

type ListingInput struct {
	Title            string
	Description      string
	CategoryID       string
	Price            float64
	Location         string
	PaymentMethodIDs []string
	OfferingIDs      []string
	ImageURLs        []string
}

func (uc *ListingUseCase) Create(ctx context.Context, userID string, input ListingInput) (*entity.Listing, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, errors.NotFound("Category", err)
	}

	listing := &entity.Listing{
		UserID:           userID,
		Title:            input.Title,
		Description:      input.Description,
		CategoryID:       input.CategoryID,
		Price:            input.Price,
		Location:         input.Location,
		PaymentMethodIDs: input.PaymentMethodIDs,
		OfferingIDs:      input.OfferingIDs,
		ImageURLs:        input.ImageURLs,
	}
	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (uc *ListingUseCase) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}
	return listing, nil
}

func (uc *ListingUseCase) Update(ctx context.Context, userID, id string, input ListingInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}
	if listing.UserID != userID {
		return nil, errors.Forbidden("You can only update your own listings", nil)
	}

	listing.Title = input.Title
	listing.Description = input.Description
	listing.CategoryID = input.CategoryID
	listing.Price = input.Price
	listing.Location = input.Location
	listing.PaymentMethodIDs = input.PaymentMethodIDs
	listing.OfferingIDs = input.OfferingIDs
	if input.ImageURLs != nil {
		listing.ImageURLs = input.ImageURLs
	}
	listing.UpdatedAt = time.Now()

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (uc *ListingUseCase) Delete(ctx context.Context, userID, id string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return errors.NotFound("Listing", err)
	}
	if listing.UserID != userID {
		return errors.Forbidden("You can only delete your own listings", nil)
	}
	return uc.listingRepo.Delete(ctx, id)
}

func (uc *ListingUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Listing, int64, error) {
	return uc.listingRepo.List(ctx, limit, offset)
}

// ListMine returns the caller's own listings, newest first.
func (uc *ListingUseCase) ListMine(ctx context.Context, userID string) ([]*entity.Listing, error) {
	return uc.listingRepo.ListByUser(ctx, userID)
}
