package usecase

import (
	"context"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/pkg/errors"
)

// CatalogUseCase covers the small reference collections: categories, tags,
// listing-tag links, payment methods, and offerings.
type CatalogUseCase struct {
	categoryRepo      repository.CategoryRepository
	tagRepo           repository.TagRepository
	paymentMethodRepo repository.PaymentMethodRepository
	offeringRepo      repository.OfferingRepository
	listingRepo       repository.ListingRepository
}

func NewCatalogUseCase(
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	paymentMethodRepo repository.PaymentMethodRepository,
	offeringRepo repository.OfferingRepository,
	listingRepo repository.ListingRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo:      categoryRepo,
		tagRepo:           tagRepo,
		paymentMethodRepo: paymentMethodRepo,
		offeringRepo:      offeringRepo,
		listingRepo:       listingRepo,
	}
}

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	category := &entity.Category{Name: name}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return errors.NotFound("Category", err)
	}
	return uc.categoryRepo.Delete(ctx, id)
}

func (uc *CatalogUseCase) CreateTag(ctx context.Context, name string) (*entity.Tag, error) {
	tag := &entity.Tag{Name: name}
	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (uc *CatalogUseCase) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	return uc.tagRepo.List(ctx)
}

func (uc *CatalogUseCase) DeleteTag(ctx context.Context, id string) error {
	if _, err := uc.tagRepo.GetByID(ctx, id); err != nil {
		return errors.NotFound("Tag", err)
	}
	return uc.tagRepo.Delete(ctx, id)
}

// TagListing links a tag to a listing the caller owns.
func (uc *CatalogUseCase) TagListing(ctx context.Context, userID, listingID, tagID string) (*entity.ListingTag, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}
	if listing.UserID != userID {
		return nil, errors.Forbidden("You can only tag your own listings", nil)
	}
	if _, err := uc.tagRepo.GetByID(ctx, tagID); err != nil {
		return nil, errors.NotFound("Tag", err)
	}

	existing, err := uc.tagRepo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	for _, lt := range existing {
		if lt.TagID == tagID {
			return nil, errors.Conflict("Listing already has this tag")
		}
	}

	listingTag := &entity.ListingTag{ListingID: listingID, TagID: tagID}
	if err := uc.tagRepo.CreateListingTag(ctx, listingTag); err != nil {
		return nil, err
	}
	return listingTag, nil
}

func (uc *CatalogUseCase) UntagListing(ctx context.Context, id string) error {
	return uc.tagRepo.DeleteListingTag(ctx, id)
}

func (uc *CatalogUseCase) ListListingTags(ctx context.Context, listingID string) ([]*entity.ListingTag, error) {
	return uc.tagRepo.ListByListing(ctx, listingID)
}

func (uc *CatalogUseCase) CreatePaymentMethod(ctx context.Context, name, icon string) (*entity.PaymentMethod, error) {
	methods, err := uc.paymentMethodRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range methods {
		if m.Name == name {
			return nil, errors.Conflict("Payment method already exists")
		}
	}

	method := &entity.PaymentMethod{Name: name, Icon: icon}
	if err := uc.paymentMethodRepo.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (uc *CatalogUseCase) ListPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error) {
	return uc.paymentMethodRepo.List(ctx)
}

func (uc *CatalogUseCase) DeletePaymentMethod(ctx context.Context, id string) error {
	if _, err := uc.paymentMethodRepo.GetByID(ctx, id); err != nil {
		return errors.NotFound("Payment method", err)
	}
	return uc.paymentMethodRepo.Delete(ctx, id)
}

func (uc *CatalogUseCase) CreateOffering(ctx context.Context, name, description string, extraCost float64) (*entity.Offering, error) {
	offering := &entity.Offering{Name: name, Description: description, ExtraCost: extraCost}
	if err := uc.offeringRepo.Create(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (uc *CatalogUseCase) ListOfferings(ctx context.Context) ([]*entity.Offering, error) {
	return uc.offeringRepo.List(ctx)
}

func (uc *CatalogUseCase) DeleteOffering(ctx context.Context, id string) error {
	if _, err := uc.offeringRepo.GetByID(ctx, id); err != nil {
		return errors.NotFound("Offering", err)
	}
	return uc.offeringRepo.Delete(ctx, id)
}
