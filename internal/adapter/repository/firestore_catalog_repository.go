package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/pkg/errors"
)

// Catalog collections are small reference data so listing them loads
// everything in one pass.

type firestoreCategoryRepository struct {
	client *firestore.Client
}

func NewFirestoreCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &firestoreCategoryRepository{client: client}
}

func (r *firestoreCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	_, err := r.client.Collection("categories").Doc(category.ID).Set(ctx, category)
	if err != nil {
		return errors.Internal("Failed to create category", err)
	}
	return nil
}

func (r *firestoreCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	doc, err := r.client.Collection("categories").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Category", err)
		}
		return nil, errors.Internal("Failed to get category", err)
	}

	var category entity.Category
	if err := doc.DataTo(&category); err != nil {
		return nil, errors.Internal("Failed to parse category data", err)
	}
	return &category, nil
}

func (r *firestoreCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	_, err := r.client.Collection("categories").Doc(category.ID).Set(ctx, category)
	if err != nil {
		return errors.Internal("Failed to update category", err)
	}
	return nil
}

func (r *firestoreCategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("categories").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete category", err)
	}
	return nil
}

func (r *firestoreCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	iter := r.client.Collection("categories").OrderBy("name", firestore.Asc).Documents(ctx)

	var categories []*entity.Category
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate categories", err)
		}

		var category entity.Category
		if err := doc.DataTo(&category); err != nil {
			return nil, errors.Internal("Failed to parse category data", err)
		}
		categories = append(categories, &category)
	}
	return categories, nil
}

type firestoreTagRepository struct {
	client *firestore.Client
}

func NewFirestoreTagRepository(client *firestore.Client) repository.TagRepository {
	return &firestoreTagRepository{client: client}
}

func (r *firestoreTagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	_, err := r.client.Collection("tags").Doc(tag.ID).Set(ctx, tag)
	if err != nil {
		return errors.Internal("Failed to create tag", err)
	}
	return nil
}

func (r *firestoreTagRepository) GetByID(ctx context.Context, id string) (*entity.Tag, error) {
	doc, err := r.client.Collection("tags").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Tag", err)
		}
		return nil, errors.Internal("Failed to get tag", err)
	}

	var tag entity.Tag
	if err := doc.DataTo(&tag); err != nil {
		return nil, errors.Internal("Failed to parse tag data", err)
	}
	return &tag, nil
}

func (r *firestoreTagRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("tags").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete tag", err)
	}
	return nil
}

func (r *firestoreTagRepository) List(ctx context.Context) ([]*entity.Tag, error) {
	iter := r.client.Collection("tags").OrderBy("name", firestore.Asc).Documents(ctx)

	var tags []*entity.Tag
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate tags", err)
		}

		var tag entity.Tag
		if err := doc.DataTo(&tag); err != nil {
			return nil, errors.Internal("Failed to parse tag data", err)
		}
		tags = append(tags, &tag)
	}
	return tags, nil
}

func (r *firestoreTagRepository) CreateListingTag(ctx context.Context, listingTag *entity.ListingTag) error {
	if listingTag.ID == "" {
		listingTag.ID = uuid.New().String()
	}
	_, err := r.client.Collection("listing_tags").Doc(listingTag.ID).Set(ctx, listingTag)
	if err != nil {
		return errors.Internal("Failed to attach tag", err)
	}
	return nil
}

func (r *firestoreTagRepository) DeleteListingTag(ctx context.Context, id string) error {
	_, err := r.client.Collection("listing_tags").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to detach tag", err)
	}
	return nil
}

func (r *firestoreTagRepository) ListByListing(ctx context.Context, listingID string) ([]*entity.ListingTag, error) {
	iter := r.client.Collection("listing_tags").Where("listingId", "==", listingID).Documents(ctx)

	var listingTags []*entity.ListingTag
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate listing tags", err)
		}

		var listingTag entity.ListingTag
		if err := doc.DataTo(&listingTag); err != nil {
			return nil, errors.Internal("Failed to parse listing tag data", err)
		}
		listingTags = append(listingTags, &listingTag)
	}
	return listingTags, nil
}

type firestorePaymentMethodRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentMethodRepository(client *firestore.Client) repository.PaymentMethodRepository {
	return &firestorePaymentMethodRepository{client: client}
}

func (r *firestorePaymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	if method.ID == "" {
		method.ID = uuid.New().String()
	}
	_, err := r.client.Collection("payment_methods").Doc(method.ID).Set(ctx, method)
	if err != nil {
		return errors.Internal("Failed to create payment method", err)
	}
	return nil
}

func (r *firestorePaymentMethodRepository) GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error) {
	doc, err := r.client.Collection("payment_methods").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Payment method", err)
		}
		return nil, errors.Internal("Failed to get payment method", err)
	}

	var method entity.PaymentMethod
	if err := doc.DataTo(&method); err != nil {
		return nil, errors.Internal("Failed to parse payment method data", err)
	}
	return &method, nil
}

func (r *firestorePaymentMethodRepository) Update(ctx context.Context, method *entity.PaymentMethod) error {
	_, err := r.client.Collection("payment_methods").Doc(method.ID).Set(ctx, method)
	if err != nil {
		return errors.Internal("Failed to update payment method", err)
	}
	return nil
}

func (r *firestorePaymentMethodRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("payment_methods").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete payment method", err)
	}
	return nil
}

func (r *firestorePaymentMethodRepository) List(ctx context.Context) ([]*entity.PaymentMethod, error) {
	iter := r.client.Collection("payment_methods").OrderBy("name", firestore.Asc).Documents(ctx)

	var methods []*entity.PaymentMethod
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate payment methods", err)
		}

		var method entity.PaymentMethod
		if err := doc.DataTo(&method); err != nil {
			return nil, errors.Internal("Failed to parse payment method data", err)
		}
		methods = append(methods, &method)
	}
	return methods, nil
}

type firestoreOfferingRepository struct {
	client *firestore.Client
}

func NewFirestoreOfferingRepository(client *firestore.Client) repository.OfferingRepository {
	return &firestoreOfferingRepository{client: client}
}

func (r *firestoreOfferingRepository) Create(ctx context.Context, offering *entity.Offering) error {
	if offering.ID == "" {
		offering.ID = uuid.New().String()
	}
	_, err := r.client.Collection("offerings").Doc(offering.ID).Set(ctx, offering)
	if err != nil {
		return errors.Internal("Failed to create offering", err)
	}
	return nil
}

func (r *firestoreOfferingRepository) GetByID(ctx context.Context, id string) (*entity.Offering, error) {
	doc, err := r.client.Collection("offerings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Offering", err)
		}
		return nil, errors.Internal("Failed to get offering", err)
	}

	var offering entity.Offering
	if err := doc.DataTo(&offering); err != nil {
		return nil, errors.Internal("Failed to parse offering data", err)
	}
	return &offering, nil
}

func (r *firestoreOfferingRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Offering, error) {
	var offerings []*entity.Offering
	for _, id := range ids {
		offering, err := r.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				continue
			}
			return nil, err
		}
		offerings = append(offerings, offering)
	}
	return offerings, nil
}

func (r *firestoreOfferingRepository) Update(ctx context.Context, offering *entity.Offering) error {
	_, err := r.client.Collection("offerings").Doc(offering.ID).Set(ctx, offering)
	if err != nil {
		return errors.Internal("Failed to update offering", err)
	}
	return nil
}

func (r *firestoreOfferingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("offerings").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete offering", err)
	}
	return nil
}

func (r *firestoreOfferingRepository) List(ctx context.Context) ([]*entity.Offering, error) {
	iter := r.client.Collection("offerings").OrderBy("name", firestore.Asc).Documents(ctx)

	var offerings []*entity.Offering
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate offerings", err)
		}

		var offering entity.Offering
		if err := doc.DataTo(&offering); err != nil {
			return nil, errors.Internal("Failed to parse offering data", err)
		}
		offerings = append(offerings, &offering)
	}
	return offerings, nil
}
