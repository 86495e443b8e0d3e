package usecase

import (
	"context"
	"io"
	"time"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/pkg/errors"
)

// FileStorage is the slice of the media store the resource flow needs.
type FileStorage interface {
	UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
}

type ResourceUseCase struct {
	resourceRepo repository.ResourceRepository
	storage      FileStorage
}

func NewResourceUseCase(resourceRepo repository.ResourceRepository, storage FileStorage) *ResourceUseCase {
	return &ResourceUseCase{
		resourceRepo: resourceRepo,
		storage:      storage,
	}
}

type CreateResourceInput struct {
	Title       string
	Description string
	File        io.Reader
	ContentType string
}

func (uc *ResourceUseCase) Create(ctx context.Context, ownerID string, input CreateResourceInput) (*entity.Resource, error) {
	fileURL, err := uc.storage.UploadFile(ctx, input.File, input.ContentType, "resources")
	if err != nil {
		return nil, errors.Internal("Failed to store file", err)
	}

	resource := &entity.Resource{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		FileURL:     fileURL,
	}
	if err := uc.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// List returns only the caller's resources, newest first.
func (uc *ResourceUseCase) List(ctx context.Context, ownerID string) ([]*entity.Resource, error) {
	return uc.resourceRepo.ListByOwner(ctx, ownerID)
}

func (uc *ResourceUseCase) Update(ctx context.Context, ownerID, id, title, description string) (*entity.Resource, error) {
	resource, err := uc.ownedResource(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	resource.Title = title
	resource.Description = description
	resource.UpdatedAt = time.Now()

	if err := uc.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (uc *ResourceUseCase) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := uc.ownedResource(ctx, ownerID, id); err != nil {
		return err
	}
	return uc.resourceRepo.Delete(ctx, id)
}

func (uc *ResourceUseCase) ownedResource(ctx context.Context, ownerID, id string) (*entity.Resource, error) {
	resource, err := uc.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Resource", err)
	}
	if resource.OwnerID != ownerID {
		return nil, errors.Forbidden("Not your resource", nil)
	}
	return resource, nil
}
