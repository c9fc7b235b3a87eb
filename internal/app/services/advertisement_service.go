package services

import (
	"context"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/filestorage"
	"github.com/atlasmedia/newsdesk/internal/pkg/keylock"
)

// AdvertisementStore is the persistence surface the advertisement service relies on.
type AdvertisementStore interface {
	Create(ctx context.Context, a *models.Advertisement) error
	GetByID(ctx context.Context, id int64) (*models.Advertisement, error)
	Update(ctx context.Context, a *models.Advertisement) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Advertisement, error)
	List(ctx context.Context, query string, page, size int) ([]*models.Advertisement, dto.PaginationInfo, error)
}

// AdvertisementService defines the interface for user-submitted advertisement
// operations. The image is optional; there is no unique key on this entity.
type AdvertisementService interface {
	CreateAdvertisement(ctx context.Context, req *dto.CreateAdvertisementRequest, uploads map[string]string) (*models.Advertisement, error)
	GetAdvertisementByID(ctx context.Context, id int64) (*models.Advertisement, error)
	GetAllAdvertisements(ctx context.Context) ([]*models.Advertisement, error)
	ListAdvertisements(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateAdvertisement(ctx context.Context, id int64, req *dto.UpdateAdvertisementRequest, uploads map[string]string) (*models.Advertisement, error)
	DeleteAdvertisement(ctx context.Context, id int64) error
}

// advertisementServiceImpl implements AdvertisementService
type advertisementServiceImpl struct {
	advertisementRepo AdvertisementStore
	storage           filestorage.FileStorage
	locks             *keylock.KeyLock
}

// NewAdvertisementService creates a new AdvertisementService
func NewAdvertisementService(advertisementRepo AdvertisementStore, storage filestorage.FileStorage, locks *keylock.KeyLock) AdvertisementService {
	return &advertisementServiceImpl{
		advertisementRepo: advertisementRepo,
		storage:           storage,
		locks:             locks,
	}
}

// CreateAdvertisement creates an advertisement submission. New submissions
// default to PENDING moderation.
func (s *advertisementServiceImpl) CreateAdvertisement(ctx context.Context, req *dto.CreateAdvertisementRequest, uploads map[string]string) (*models.Advertisement, error) {
	status := models.ModerationPending
	if req.Status != "" {
		status = models.ModerationStatus(req.Status)
	}

	advertisement := &models.Advertisement{
		AdvertisementType: req.AdvertisementType,
		BannerType:        req.BannerType,
		Content:           req.Content,
		PostType:          req.PostType,
		Status:            status,
		Image:             uploads["image"],
	}

	if err := s.advertisementRepo.Create(ctx, advertisement); err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error creating advertisement")
	}

	return advertisement, nil
}

// GetAdvertisementByID retrieves an advertisement by ID
func (s *advertisementServiceImpl) GetAdvertisementByID(ctx context.Context, id int64) (*models.Advertisement, error) {
	return s.advertisementRepo.GetByID(ctx, id)
}

// GetAllAdvertisements retrieves all advertisements without pagination
func (s *advertisementServiceImpl) GetAllAdvertisements(ctx context.Context) ([]*models.Advertisement, error) {
	return s.advertisementRepo.GetAll(ctx)
}

// ListAdvertisements retrieves a paginated page of advertisements
func (s *advertisementServiceImpl) ListAdvertisements(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.advertisementRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing advertisements")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateAdvertisement applies a partial update. A replacement image displaces
// the old file only after the row change persisted; records without an image
// may gain one here.
func (s *advertisementServiceImpl) UpdateAdvertisement(ctx context.Context, id int64, req *dto.UpdateAdvertisementRequest, uploads map[string]string) (*models.Advertisement, error) {
	key := lockKey("advertisement", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	advertisement, err := s.advertisementRepo.GetByID(ctx, id)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	if req.AdvertisementType != nil {
		advertisement.AdvertisementType = *req.AdvertisementType
	}
	if req.BannerType != nil {
		advertisement.BannerType = *req.BannerType
	}
	if req.Content != nil {
		advertisement.Content = *req.Content
	}
	if req.PostType != nil {
		advertisement.PostType = *req.PostType
	}
	if req.Status != nil {
		advertisement.Status = models.ModerationStatus(*req.Status)
	}

	oldImage := advertisement.Image
	newImage := uploads["image"]
	if newImage != "" {
		advertisement.Image = newImage
	}

	if err := s.advertisementRepo.Update(ctx, advertisement); err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error updating advertisement")
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		removeStoredFile(s.storage, oldImage)
	}

	return advertisement, nil
}

// DeleteAdvertisement removes the row first, then cleans up its file best
// effort. Records without an image skip the file step.
func (s *advertisementServiceImpl) DeleteAdvertisement(ctx context.Context, id int64) error {
	key := lockKey("advertisement", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	advertisement, err := s.advertisementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.advertisementRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting advertisement")
	}

	removeStoredFile(s.storage, advertisement.Image)
	return nil
}
