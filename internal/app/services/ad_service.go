package services

import (
	"context"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/dberrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/filestorage"
	"github.com/atlasmedia/newsdesk/internal/pkg/keylock"
)

// AdStore is the persistence surface the ad service relies on.
type AdStore interface {
	Create(ctx context.Context, a *models.Ad) error
	GetByID(ctx context.Context, id int64) (*models.Ad, error)
	FindByTitle(ctx context.Context, title string) (*models.Ad, error)
	Update(ctx context.Context, a *models.Ad) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Ad, error)
	List(ctx context.Context, query string, page, size int) ([]*models.Ad, dto.PaginationInfo, error)
}

// AdService defines the interface for ad operations
type AdService interface {
	CreateAd(ctx context.Context, req *dto.CreateAdRequest, uploads map[string]string) (*models.Ad, error)
	GetAdByID(ctx context.Context, id int64) (*models.Ad, error)
	GetAllAds(ctx context.Context) ([]*models.Ad, error)
	ListAds(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateAd(ctx context.Context, id int64, req *dto.UpdateAdRequest, uploads map[string]string) (*models.Ad, error)
	DeleteAd(ctx context.Context, id int64) error
}

// adServiceImpl implements AdService
type adServiceImpl struct {
	adRepo  AdStore
	storage filestorage.FileStorage
	locks   *keylock.KeyLock
}

// NewAdService creates a new AdService
func NewAdService(adRepo AdStore, storage filestorage.FileStorage, locks *keylock.KeyLock) AdService {
	return &adServiceImpl{
		adRepo:  adRepo,
		storage: storage,
		locks:   locks,
	}
}

// CreateAd creates an ad with its required media upload.
func (s *adServiceImpl) CreateAd(ctx context.Context, req *dto.CreateAdRequest, uploads map[string]string) (*models.Ad, error) {
	media := uploads["media"]
	if media == "" {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewValidationError("media file is required")
	}

	existing, err := s.adRepo.FindByTitle(ctx, req.Title)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error checking ad title")
	}
	if existing != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewConflictError("ad with this title already exists")
	}

	ad := &models.Ad{
		Title:     req.Title,
		Timestamp: req.Timestamp,
		Frequency: req.Frequency,
		Media:     media,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("ad with this title already exists")
		}
		return nil, apperrors.NewStorageError(err, "error creating ad")
	}

	return ad, nil
}

// GetAdByID retrieves an ad by ID
func (s *adServiceImpl) GetAdByID(ctx context.Context, id int64) (*models.Ad, error) {
	return s.adRepo.GetByID(ctx, id)
}

// GetAllAds retrieves all ads without pagination
func (s *adServiceImpl) GetAllAds(ctx context.Context) ([]*models.Ad, error) {
	return s.adRepo.GetAll(ctx)
}

// ListAds retrieves a paginated page of ads
func (s *adServiceImpl) ListAds(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.adRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing ads")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateAd applies a partial update with the replace-after-persist rule for
// the media file.
func (s *adServiceImpl) UpdateAd(ctx context.Context, id int64, req *dto.UpdateAdRequest, uploads map[string]string) (*models.Ad, error) {
	key := lockKey("ad", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	if req.Title != nil && *req.Title != ad.Title {
		existing, err := s.adRepo.FindByTitle(ctx, *req.Title)
		if err != nil {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewStorageError(err, "error checking ad title")
		}
		if existing != nil && existing.ID != id {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewConflictError("ad with this title already exists")
		}
		ad.Title = *req.Title
	}
	if req.Timestamp != nil {
		ad.Timestamp = *req.Timestamp
	}
	if req.Frequency != nil {
		ad.Frequency = *req.Frequency
	}

	oldMedia := ad.Media
	newMedia := uploads["media"]
	if newMedia != "" {
		ad.Media = newMedia
	}

	if err := s.adRepo.Update(ctx, ad); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("ad with this title already exists")
		}
		return nil, apperrors.NewStorageError(err, "error updating ad")
	}

	if newMedia != "" && oldMedia != "" && oldMedia != newMedia {
		removeStoredFile(s.storage, oldMedia)
	}

	return ad, nil
}

// DeleteAd removes the row first, then cleans up its file best effort.
func (s *adServiceImpl) DeleteAd(ctx context.Context, id int64) error {
	key := lockKey("ad", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.adRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting ad")
	}

	removeStoredFile(s.storage, ad.Media)
	return nil
}
