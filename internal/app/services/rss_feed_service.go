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

// RSSFeedStore is the persistence surface the rss feed service relies on.
type RSSFeedStore interface {
	Create(ctx context.Context, f *models.RSSFeed) error
	GetByID(ctx context.Context, id int64) (*models.RSSFeed, error)
	FindByName(ctx context.Context, name string) (*models.RSSFeed, error)
	Update(ctx context.Context, f *models.RSSFeed) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.RSSFeed, error)
	List(ctx context.Context, query string, page, size int) ([]*models.RSSFeed, dto.PaginationInfo, error)
}

// RSSFeedService defines the interface for rss feed operations
type RSSFeedService interface {
	CreateRSSFeed(ctx context.Context, req *dto.CreateRSSFeedRequest, uploads map[string]string) (*models.RSSFeed, error)
	GetRSSFeedByID(ctx context.Context, id int64) (*models.RSSFeed, error)
	GetAllRSSFeeds(ctx context.Context) ([]*models.RSSFeed, error)
	ListRSSFeeds(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateRSSFeed(ctx context.Context, id int64, req *dto.UpdateRSSFeedRequest, uploads map[string]string) (*models.RSSFeed, error)
	DeleteRSSFeed(ctx context.Context, id int64) error
}

// rssFeedServiceImpl implements RSSFeedService
type rssFeedServiceImpl struct {
	rssFeedRepo RSSFeedStore
	storage     filestorage.FileStorage
	locks       *keylock.KeyLock
}

// NewRSSFeedService creates a new RSSFeedService
func NewRSSFeedService(rssFeedRepo RSSFeedStore, storage filestorage.FileStorage, locks *keylock.KeyLock) RSSFeedService {
	return &rssFeedServiceImpl{
		rssFeedRepo: rssFeedRepo,
		storage:     storage,
		locks:       locks,
	}
}

// CreateRSSFeed registers an rss feed with its required cover image.
func (s *rssFeedServiceImpl) CreateRSSFeed(ctx context.Context, req *dto.CreateRSSFeedRequest, uploads map[string]string) (*models.RSSFeed, error) {
	image := uploads["image"]
	if image == "" {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewValidationError("image file is required")
	}

	existing, err := s.rssFeedRepo.FindByName(ctx, req.Name)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error checking rss feed name")
	}
	if existing != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewConflictError("rss feed with this name already exists")
	}

	feed := &models.RSSFeed{
		Name:     req.Name,
		Title:    req.Title,
		URL:      req.URL,
		Category: req.Category,
		Language: req.Language,
		Image:    image,
	}

	if err := s.rssFeedRepo.Create(ctx, feed); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("rss feed with this name already exists")
		}
		return nil, apperrors.NewStorageError(err, "error creating rss feed")
	}

	return feed, nil
}

// GetRSSFeedByID retrieves an rss feed by ID
func (s *rssFeedServiceImpl) GetRSSFeedByID(ctx context.Context, id int64) (*models.RSSFeed, error) {
	return s.rssFeedRepo.GetByID(ctx, id)
}

// GetAllRSSFeeds retrieves all rss feeds without pagination
func (s *rssFeedServiceImpl) GetAllRSSFeeds(ctx context.Context) ([]*models.RSSFeed, error) {
	return s.rssFeedRepo.GetAll(ctx)
}

// ListRSSFeeds retrieves a paginated page of rss feeds
func (s *rssFeedServiceImpl) ListRSSFeeds(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.rssFeedRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing rss feeds")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateRSSFeed applies a partial update with the replace-after-persist rule
// for the cover image.
func (s *rssFeedServiceImpl) UpdateRSSFeed(ctx context.Context, id int64, req *dto.UpdateRSSFeedRequest, uploads map[string]string) (*models.RSSFeed, error) {
	key := lockKey("rssfeed", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	feed, err := s.rssFeedRepo.GetByID(ctx, id)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	if req.Name != nil && *req.Name != feed.Name {
		existing, err := s.rssFeedRepo.FindByName(ctx, *req.Name)
		if err != nil {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewStorageError(err, "error checking rss feed name")
		}
		if existing != nil && existing.ID != id {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewConflictError("rss feed with this name already exists")
		}
		feed.Name = *req.Name
	}
	if req.Title != nil {
		feed.Title = *req.Title
	}
	if req.URL != nil {
		feed.URL = *req.URL
	}
	if req.Category != nil {
		feed.Category = *req.Category
	}
	if req.Language != nil {
		feed.Language = *req.Language
	}

	oldImage := feed.Image
	newImage := uploads["image"]
	if newImage != "" {
		feed.Image = newImage
	}

	if err := s.rssFeedRepo.Update(ctx, feed); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("rss feed with this name already exists")
		}
		return nil, apperrors.NewStorageError(err, "error updating rss feed")
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		removeStoredFile(s.storage, oldImage)
	}

	return feed, nil
}

// DeleteRSSFeed removes the row first, then cleans up its file best effort.
func (s *rssFeedServiceImpl) DeleteRSSFeed(ctx context.Context, id int64) error {
	key := lockKey("rssfeed", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	feed, err := s.rssFeedRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.rssFeedRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting rss feed")
	}

	removeStoredFile(s.storage, feed.Image)
	return nil
}
