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

// NewsStore is the persistence surface the news service relies on.
type NewsStore interface {
	Create(ctx context.Context, n *models.News) error
	GetByID(ctx context.Context, id int64) (*models.News, error)
	FindByTitle(ctx context.Context, title string) (*models.News, error)
	Update(ctx context.Context, n *models.News) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.News, error)
	List(ctx context.Context, query string, page, size int) ([]*models.News, dto.PaginationInfo, error)
}

// NewsService defines the interface for news operations
type NewsService interface {
	CreateNews(ctx context.Context, req *dto.CreateNewsRequest, uploads map[string]string) (*models.News, error)
	GetNewsByID(ctx context.Context, id int64) (*models.News, error)
	GetAllNews(ctx context.Context) ([]*models.News, error)
	ListNews(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateNews(ctx context.Context, id int64, req *dto.UpdateNewsRequest, uploads map[string]string) (*models.News, error)
	DeleteNews(ctx context.Context, id int64) error
}

// newsServiceImpl implements NewsService
type newsServiceImpl struct {
	newsRepo NewsStore
	storage  filestorage.FileStorage
	locks    *keylock.KeyLock
}

// NewNewsService creates a new NewsService
func NewNewsService(newsRepo NewsStore, storage filestorage.FileStorage, locks *keylock.KeyLock) NewsService {
	return &newsServiceImpl{
		newsRepo: newsRepo,
		storage:  storage,
		locks:    locks,
	}
}

// CreateNews creates a news item. Uploads were already written to disk by the
// time this runs; any outcome other than a persisted row removes them again.
func (s *newsServiceImpl) CreateNews(ctx context.Context, req *dto.CreateNewsRequest, uploads map[string]string) (*models.News, error) {
	image := uploads["image"]
	if image == "" {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewValidationError("image file is required")
	}

	existing, err := s.newsRepo.FindByTitle(ctx, req.Title)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error checking news title")
	}
	if existing != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewConflictError("news with this title already exists")
	}

	news := &models.News{
		Title: req.Title,
		Image: image,
	}

	if err := s.newsRepo.Create(ctx, news); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("news with this title already exists")
		}
		return nil, apperrors.NewStorageError(err, "error creating news")
	}

	return news, nil
}

// GetNewsByID retrieves a news item by ID
func (s *newsServiceImpl) GetNewsByID(ctx context.Context, id int64) (*models.News, error) {
	return s.newsRepo.GetByID(ctx, id)
}

// GetAllNews retrieves all news items without pagination
func (s *newsServiceImpl) GetAllNews(ctx context.Context) ([]*models.News, error) {
	return s.newsRepo.GetAll(ctx)
}

// ListNews retrieves a paginated page of news
func (s *newsServiceImpl) ListNews(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.newsRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing news")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateNews applies a partial update. A replacement image is only allowed to
// displace the old file after the row change has persisted.
func (s *newsServiceImpl) UpdateNews(ctx context.Context, id int64, req *dto.UpdateNewsRequest, uploads map[string]string) (*models.News, error) {
	key := lockKey("news", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	if req.Title != nil && *req.Title != news.Title {
		existing, err := s.newsRepo.FindByTitle(ctx, *req.Title)
		if err != nil {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewStorageError(err, "error checking news title")
		}
		if existing != nil && existing.ID != id {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewConflictError("news with this title already exists")
		}
		news.Title = *req.Title
	}

	oldImage := news.Image
	newImage := uploads["image"]
	if newImage != "" {
		news.Image = newImage
	}

	if err := s.newsRepo.Update(ctx, news); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("news with this title already exists")
		}
		return nil, apperrors.NewStorageError(err, "error updating news")
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		removeStoredFile(s.storage, oldImage)
	}

	return news, nil
}

// DeleteNews removes the row first, then cleans up its file best effort.
func (s *newsServiceImpl) DeleteNews(ctx context.Context, id int64) error {
	key := lockKey("news", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.newsRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting news")
	}

	removeStoredFile(s.storage, news.Image)
	return nil
}
