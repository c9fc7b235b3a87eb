package services

import (
	"context"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/dberrors"
)

// LiveNewsStore is the persistence surface the live news service relies on.
type LiveNewsStore interface {
	Create(ctx context.Context, l *models.LiveNews) error
	GetByID(ctx context.Context, id int64) (*models.LiveNews, error)
	FindByName(ctx context.Context, name string) (*models.LiveNews, error)
	Update(ctx context.Context, l *models.LiveNews) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.LiveNews, error)
	List(ctx context.Context, query string, page, size int) ([]*models.LiveNews, dto.PaginationInfo, error)
}

// LiveNewsService defines the interface for live news operations. Live news
// media is an external URL, so there is no file lifecycle on this entity.
type LiveNewsService interface {
	CreateLiveNews(ctx context.Context, req *dto.CreateLiveNewsRequest) (*models.LiveNews, error)
	GetLiveNewsByID(ctx context.Context, id int64) (*models.LiveNews, error)
	GetAllLiveNews(ctx context.Context) ([]*models.LiveNews, error)
	ListLiveNews(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateLiveNews(ctx context.Context, id int64, req *dto.UpdateLiveNewsRequest) (*models.LiveNews, error)
	DeleteLiveNews(ctx context.Context, id int64) error
}

// liveNewsServiceImpl implements LiveNewsService
type liveNewsServiceImpl struct {
	liveNewsRepo LiveNewsStore
}

// NewLiveNewsService creates a new LiveNewsService
func NewLiveNewsService(liveNewsRepo LiveNewsStore) LiveNewsService {
	return &liveNewsServiceImpl{liveNewsRepo: liveNewsRepo}
}

// CreateLiveNews creates a live news entry.
func (s *liveNewsServiceImpl) CreateLiveNews(ctx context.Context, req *dto.CreateLiveNewsRequest) (*models.LiveNews, error) {
	existing, err := s.liveNewsRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error checking live news name")
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("live news with this name already exists")
	}

	liveNews := &models.LiveNews{
		Name:  req.Name,
		URI:   req.URI,
		Media: req.Media,
	}

	if err := s.liveNewsRepo.Create(ctx, liveNews); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("live news with this name already exists")
		}
		return nil, apperrors.NewStorageError(err, "error creating live news")
	}

	return liveNews, nil
}

// GetLiveNewsByID retrieves a live news entry by ID
func (s *liveNewsServiceImpl) GetLiveNewsByID(ctx context.Context, id int64) (*models.LiveNews, error) {
	return s.liveNewsRepo.GetByID(ctx, id)
}

// GetAllLiveNews retrieves all live news entries without pagination
func (s *liveNewsServiceImpl) GetAllLiveNews(ctx context.Context) ([]*models.LiveNews, error) {
	return s.liveNewsRepo.GetAll(ctx)
}

// ListLiveNews retrieves a paginated page of live news
func (s *liveNewsServiceImpl) ListLiveNews(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.liveNewsRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing live news")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateLiveNews applies a partial update.
func (s *liveNewsServiceImpl) UpdateLiveNews(ctx context.Context, id int64, req *dto.UpdateLiveNewsRequest) (*models.LiveNews, error) {
	liveNews, err := s.liveNewsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != liveNews.Name {
		existing, err := s.liveNewsRepo.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, apperrors.NewStorageError(err, "error checking live news name")
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.NewConflictError("live news with this name already exists")
		}
		liveNews.Name = *req.Name
	}
	if req.URI != nil {
		liveNews.URI = *req.URI
	}
	if req.Media != nil {
		liveNews.Media = *req.Media
	}

	if err := s.liveNewsRepo.Update(ctx, liveNews); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("live news with this name already exists")
		}
		return nil, apperrors.NewStorageError(err, "error updating live news")
	}

	return liveNews, nil
}

// DeleteLiveNews deletes a live news entry.
func (s *liveNewsServiceImpl) DeleteLiveNews(ctx context.Context, id int64) error {
	if _, err := s.liveNewsRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.liveNewsRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting live news")
	}

	return nil
}
