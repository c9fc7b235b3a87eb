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

// CMSPageStore is the persistence surface the cms page service relies on.
type CMSPageStore interface {
	Create(ctx context.Context, p *models.CMSPage) error
	GetByID(ctx context.Context, id int64) (*models.CMSPage, error)
	FindByTitle(ctx context.Context, title string) (*models.CMSPage, error)
	Update(ctx context.Context, p *models.CMSPage) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.CMSPage, error)
	List(ctx context.Context, query string, page, size int) ([]*models.CMSPage, dto.PaginationInfo, error)
}

// CMSPageService defines the interface for cms page operations
type CMSPageService interface {
	CreateCMSPage(ctx context.Context, req *dto.CreateCMSPageRequest, uploads map[string]string) (*models.CMSPage, error)
	GetCMSPageByID(ctx context.Context, id int64) (*models.CMSPage, error)
	GetAllCMSPages(ctx context.Context) ([]*models.CMSPage, error)
	ListCMSPages(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateCMSPage(ctx context.Context, id int64, req *dto.UpdateCMSPageRequest, uploads map[string]string) (*models.CMSPage, error)
	DeleteCMSPage(ctx context.Context, id int64) error
}

// cmsPageServiceImpl implements CMSPageService
type cmsPageServiceImpl struct {
	cmsPageRepo CMSPageStore
	storage     filestorage.FileStorage
	locks       *keylock.KeyLock
}

// NewCMSPageService creates a new CMSPageService
func NewCMSPageService(cmsPageRepo CMSPageStore, storage filestorage.FileStorage, locks *keylock.KeyLock) CMSPageService {
	return &cmsPageServiceImpl{
		cmsPageRepo: cmsPageRepo,
		storage:     storage,
		locks:       locks,
	}
}

// CreateCMSPage creates a cms page with its required media upload.
func (s *cmsPageServiceImpl) CreateCMSPage(ctx context.Context, req *dto.CreateCMSPageRequest, uploads map[string]string) (*models.CMSPage, error) {
	media := uploads["media"]
	if media == "" {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewValidationError("media file is required")
	}

	existing, err := s.cmsPageRepo.FindByTitle(ctx, req.Title)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error checking cms page title")
	}
	if existing != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewConflictError("cms page with this title already exists")
	}

	page := &models.CMSPage{
		Title:       req.Title,
		Description: req.Description,
		Media:       media,
	}

	if err := s.cmsPageRepo.Create(ctx, page); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("cms page with this title already exists")
		}
		return nil, apperrors.NewStorageError(err, "error creating cms page")
	}

	return page, nil
}

// GetCMSPageByID retrieves a cms page by ID
func (s *cmsPageServiceImpl) GetCMSPageByID(ctx context.Context, id int64) (*models.CMSPage, error) {
	return s.cmsPageRepo.GetByID(ctx, id)
}

// GetAllCMSPages retrieves all cms pages without pagination
func (s *cmsPageServiceImpl) GetAllCMSPages(ctx context.Context) ([]*models.CMSPage, error) {
	return s.cmsPageRepo.GetAll(ctx)
}

// ListCMSPages retrieves a paginated page of cms pages
func (s *cmsPageServiceImpl) ListCMSPages(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.cmsPageRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing cms pages")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateCMSPage applies a partial update with the replace-after-persist rule
// for the media file.
func (s *cmsPageServiceImpl) UpdateCMSPage(ctx context.Context, id int64, req *dto.UpdateCMSPageRequest, uploads map[string]string) (*models.CMSPage, error) {
	key := lockKey("cmspage", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	page, err := s.cmsPageRepo.GetByID(ctx, id)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	if req.Title != nil && *req.Title != page.Title {
		existing, err := s.cmsPageRepo.FindByTitle(ctx, *req.Title)
		if err != nil {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewStorageError(err, "error checking cms page title")
		}
		if existing != nil && existing.ID != id {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewConflictError("cms page with this title already exists")
		}
		page.Title = *req.Title
	}
	if req.Description != nil {
		page.Description = *req.Description
	}

	oldMedia := page.Media
	newMedia := uploads["media"]
	if newMedia != "" {
		page.Media = newMedia
	}

	if err := s.cmsPageRepo.Update(ctx, page); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("cms page with this title already exists")
		}
		return nil, apperrors.NewStorageError(err, "error updating cms page")
	}

	if newMedia != "" && oldMedia != "" && oldMedia != newMedia {
		removeStoredFile(s.storage, oldMedia)
	}

	return page, nil
}

// DeleteCMSPage removes the row first, then cleans up its file best effort.
func (s *cmsPageServiceImpl) DeleteCMSPage(ctx context.Context, id int64) error {
	key := lockKey("cmspage", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	page, err := s.cmsPageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.cmsPageRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting cms page")
	}

	removeStoredFile(s.storage, page.Media)
	return nil
}
