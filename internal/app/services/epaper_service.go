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

// EPaperStore is the persistence surface the epaper service relies on.
type EPaperStore interface {
	Create(ctx context.Context, e *models.EPaper) error
	GetByID(ctx context.Context, id int64) (*models.EPaper, error)
	FindByName(ctx context.Context, name string) (*models.EPaper, error)
	Update(ctx context.Context, e *models.EPaper) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.EPaper, error)
	List(ctx context.Context, query string, page, size int) ([]*models.EPaper, dto.PaginationInfo, error)
}

// EPaperService defines the interface for epaper operations. An epaper
// carries two media files, a cover image and the pdf itself, and each follows
// the upload lifecycle independently.
type EPaperService interface {
	CreateEPaper(ctx context.Context, req *dto.CreateEPaperRequest, uploads map[string]string) (*models.EPaper, error)
	GetEPaperByID(ctx context.Context, id int64) (*models.EPaper, error)
	GetAllEPapers(ctx context.Context) ([]*models.EPaper, error)
	ListEPapers(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateEPaper(ctx context.Context, id int64, req *dto.UpdateEPaperRequest, uploads map[string]string) (*models.EPaper, error)
	DeleteEPaper(ctx context.Context, id int64) error
}

// epaperServiceImpl implements EPaperService
type epaperServiceImpl struct {
	epaperRepo EPaperStore
	storage    filestorage.FileStorage
	locks      *keylock.KeyLock
}

// NewEPaperService creates a new EPaperService
func NewEPaperService(epaperRepo EPaperStore, storage filestorage.FileStorage, locks *keylock.KeyLock) EPaperService {
	return &epaperServiceImpl{
		epaperRepo: epaperRepo,
		storage:    storage,
		locks:      locks,
	}
}

// CreateEPaper creates an epaper edition. Both the media cover and the pdf
// must have been uploaded; a partial pair is discarded in full.
func (s *epaperServiceImpl) CreateEPaper(ctx context.Context, req *dto.CreateEPaperRequest, uploads map[string]string) (*models.EPaper, error) {
	media := uploads["media"]
	pdf := uploads["pdf"]
	if media == "" || pdf == "" {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewValidationError("media and pdf files are required")
	}

	existing, err := s.epaperRepo.FindByName(ctx, req.Name)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error checking epaper name")
	}
	if existing != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewConflictError("epaper with this name already exists")
	}

	epaper := &models.EPaper{
		Name:  req.Name,
		Media: media,
		PDF:   pdf,
	}

	if err := s.epaperRepo.Create(ctx, epaper); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("epaper with this name already exists")
		}
		return nil, apperrors.NewStorageError(err, "error creating epaper")
	}

	return epaper, nil
}

// GetEPaperByID retrieves an epaper by ID
func (s *epaperServiceImpl) GetEPaperByID(ctx context.Context, id int64) (*models.EPaper, error) {
	return s.epaperRepo.GetByID(ctx, id)
}

// GetAllEPapers retrieves all epapers without pagination
func (s *epaperServiceImpl) GetAllEPapers(ctx context.Context) ([]*models.EPaper, error) {
	return s.epaperRepo.GetAll(ctx)
}

// ListEPapers retrieves a paginated page of epapers
func (s *epaperServiceImpl) ListEPapers(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.epaperRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing epapers")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateEPaper applies a partial update. Either file may be replaced on its
// own; old files go only after the row change persisted.
func (s *epaperServiceImpl) UpdateEPaper(ctx context.Context, id int64, req *dto.UpdateEPaperRequest, uploads map[string]string) (*models.EPaper, error) {
	key := lockKey("epaper", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	epaper, err := s.epaperRepo.GetByID(ctx, id)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	if req.Name != nil && *req.Name != epaper.Name {
		existing, err := s.epaperRepo.FindByName(ctx, *req.Name)
		if err != nil {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewStorageError(err, "error checking epaper name")
		}
		if existing != nil && existing.ID != id {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewConflictError("epaper with this name already exists")
		}
		epaper.Name = *req.Name
	}

	oldMedia := epaper.Media
	oldPDF := epaper.PDF
	newMedia := uploads["media"]
	newPDF := uploads["pdf"]
	if newMedia != "" {
		epaper.Media = newMedia
	}
	if newPDF != "" {
		epaper.PDF = newPDF
	}

	if err := s.epaperRepo.Update(ctx, epaper); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("epaper with this name already exists")
		}
		return nil, apperrors.NewStorageError(err, "error updating epaper")
	}

	if newMedia != "" && oldMedia != "" && oldMedia != newMedia {
		removeStoredFile(s.storage, oldMedia)
	}
	if newPDF != "" && oldPDF != "" && oldPDF != newPDF {
		removeStoredFile(s.storage, oldPDF)
	}

	return epaper, nil
}

// DeleteEPaper removes the row first, then cleans up both files best effort.
func (s *epaperServiceImpl) DeleteEPaper(ctx context.Context, id int64) error {
	key := lockKey("epaper", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	epaper, err := s.epaperRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.epaperRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting epaper")
	}

	removeStoredFile(s.storage, epaper.Media)
	removeStoredFile(s.storage, epaper.PDF)
	return nil
}
