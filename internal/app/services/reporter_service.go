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

// ReporterStore is the persistence surface the reporter service relies on.
type ReporterStore interface {
	Create(ctx context.Context, rep *models.Reporter) error
	GetByID(ctx context.Context, id int64) (*models.Reporter, error)
	FindByUserID(ctx context.Context, userID int64) (*models.Reporter, error)
	Update(ctx context.Context, rep *models.Reporter) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query string, page, size int) ([]*models.Reporter, dto.PaginationInfo, error)
}

// reporterUserStore is the slice of the user store the reporter service needs.
type reporterUserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// ReporterService defines the interface for reporter application operations
type ReporterService interface {
	CreateReporter(ctx context.Context, req *dto.CreateReporterRequest, uploads map[string]string) (*models.Reporter, error)
	GetReporterByID(ctx context.Context, id int64) (*models.Reporter, error)
	ListReporters(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateReporter(ctx context.Context, id int64, req *dto.UpdateReporterRequest, uploads map[string]string) (*models.Reporter, error)
	DeleteReporter(ctx context.Context, id int64) error
}

// reporterServiceImpl implements ReporterService
type reporterServiceImpl struct {
	reporterRepo ReporterStore
	userRepo     reporterUserStore
	storage      filestorage.FileStorage
	locks        *keylock.KeyLock
}

// NewReporterService creates a new ReporterService
func NewReporterService(reporterRepo ReporterStore, userRepo reporterUserStore, storage filestorage.FileStorage, locks *keylock.KeyLock) ReporterService {
	return &reporterServiceImpl{
		reporterRepo: reporterRepo,
		userRepo:     userRepo,
		storage:      storage,
		locks:        locks,
	}
}

// CreateReporter files a reporter application for an existing user. A user
// can hold at most one application; the image is optional.
func (s *reporterServiceImpl) CreateReporter(ctx context.Context, req *dto.CreateReporterRequest, uploads map[string]string) (*models.Reporter, error) {
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	existing, err := s.reporterRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error checking reporter application")
	}
	if existing != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewConflictError("user already has a reporter application")
	}

	status := models.ReporterWaiting
	if req.Status != "" {
		status = models.ReporterStatus(req.Status)
	}

	reporter := &models.Reporter{
		Name:         req.Name,
		State:        req.State,
		District:     req.District,
		Constituency: req.Constituency,
		Mandal:       req.Mandal,
		Status:       status,
		UserID:       req.UserID,
		Image:        uploads["image"],
	}

	if err := s.reporterRepo.Create(ctx, reporter); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsDuplicateConstraintError(err, "reporters_user_id_key") {
			return nil, apperrors.NewConflictError("user already has a reporter application")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError(err, "error creating reporter")
	}

	return reporter, nil
}

// GetReporterByID retrieves a reporter by ID
func (s *reporterServiceImpl) GetReporterByID(ctx context.Context, id int64) (*models.Reporter, error) {
	return s.reporterRepo.GetByID(ctx, id)
}

// ListReporters retrieves a paginated page of reporters
func (s *reporterServiceImpl) ListReporters(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.reporterRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing reporters")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateReporter applies a partial update, including the moderation status
// transition, with the replace-after-persist rule for the image.
func (s *reporterServiceImpl) UpdateReporter(ctx context.Context, id int64, req *dto.UpdateReporterRequest, uploads map[string]string) (*models.Reporter, error) {
	key := lockKey("reporter", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	reporter, err := s.reporterRepo.GetByID(ctx, id)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	if req.Name != nil {
		reporter.Name = *req.Name
	}
	if req.State != nil {
		reporter.State = *req.State
	}
	if req.District != nil {
		reporter.District = *req.District
	}
	if req.Constituency != nil {
		reporter.Constituency = *req.Constituency
	}
	if req.Mandal != nil {
		reporter.Mandal = *req.Mandal
	}
	if req.Status != nil {
		reporter.Status = models.ReporterStatus(*req.Status)
	}

	oldImage := reporter.Image
	newImage := uploads["image"]
	if newImage != "" {
		reporter.Image = newImage
	}

	if err := s.reporterRepo.Update(ctx, reporter); err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error updating reporter")
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		removeStoredFile(s.storage, oldImage)
	}

	return reporter, nil
}

// DeleteReporter removes the row first, then cleans up its file best effort.
func (s *reporterServiceImpl) DeleteReporter(ctx context.Context, id int64) error {
	key := lockKey("reporter", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	reporter, err := s.reporterRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reporterRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting reporter")
	}

	removeStoredFile(s.storage, reporter.Image)
	return nil
}
