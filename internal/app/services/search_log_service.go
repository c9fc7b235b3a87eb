package services

import (
	"context"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/dberrors"
)

// SearchLogStore is the persistence surface the search log service relies on.
type SearchLogStore interface {
	Upsert(ctx context.Context, s *models.SearchLog) error
	GetByID(ctx context.Context, id int64) (*models.SearchLog, error)
	FindByTerm(ctx context.Context, term string) (*models.SearchLog, error)
	Update(ctx context.Context, s *models.SearchLog) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query string, page, size int) ([]*models.SearchLog, dto.PaginationInfo, error)
}

// SearchLogService defines the interface for search analytics operations
type SearchLogService interface {
	RecordSearch(ctx context.Context, req *dto.CreateSearchLogRequest) (*models.SearchLog, error)
	GetSearchLogByID(ctx context.Context, id int64) (*models.SearchLog, error)
	ListSearchLogs(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateSearchLog(ctx context.Context, id int64, req *dto.UpdateSearchLogRequest) (*models.SearchLog, error)
	DeleteSearchLog(ctx context.Context, id int64) error
}

// searchLogServiceImpl implements SearchLogService
type searchLogServiceImpl struct {
	searchLogRepo SearchLogStore
}

// NewSearchLogService creates a new SearchLogService
func NewSearchLogService(searchLogRepo SearchLogStore) SearchLogService {
	return &searchLogServiceImpl{searchLogRepo: searchLogRepo}
}

// RecordSearch logs a search term. A repeated term accumulates its count and
// refreshes the search date instead of inserting a second row. The store does
// the accumulation atomically, so concurrent searches all land.
func (s *searchLogServiceImpl) RecordSearch(ctx context.Context, req *dto.CreateSearchLogRequest) (*models.SearchLog, error) {
	entry := &models.SearchLog{
		Term:       req.Term,
		Count:      req.Count,
		SearchedAt: req.SearchedAt,
	}
	if err := s.searchLogRepo.Upsert(ctx, entry); err != nil {
		return nil, apperrors.NewStorageError(err, "error recording search")
	}

	return entry, nil
}

// GetSearchLogByID retrieves a search log by ID
func (s *searchLogServiceImpl) GetSearchLogByID(ctx context.Context, id int64) (*models.SearchLog, error) {
	return s.searchLogRepo.GetByID(ctx, id)
}

// ListSearchLogs retrieves a paginated page of search logs, most searched first
func (s *searchLogServiceImpl) ListSearchLogs(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.searchLogRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing search logs")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateSearchLog applies a partial update to a search log entry.
func (s *searchLogServiceImpl) UpdateSearchLog(ctx context.Context, id int64, req *dto.UpdateSearchLogRequest) (*models.SearchLog, error) {
	entry, err := s.searchLogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Term != nil && *req.Term != entry.Term {
		existing, err := s.searchLogRepo.FindByTerm(ctx, *req.Term)
		if err != nil {
			return nil, apperrors.NewStorageError(err, "error looking up search term")
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.NewConflictError("search log for this term already exists")
		}
		entry.Term = *req.Term
	}
	if req.Count != nil {
		entry.Count = *req.Count
	}
	if req.SearchedAt != nil {
		entry.SearchedAt = *req.SearchedAt
	}

	if err := s.searchLogRepo.Update(ctx, entry); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("search log for this term already exists")
		}
		return nil, apperrors.NewStorageError(err, "error updating search log")
	}

	return entry, nil
}

// DeleteSearchLog deletes a search log entry.
func (s *searchLogServiceImpl) DeleteSearchLog(ctx context.Context, id int64) error {
	if _, err := s.searchLogRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.searchLogRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting search log")
	}

	return nil
}
