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

// CategoryStore is the persistence surface the category service relies on.
type CategoryStore interface {
	Create(ctx context.Context, c *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Category, error)
	List(ctx context.Context, query string, page, size int) ([]*models.Category, dto.PaginationInfo, error)
}

// CategoryService defines the interface for category operations
type CategoryService interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest, uploads map[string]string) (*models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	GetAllCategories(ctx context.Context) ([]*models.Category, error)
	ListCategories(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateCategory(ctx context.Context, id int64, req *dto.UpdateCategoryRequest, uploads map[string]string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// categoryServiceImpl implements CategoryService
type categoryServiceImpl struct {
	categoryRepo CategoryStore
	storage      filestorage.FileStorage
	locks        *keylock.KeyLock
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo CategoryStore, storage filestorage.FileStorage, locks *keylock.KeyLock) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
		storage:      storage,
		locks:        locks,
	}
}

// CreateCategory creates a category with its required image upload.
func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest, uploads map[string]string) (*models.Category, error) {
	image := uploads["image"]
	if image == "" {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewValidationError("image file is required")
	}

	existing, err := s.categoryRepo.FindByName(ctx, req.Name)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error checking category name")
	}
	if existing != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewConflictError("category with this name already exists")
	}

	category := &models.Category{
		Name:         req.Name,
		MainCategory: req.MainCategory,
		Image:        image,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("category with this name already exists")
		}
		return nil, apperrors.NewStorageError(err, "error creating category")
	}

	return category, nil
}

// GetCategoryByID retrieves a category by ID
func (s *categoryServiceImpl) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// GetAllCategories retrieves all categories without pagination
func (s *categoryServiceImpl) GetAllCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

// ListCategories retrieves a paginated page of categories
func (s *categoryServiceImpl) ListCategories(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.categoryRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing categories")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateCategory applies a partial update with the replace-after-persist rule
// for the image file.
func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id int64, req *dto.UpdateCategoryRequest, uploads map[string]string) (*models.Category, error) {
	key := lockKey("category", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		existing, err := s.categoryRepo.FindByName(ctx, *req.Name)
		if err != nil {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewStorageError(err, "error checking category name")
		}
		if existing != nil && existing.ID != id {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewConflictError("category with this name already exists")
		}
		category.Name = *req.Name
	}
	if req.MainCategory != nil {
		category.MainCategory = *req.MainCategory
	}

	oldImage := category.Image
	newImage := uploads["image"]
	if newImage != "" {
		category.Image = newImage
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("category with this name already exists")
		}
		return nil, apperrors.NewStorageError(err, "error updating category")
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		removeStoredFile(s.storage, oldImage)
	}

	return category, nil
}

// DeleteCategory removes the row first, then cleans up its file best effort.
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id int64) error {
	key := lockKey("category", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting category")
	}

	removeStoredFile(s.storage, category.Image)
	return nil
}
