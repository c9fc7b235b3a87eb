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

// BlogStore is the persistence surface the blog service relies on.
type BlogStore interface {
	Create(ctx context.Context, b *models.Blog) error
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
	FindByTitle(ctx context.Context, title string) (*models.Blog, error)
	Update(ctx context.Context, b *models.Blog) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Blog, error)
	List(ctx context.Context, query string, page, size int) ([]*models.Blog, dto.PaginationInfo, error)
}

// BlogService defines the interface for blog operations
type BlogService interface {
	CreateBlog(ctx context.Context, req *dto.CreateBlogRequest, uploads map[string]string) (*models.Blog, error)
	GetBlogByID(ctx context.Context, id int64) (*models.Blog, error)
	GetAllBlogs(ctx context.Context) ([]*models.Blog, error)
	ListBlogs(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateBlog(ctx context.Context, id int64, req *dto.UpdateBlogRequest, uploads map[string]string) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id int64) error
}

// blogServiceImpl implements BlogService
type blogServiceImpl struct {
	blogRepo BlogStore
	storage  filestorage.FileStorage
	locks    *keylock.KeyLock
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo BlogStore, storage filestorage.FileStorage, locks *keylock.KeyLock) BlogService {
	return &blogServiceImpl{
		blogRepo: blogRepo,
		storage:  storage,
		locks:    locks,
	}
}

// CreateBlog creates a blog entry with its required cover image.
func (s *blogServiceImpl) CreateBlog(ctx context.Context, req *dto.CreateBlogRequest, uploads map[string]string) (*models.Blog, error) {
	image := uploads["image"]
	if image == "" {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewValidationError("image file is required")
	}

	existing, err := s.blogRepo.FindByTitle(ctx, req.Title)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error checking blog title")
	}
	if existing != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewConflictError("blog with this title already exists")
	}

	blog := &models.Blog{
		Title:           req.Title,
		Visibility:      req.Visibility,
		PublishDateTime: req.PublishDateTime,
		Status:          models.BlogStatus(req.Status),
		Type:            req.Type,
		Image:           image,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("blog with this title already exists")
		}
		return nil, apperrors.NewStorageError(err, "error creating blog")
	}

	return blog, nil
}

// GetBlogByID retrieves a blog by ID
func (s *blogServiceImpl) GetBlogByID(ctx context.Context, id int64) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}

// GetAllBlogs retrieves all blogs without pagination
func (s *blogServiceImpl) GetAllBlogs(ctx context.Context) ([]*models.Blog, error) {
	return s.blogRepo.GetAll(ctx)
}

// ListBlogs retrieves a paginated page of blogs
func (s *blogServiceImpl) ListBlogs(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.blogRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing blogs")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateBlog applies a partial update with the replace-after-persist rule for
// the cover image.
func (s *blogServiceImpl) UpdateBlog(ctx context.Context, id int64, req *dto.UpdateBlogRequest, uploads map[string]string) (*models.Blog, error) {
	key := lockKey("blog", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	if req.Title != nil && *req.Title != blog.Title {
		existing, err := s.blogRepo.FindByTitle(ctx, *req.Title)
		if err != nil {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewStorageError(err, "error checking blog title")
		}
		if existing != nil && existing.ID != id {
			discardUploads(s.storage, uploads)
			return nil, apperrors.NewConflictError("blog with this title already exists")
		}
		blog.Title = *req.Title
	}
	if req.Visibility != nil {
		blog.Visibility = *req.Visibility
	}
	if req.PublishDateTime != nil {
		blog.PublishDateTime = req.PublishDateTime
	}
	if req.Status != nil {
		blog.Status = models.BlogStatus(*req.Status)
	}
	if req.Type != nil {
		blog.Type = *req.Type
	}

	oldImage := blog.Image
	newImage := uploads["image"]
	if newImage != "" {
		blog.Image = newImage
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("blog with this title already exists")
		}
		return nil, apperrors.NewStorageError(err, "error updating blog")
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		removeStoredFile(s.storage, oldImage)
	}

	return blog, nil
}

// DeleteBlog removes the row first, then cleans up its file best effort.
func (s *blogServiceImpl) DeleteBlog(ctx context.Context, id int64) error {
	key := lockKey("blog", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting blog")
	}

	removeStoredFile(s.storage, blog.Image)
	return nil
}
