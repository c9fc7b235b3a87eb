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

// PostStore is the persistence surface the post service relies on.
type PostStore interface {
	Create(ctx context.Context, p *models.Post) error
	GetByID(ctx context.Context, id int64) (*dto.PostResponse, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, postType string, status models.ModerationStatus, query string, page, size int) ([]*dto.PostResponse, dto.PaginationInfo, error)
	AddView(ctx context.Context, postID, userID int64) error
	GetReaction(ctx context.Context, postID, userID int64) (*models.PostReaction, error)
	SetReaction(ctx context.Context, postID, userID int64, reaction models.ReactionType) error
	RemoveReaction(ctx context.Context, postID, userID int64) error
}

// postUserStore is the slice of the user store the post service needs to
// validate post ownership.
type postUserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// PostService defines the interface for post operations
type PostService interface {
	CreatePost(ctx context.Context, req *dto.CreatePostRequest, uploads map[string]string) (*dto.PostResponse, error)
	GetPostByID(ctx context.Context, id int64) (*dto.PostResponse, error)
	ListPosts(ctx context.Context, postType, status string, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdatePost(ctx context.Context, id int64, req *dto.UpdatePostRequest, uploads map[string]string) (*dto.PostResponse, error)
	UpdatePostStatus(ctx context.Context, id int64, status string) (*dto.PostResponse, error)
	DeletePost(ctx context.Context, id int64) error
	AddView(ctx context.Context, postID, userID int64) error
	ToggleReaction(ctx context.Context, postID, userID int64, reaction string) (*dto.PostResponse, error)
}

// postServiceImpl implements PostService
type postServiceImpl struct {
	postRepo PostStore
	userRepo postUserStore
	storage  filestorage.FileStorage
	locks    *keylock.KeyLock
}

// NewPostService creates a new PostService
func NewPostService(postRepo PostStore, userRepo postUserStore, storage filestorage.FileStorage, locks *keylock.KeyLock) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
		storage:  storage,
		locks:    locks,
	}
}

// CreatePost creates a post owned by an existing user. New posts default to
// PENDING moderation; the image is optional.
func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.CreatePostRequest, uploads map[string]string) (*dto.PostResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	status := models.ModerationPending
	if req.Status != "" {
		status = models.ModerationStatus(req.Status)
	}

	post := &models.Post{
		Type:        req.Type,
		Description: req.Description,
		Status:      status,
		UserID:      req.UserID,
		Image:       uploads["image"],
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		discardUploads(s.storage, uploads)
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError(err, "error creating post")
	}

	return &dto.PostResponse{Post: post}, nil
}

// GetPostByID retrieves a post with its derived counters
func (s *postServiceImpl) GetPostByID(ctx context.Context, id int64) (*dto.PostResponse, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPosts retrieves a paginated page of posts, optionally restricted to a
// type and/or moderation status.
func (s *postServiceImpl) ListPosts(ctx context.Context, postType, status string, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.postRepo.List(ctx, postType, models.ModerationStatus(status), q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing posts")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdatePost applies a partial update with the replace-after-persist rule for
// the image file.
func (s *postServiceImpl) UpdatePost(ctx context.Context, id int64, req *dto.UpdatePostRequest, uploads map[string]string) (*dto.PostResponse, error) {
	key := lockKey("post", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	current, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}
	post := current.Post

	if req.Type != nil {
		post.Type = *req.Type
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Status != nil {
		post.Status = models.ModerationStatus(*req.Status)
	}

	oldImage := post.Image
	newImage := uploads["image"]
	if newImage != "" {
		post.Image = newImage
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error updating post")
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		removeStoredFile(s.storage, oldImage)
	}

	return current, nil
}

// UpdatePostStatus is the admin moderation action.
func (s *postServiceImpl) UpdatePostStatus(ctx context.Context, id int64, status string) (*dto.PostResponse, error) {
	key := lockKey("post", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	current, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Post.Status = models.ModerationStatus(status)
	if err := s.postRepo.Update(ctx, current.Post); err != nil {
		return nil, apperrors.NewStorageError(err, "error updating post status")
	}

	return current, nil
}

// DeletePost removes the row first, then cleans up its file best effort.
// Views and reactions cascade with the row.
func (s *postServiceImpl) DeletePost(ctx context.Context, id int64) error {
	key := lockKey("post", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	current, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting post")
	}

	removeStoredFile(s.storage, current.Post.Image)
	return nil
}

// AddView records a distinct-user view on the post.
func (s *postServiceImpl) AddView(ctx context.Context, postID, userID int64) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	if err := s.postRepo.AddView(ctx, postID, userID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.NewStorageError(err, "error recording post view")
	}

	return nil
}

// ToggleReaction applies the like/dislike toggle: repeating the stored
// reaction removes it, anything else sets the new one.
func (s *postServiceImpl) ToggleReaction(ctx context.Context, postID, userID int64, reaction string) (*dto.PostResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	current, err := s.postRepo.GetReaction(ctx, postID, userID)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error reading post reaction")
	}

	kind := models.ReactionType(reaction)
	if current != nil && current.Reaction == kind {
		if err := s.postRepo.RemoveReaction(ctx, postID, userID); err != nil {
			return nil, apperrors.NewStorageError(err, "error removing post reaction")
		}
	} else {
		if err := s.postRepo.SetReaction(ctx, postID, userID, kind); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, apperrors.NewStorageError(err, "error setting post reaction")
		}
	}

	return s.postRepo.GetByID(ctx, postID)
}
