package services

import (
	"context"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/filestorage"
	"github.com/atlasmedia/newsdesk/internal/pkg/keylock"
)

// UserStore is the persistence surface the user service relies on.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	FindByMobileNumber(ctx context.Context, mobileNumber string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query string, page, size int) ([]*models.User, dto.PaginationInfo, error)
}

// userMediaStore lists stored file paths attached to a user's dependent rows.
// Those rows go with the user by cascade, so their files have to be collected
// before the account row is deleted.
type userMediaStore interface {
	ImagePathsByUser(ctx context.Context, userID int64) ([]string, error)
}

// UserService defines the interface for user account operations
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest, uploads map[string]string) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo      UserStore
	postMedia     userMediaStore
	reporterMedia userMediaStore
	storage       filestorage.FileStorage
	locks         *keylock.KeyLock
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, postMedia, reporterMedia userMediaStore, storage filestorage.FileStorage, locks *keylock.KeyLock) UserService {
	return &userServiceImpl{
		userRepo:      userRepo,
		postMedia:     postMedia,
		reporterMedia: reporterMedia,
		storage:       storage,
		locks:         locks,
	}
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves a paginated page of users
func (s *userServiceImpl) ListUsers(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse, error) {
	items, pagination, err := s.userRepo.List(ctx, q.Query, q.Page, q.Limit)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing users")
	}
	return &dto.PaginatedResponse{Items: items, Pagination: pagination}, nil
}

// UpdateUser applies a self-service profile update with the
// replace-after-persist rule for the profile image.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest, uploads map[string]string) (*models.User, error) {
	key := lockKey("user", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		discardUploads(s.storage, uploads)
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	oldImage := user.Image
	newImage := uploads["image"]
	if newImage != "" {
		user.Image = newImage
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		discardUploads(s.storage, uploads)
		return nil, apperrors.NewStorageError(err, "error updating user")
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		removeStoredFile(s.storage, oldImage)
	}

	return user, nil
}

// DeleteUser removes the account row first, then cleans up the profile image
// and the files of the user's cascaded posts and reporter application best
// effort. The dependent paths are collected up front because the cascade
// leaves no rows to read them from afterwards.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	key := lockKey("user", id)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	postImages, err := s.postMedia.ImagePathsByUser(ctx, id)
	if err != nil {
		return apperrors.NewStorageError(err, "error collecting user post files")
	}
	reporterImages, err := s.reporterMedia.ImagePathsByUser(ctx, id)
	if err != nil {
		return apperrors.NewStorageError(err, "error collecting user reporter files")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError(err, "error deleting user")
	}

	removeStoredFile(s.storage, user.Image)
	for _, path := range postImages {
		removeStoredFile(s.storage, path)
	}
	for _, path := range reporterImages {
		removeStoredFile(s.storage, path)
	}
	return nil
}
