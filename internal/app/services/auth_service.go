package services

import (
	"context"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/auth"
	"github.com/atlasmedia/newsdesk/internal/pkg/dberrors"
)

// authAdminStore is the slice of the admin store the auth service needs.
type authAdminStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// AuthService defines the interface for login operations
type AuthService interface {
	LoginUser(ctx context.Context, req *dto.UserLoginRequest) (*dto.UserLoginResponse, error)
	LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   UserStore
	adminRepo  authAdminStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserStore, adminRepo authAdminStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// LoginUser authenticates a user by mobile number, creating the account on
// first contact. Device metadata (fcm token, time zone) refreshes on every
// login.
func (s *authServiceImpl) LoginUser(ctx context.Context, req *dto.UserLoginRequest) (*dto.UserLoginResponse, error) {
	user, err := s.userRepo.FindByMobileNumber(ctx, req.MobileNumber)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error looking up user")
	}

	if user == nil {
		user = &models.User{
			MobileNumber: req.MobileNumber,
			FCMToken:     req.FCMToken,
			TimeZone:     req.TimeZone,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			if dberrors.IsUniqueViolation(err) {
				// Concurrent first login on the same number. Re-read the winner.
				user, err = s.userRepo.FindByMobileNumber(ctx, req.MobileNumber)
				if err != nil || user == nil {
					return nil, apperrors.NewStorageError(err, "error looking up user")
				}
			} else {
				return nil, apperrors.NewStorageError(err, "error creating user")
			}
		}
	} else {
		changed := false
		if req.FCMToken != "" && req.FCMToken != user.FCMToken {
			user.FCMToken = req.FCMToken
			changed = true
		}
		if req.TimeZone != "" && req.TimeZone != user.TimeZone {
			user.TimeZone = req.TimeZone
			changed = true
		}
		if changed {
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, apperrors.NewStorageError(err, "error updating user")
			}
		}
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, auth.RoleUser, user.MobileNumber, "")
	if err != nil {
		return nil, err
	}

	return &dto.UserLoginResponse{
		User:      user,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// LoginAdmin authenticates a back-office account. Lookup misses and password
// mismatches return the same error so the response does not leak which
// part failed.
func (s *authServiceImpl) LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error looking up admin")
	}
	if admin == nil || !auth.CheckPassword(admin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin.ID, auth.RoleAdmin, "", admin.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AdminLoginResponse{
		Admin:     dto.AdminData{ID: admin.ID, Email: admin.Email},
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
