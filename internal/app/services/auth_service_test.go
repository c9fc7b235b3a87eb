package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/auth"
)

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	f.nextID++
	u.ID = f.nextID
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) FindByMobileNumber(_ context.Context, mobileNumber string) (*models.User, error) {
	for _, u := range f.users {
		if u.MobileNumber == mobileNumber {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Update(_ context.Context, u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) List(_ context.Context, _ string, page, size int) ([]*models.User, dto.PaginationInfo, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, dto.PaginationInfo{CurrentPage: page, PageSize: size, TotalItems: int64(len(out)), TotalPages: 1}, nil
}

type fakeAdminStore struct {
	admins map[string]*models.Admin
}

func (f *fakeAdminStore) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	a, ok := f.admins[email]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func testJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key-for-auth-service",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "newsdesk.test",
	})
}

func TestLoginUser_CreatesAccountOnFirstContact(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, &fakeAdminStore{}, testJWTService(t))

	resp, err := svc.LoginUser(context.Background(), &dto.UserLoginRequest{
		MobileNumber: "+919876543210",
		FCMToken:     "fcm-abc",
		TimeZone:     "Asia/Kolkata",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.User.ID == 0 {
		t.Error("first login must create the account")
	}
	if resp.Token == "" || resp.ExpiresIn != 3600 {
		t.Errorf("unexpected token material: token=%q expiresIn=%d", resp.Token, resp.ExpiresIn)
	}
	if len(users.users) != 1 {
		t.Errorf("store holds %d users, want 1", len(users.users))
	}
}

func TestLoginUser_RefreshesDeviceMetadata(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, &fakeAdminStore{}, testJWTService(t))

	first, err := svc.LoginUser(context.Background(), &dto.UserLoginRequest{
		MobileNumber: "+919876543210",
		FCMToken:     "fcm-old",
		TimeZone:     "Asia/Kolkata",
	})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}

	second, err := svc.LoginUser(context.Background(), &dto.UserLoginRequest{
		MobileNumber: "+919876543210",
		FCMToken:     "fcm-new",
	})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if second.User.ID != first.User.ID {
		t.Errorf("repeat login created a second account: %d vs %d", second.User.ID, first.User.ID)
	}
	stored := users.users[first.User.ID]
	if stored.FCMToken != "fcm-new" {
		t.Errorf("fcm token = %q, want refreshed fcm-new", stored.FCMToken)
	}
	if stored.TimeZone != "Asia/Kolkata" {
		t.Errorf("time zone = %q, empty field must not clear the stored one", stored.TimeZone)
	}
}

func TestLoginAdmin(t *testing.T) {
	hash, err := auth.HashPassword("s3cure-pass-1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admins := &fakeAdminStore{admins: map[string]*models.Admin{
		"desk@newsdesk.local": {ID: 1, Email: "desk@newsdesk.local", Password: hash},
	}}
	svc := NewAuthService(newFakeUserStore(), admins, testJWTService(t))

	resp, err := svc.LoginAdmin(context.Background(), &dto.AdminLoginRequest{
		Email: "desk@newsdesk.local", Password: "s3cure-pass-1",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Admin.Email != "desk@newsdesk.local" || resp.Token == "" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestLoginAdmin_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cure-pass-1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admins := &fakeAdminStore{admins: map[string]*models.Admin{
		"desk@newsdesk.local": {ID: 1, Email: "desk@newsdesk.local", Password: hash},
	}}
	svc := NewAuthService(newFakeUserStore(), admins, testJWTService(t))

	_, err = svc.LoginAdmin(context.Background(), &dto.AdminLoginRequest{
		Email: "desk@newsdesk.local", Password: "wrong-pass-99",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginAdmin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), &fakeAdminStore{}, testJWTService(t))

	_, err := svc.LoginAdmin(context.Background(), &dto.AdminLoginRequest{
		Email: "nobody@newsdesk.local", Password: "whatever-pass",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}
