package services

import (
	"context"
	"errors"
	"testing"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/keylock"
)

type fakeUserMediaStore struct {
	paths map[int64][]string
	err   error
}

func (f *fakeUserMediaStore) ImagePathsByUser(_ context.Context, userID int64) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.paths[userID], nil
}

func newUserServiceForTest(store *fakeUserStore, posts, reporters *fakeUserMediaStore, storage *testStorage) UserService {
	return NewUserService(store, posts, reporters, storage, keylock.New())
}

func TestDeleteUser_RemovesCascadedFiles(t *testing.T) {
	store := newFakeUserStore()
	user := &models.User{MobileNumber: "9000000001", Name: "Ravi", Image: "uploads/users/u.jpg"}
	if err := store.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	posts := &fakeUserMediaStore{paths: map[int64][]string{
		user.ID: {"uploads/posts/p1.jpg", "uploads/posts/p2.mp4"},
	}}
	reporters := &fakeUserMediaStore{paths: map[int64][]string{
		user.ID: {"uploads/reporters/r.jpg"},
	}}
	storage := &testStorage{}
	svc := newUserServiceForTest(store, posts, reporters, storage)

	if err := svc.DeleteUser(context.Background(), user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if _, err := store.GetByID(context.Background(), user.ID); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected the row gone, got %v", err)
	}
	for _, path := range []string{
		"uploads/users/u.jpg",
		"uploads/posts/p1.jpg",
		"uploads/posts/p2.mp4",
		"uploads/reporters/r.jpg",
	} {
		if !storage.wasDeleted(path) {
			t.Errorf("expected %s removed with the account", path)
		}
	}
}

func TestDeleteUser_NoDependentFiles(t *testing.T) {
	store := newFakeUserStore()
	user := &models.User{MobileNumber: "9000000002", Name: "Suma"}
	if err := store.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	storage := &testStorage{}
	svc := newUserServiceForTest(store, &fakeUserMediaStore{}, &fakeUserMediaStore{}, storage)

	if err := svc.DeleteUser(context.Background(), user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if len(storage.deletions()) != 0 {
		t.Errorf("expected no file deletions, got %v", storage.deletions())
	}
}

func TestDeleteUser_CollectFailureKeepsRow(t *testing.T) {
	store := newFakeUserStore()
	user := &models.User{MobileNumber: "9000000003", Name: "Arjun", Image: "uploads/users/a.jpg"}
	if err := store.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	posts := &fakeUserMediaStore{err: errors.New("connection reset")}
	storage := &testStorage{}
	svc := newUserServiceForTest(store, posts, &fakeUserMediaStore{}, storage)

	err := svc.DeleteUser(context.Background(), user.ID)
	if !errors.Is(err, apperrors.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if _, err := store.GetByID(context.Background(), user.ID); err != nil {
		t.Fatalf("expected the row kept, got %v", err)
	}
	if len(storage.deletions()) != 0 {
		t.Errorf("expected no file deletions on a failed collect, got %v", storage.deletions())
	}
}
