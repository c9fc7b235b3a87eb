package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/keylock"
)

type fakeReporterStore struct {
	mu        sync.Mutex
	reporters map[int64]*models.Reporter
	nextID    int64
	createErr error
}

func newFakeReporterStore() *fakeReporterStore {
	return &fakeReporterStore{reporters: make(map[int64]*models.Reporter)}
}

func (f *fakeReporterStore) Create(ctx context.Context, rep *models.Reporter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	rep.ID = f.nextID
	cp := *rep
	f.reporters[rep.ID] = &cp
	return nil
}

func (f *fakeReporterStore) GetByID(ctx context.Context, id int64) (*models.Reporter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rep, ok := f.reporters[id]
	if !ok {
		return nil, apperrors.ErrReporterNotFound
	}
	cp := *rep
	return &cp, nil
}

func (f *fakeReporterStore) FindByUserID(ctx context.Context, userID int64) (*models.Reporter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rep := range f.reporters {
		if rep.UserID == userID {
			cp := *rep
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReporterStore) Update(ctx context.Context, rep *models.Reporter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reporters[rep.ID]; !ok {
		return apperrors.ErrReporterNotFound
	}
	cp := *rep
	f.reporters[rep.ID] = &cp
	return nil
}

func (f *fakeReporterStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reporters[id]; !ok {
		return apperrors.ErrReporterNotFound
	}
	delete(f.reporters, id)
	return nil
}

func (f *fakeReporterStore) List(ctx context.Context, query string, page, size int) ([]*models.Reporter, dto.PaginationInfo, error) {
	return nil, dto.PaginationInfo{}, nil
}

type fakeReporterUserStore struct {
	known map[int64]bool
}

func (f *fakeReporterUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if !f.known[id] {
		return nil, apperrors.ErrUserNotFound
	}
	return &models.User{ID: id}, nil
}

func newReporterService(store *fakeReporterStore, users *fakeReporterUserStore, storage *testStorage) ReporterService {
	return NewReporterService(store, users, storage, keylock.New())
}

func TestCreateReporter_Success(t *testing.T) {
	store := newFakeReporterStore()
	storage := &testStorage{}
	svc := newReporterService(store, &fakeReporterUserStore{known: map[int64]bool{7: true}}, storage)

	req := &dto.CreateReporterRequest{Name: "Ravi Kumar", State: "Telangana", District: "Medak", UserID: 7}
	rep, err := svc.CreateReporter(context.Background(), req, map[string]string{"image": "uploads/reporters/a.jpg"})
	if err != nil {
		t.Fatalf("CreateReporter: %v", err)
	}
	if rep.Status != models.ReporterWaiting {
		t.Errorf("status = %q, want %q", rep.Status, models.ReporterWaiting)
	}
	if rep.Image != "uploads/reporters/a.jpg" {
		t.Errorf("image = %q, want the uploaded path", rep.Image)
	}
	if len(storage.deletions()) != 0 {
		t.Errorf("expected no deletions on success, got %v", storage.deletions())
	}
}

func TestCreateReporter_UnknownUserDiscardsUpload(t *testing.T) {
	store := newFakeReporterStore()
	storage := &testStorage{}
	svc := newReporterService(store, &fakeReporterUserStore{known: map[int64]bool{}}, storage)

	req := &dto.CreateReporterRequest{Name: "Ravi Kumar", State: "Telangana", District: "Medak", UserID: 99}
	_, err := svc.CreateReporter(context.Background(), req, map[string]string{"image": "uploads/reporters/a.jpg"})
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("err = %v, want user not found", err)
	}
	if !storage.wasDeleted("uploads/reporters/a.jpg") {
		t.Error("expected the upload to be discarded")
	}
}

func TestCreateReporter_SecondApplicationConflicts(t *testing.T) {
	store := newFakeReporterStore()
	storage := &testStorage{}
	svc := newReporterService(store, &fakeReporterUserStore{known: map[int64]bool{7: true}}, storage)

	first := &dto.CreateReporterRequest{Name: "Ravi Kumar", State: "Telangana", District: "Medak", UserID: 7}
	if _, err := svc.CreateReporter(context.Background(), first, nil); err != nil {
		t.Fatalf("first CreateReporter: %v", err)
	}

	second := &dto.CreateReporterRequest{Name: "Ravi K", State: "Telangana", District: "Medak", UserID: 7}
	_, err := svc.CreateReporter(context.Background(), second, map[string]string{"image": "uploads/reporters/b.jpg"})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if !storage.wasDeleted("uploads/reporters/b.jpg") {
		t.Error("expected the upload to be discarded")
	}
}

func TestCreateReporter_RacingInsertConflicts(t *testing.T) {
	store := newFakeReporterStore()
	storage := &testStorage{}
	svc := newReporterService(store, &fakeReporterUserStore{known: map[int64]bool{7: true}}, storage)

	// The pre-insert lookup sees nothing, but the insert itself trips
	// the one-application-per-user constraint.
	store.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "reporters_user_id_key"}

	req := &dto.CreateReporterRequest{Name: "Ravi Kumar", State: "Telangana", District: "Medak", UserID: 7}
	_, err := svc.CreateReporter(context.Background(), req, map[string]string{"image": "uploads/reporters/c.jpg"})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if !storage.wasDeleted("uploads/reporters/c.jpg") {
		t.Error("expected the upload to be discarded")
	}
}

func TestDeleteReporter_RemovesImage(t *testing.T) {
	store := newFakeReporterStore()
	storage := &testStorage{}
	svc := newReporterService(store, &fakeReporterUserStore{known: map[int64]bool{7: true}}, storage)

	req := &dto.CreateReporterRequest{Name: "Ravi Kumar", State: "Telangana", District: "Medak", UserID: 7}
	rep, err := svc.CreateReporter(context.Background(), req, map[string]string{"image": "uploads/reporters/a.jpg"})
	if err != nil {
		t.Fatalf("CreateReporter: %v", err)
	}

	if err := svc.DeleteReporter(context.Background(), rep.ID); err != nil {
		t.Fatalf("DeleteReporter: %v", err)
	}
	if _, err := store.GetByID(context.Background(), rep.ID); !errors.Is(err, apperrors.ErrReporterNotFound) {
		t.Fatalf("expected the row gone, got %v", err)
	}
	if !storage.wasDeleted("uploads/reporters/a.jpg") {
		t.Error("expected the image removed after the row delete")
	}
}
