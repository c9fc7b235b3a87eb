package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/keylock"
)

type fakeNewsStore struct {
	items     map[int64]*models.News
	nextID    int64
	createErr error
	updateErr error
	deleteErr error
}

func newFakeNewsStore() *fakeNewsStore {
	return &fakeNewsStore{items: make(map[int64]*models.News)}
}

func (f *fakeNewsStore) Create(_ context.Context, n *models.News) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	n.ID = f.nextID
	n.CreatedAt = time.Unix(1000, 0)
	n.UpdatedAt = n.CreatedAt
	copied := *n
	f.items[n.ID] = &copied
	return nil
}

func (f *fakeNewsStore) GetByID(_ context.Context, id int64) (*models.News, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrNewsNotFound
	}
	copied := *n
	return &copied, nil
}

func (f *fakeNewsStore) FindByTitle(_ context.Context, title string) (*models.News, error) {
	for _, n := range f.items {
		if n.Title == title {
			copied := *n
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeNewsStore) Update(_ context.Context, n *models.News) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.items[n.ID]; !ok {
		return apperrors.ErrNewsNotFound
	}
	// Refresh the timestamp through the model, like the row trigger does.
	n.UpdatedAt = time.Unix(2000, 0)
	copied := *n
	f.items[n.ID] = &copied
	return nil
}

func (f *fakeNewsStore) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrNewsNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeNewsStore) GetAll(_ context.Context) ([]*models.News, error) {
	out := make([]*models.News, 0, len(f.items))
	for _, n := range f.items {
		copied := *n
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeNewsStore) List(_ context.Context, _ string, page, size int) ([]*models.News, dto.PaginationInfo, error) {
	items, _ := f.GetAll(context.Background())
	return items, dto.PaginationInfo{CurrentPage: page, PageSize: size, TotalItems: int64(len(items)), TotalPages: 1}, nil
}

func newNewsServiceForTest(store *fakeNewsStore, storage *testStorage) NewsService {
	return NewNewsService(store, storage, keylock.New())
}

func TestCreateNews_MissingImageDiscardsUploads(t *testing.T) {
	store := newFakeNewsStore()
	storage := &testStorage{}
	svc := newNewsServiceForTest(store, storage)

	_, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Flood warning"}, map[string]string{})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.items) != 0 {
		t.Error("no row should be created without an image")
	}
}

func TestCreateNews_DuplicateTitleDiscardsUpload(t *testing.T) {
	store := newFakeNewsStore()
	storage := &testStorage{}
	svc := newNewsServiceForTest(store, storage)

	first, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Flood warning"},
		map[string]string{"image": "uploads/a.jpg"})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err = svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Flood warning"},
		map[string]string{"image": "uploads/b.jpg"})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if !storage.wasDeleted("uploads/b.jpg") {
		t.Error("rejected create must remove its uploaded file")
	}
	if storage.wasDeleted(first.Image) {
		t.Error("existing record's file must not be touched")
	}
}

func TestCreateNews_StoreFailureDiscardsUpload(t *testing.T) {
	store := newFakeNewsStore()
	store.createErr = errors.New("connection reset")
	storage := &testStorage{}
	svc := newNewsServiceForTest(store, storage)

	_, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Flood warning"},
		map[string]string{"image": "uploads/a.jpg"})
	if err == nil {
		t.Fatal("expected error from failing store")
	}
	if !storage.wasDeleted("uploads/a.jpg") {
		t.Error("failed create must remove its uploaded file")
	}
}

func TestUpdateNews_ReplacesImageAfterPersist(t *testing.T) {
	store := newFakeNewsStore()
	storage := &testStorage{}
	svc := newNewsServiceForTest(store, storage)

	created, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Flood warning"},
		map[string]string{"image": "uploads/old.jpg"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateNews(context.Background(), created.ID, &dto.UpdateNewsRequest{},
		map[string]string{"image": "uploads/new.jpg"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Image != "uploads/new.jpg" {
		t.Errorf("Image = %q, want the replacement path", updated.Image)
	}
	if !storage.wasDeleted("uploads/old.jpg") {
		t.Error("old file must be removed once the update persisted")
	}
}

func TestUpdateNews_EchoesRefreshedTimestamp(t *testing.T) {
	store := newFakeNewsStore()
	storage := &testStorage{}
	svc := newNewsServiceForTest(store, storage)

	created, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Flood warning"}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Flood warning lifted"
	updated, err := svc.UpdateNews(context.Background(), created.ID, &dto.UpdateNewsRequest{Title: &title}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want newer than %v from the store", updated.UpdatedAt, created.UpdatedAt)
	}
}

func TestUpdateNews_FailedPersistKeepsOldFile(t *testing.T) {
	store := newFakeNewsStore()
	storage := &testStorage{}
	svc := newNewsServiceForTest(store, storage)

	created, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Flood warning"},
		map[string]string{"image": "uploads/old.jpg"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	store.updateErr = errors.New("connection reset")
	_, err = svc.UpdateNews(context.Background(), created.ID, &dto.UpdateNewsRequest{},
		map[string]string{"image": "uploads/new.jpg"})
	if err == nil {
		t.Fatal("expected error from failing store")
	}
	if storage.wasDeleted("uploads/old.jpg") {
		t.Error("old file must survive a failed update")
	}
	if !storage.wasDeleted("uploads/new.jpg") {
		t.Error("replacement upload must be discarded on a failed update")
	}
}

func TestUpdateNews_TitleConflict(t *testing.T) {
	store := newFakeNewsStore()
	storage := &testStorage{}
	svc := newNewsServiceForTest(store, storage)

	_, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "First"},
		map[string]string{"image": "uploads/a.jpg"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Second"},
		map[string]string{"image": "uploads/b.jpg"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "First"
	_, err = svc.UpdateNews(context.Background(), second.ID, &dto.UpdateNewsRequest{Title: &title}, map[string]string{})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestDeleteNews_RemovesRowThenFile(t *testing.T) {
	store := newFakeNewsStore()
	storage := &testStorage{}
	svc := newNewsServiceForTest(store, storage)

	created, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Flood warning"},
		map[string]string{"image": "uploads/a.jpg"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteNews(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetNewsByID(context.Background(), created.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not-found after delete, got %v", err)
	}
	if !storage.wasDeleted("uploads/a.jpg") {
		t.Error("file cleanup must follow row deletion")
	}
}

func TestDeleteNews_FailedRowDeleteKeepsFile(t *testing.T) {
	store := newFakeNewsStore()
	storage := &testStorage{}
	svc := newNewsServiceForTest(store, storage)

	created, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Flood warning"},
		map[string]string{"image": "uploads/a.jpg"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	store.deleteErr = errors.New("connection reset")
	if err := svc.DeleteNews(context.Background(), created.ID); err == nil {
		t.Fatal("expected error from failing store")
	}
	if storage.wasDeleted("uploads/a.jpg") {
		t.Error("file must survive when the row delete failed")
	}
}

func TestDeleteNews_MissingRecord(t *testing.T) {
	svc := newNewsServiceForTest(newFakeNewsStore(), &testStorage{})

	if err := svc.DeleteNews(context.Background(), 999); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
