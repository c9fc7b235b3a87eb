package services

import (
	"context"
	"errors"
	"testing"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/keylock"
)

type fakeEPaperStore struct {
	items     map[int64]*models.EPaper
	nextID    int64
	updateErr error
}

func newFakeEPaperStore() *fakeEPaperStore {
	return &fakeEPaperStore{items: make(map[int64]*models.EPaper)}
}

func (f *fakeEPaperStore) Create(_ context.Context, e *models.EPaper) error {
	f.nextID++
	e.ID = f.nextID
	copied := *e
	f.items[e.ID] = &copied
	return nil
}

func (f *fakeEPaperStore) GetByID(_ context.Context, id int64) (*models.EPaper, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrEPaperNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEPaperStore) FindByName(_ context.Context, name string) (*models.EPaper, error) {
	for _, e := range f.items {
		if e.Name == name {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeEPaperStore) Update(_ context.Context, e *models.EPaper) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.items[e.ID]; !ok {
		return apperrors.ErrEPaperNotFound
	}
	copied := *e
	f.items[e.ID] = &copied
	return nil
}

func (f *fakeEPaperStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrEPaperNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeEPaperStore) GetAll(_ context.Context) ([]*models.EPaper, error) {
	out := make([]*models.EPaper, 0, len(f.items))
	for _, e := range f.items {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeEPaperStore) List(_ context.Context, _ string, page, size int) ([]*models.EPaper, dto.PaginationInfo, error) {
	items, _ := f.GetAll(context.Background())
	return items, dto.PaginationInfo{CurrentPage: page, PageSize: size, TotalItems: int64(len(items)), TotalPages: 1}, nil
}

func TestCreateEPaper_RequiresBothFiles(t *testing.T) {
	storage := &testStorage{}
	svc := NewEPaperService(newFakeEPaperStore(), storage, keylock.New())

	_, err := svc.CreateEPaper(context.Background(), &dto.CreateEPaperRequest{Name: "Morning Edition"},
		map[string]string{"media": "uploads/cover.jpg"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error for missing pdf, got %v", err)
	}
	if !storage.wasDeleted("uploads/cover.jpg") {
		t.Error("partial upload pair must be discarded in full")
	}
}

func TestCreateEPaper_Success(t *testing.T) {
	storage := &testStorage{}
	svc := NewEPaperService(newFakeEPaperStore(), storage, keylock.New())

	epaper, err := svc.CreateEPaper(context.Background(), &dto.CreateEPaperRequest{Name: "Morning Edition"},
		map[string]string{"media": "uploads/cover.jpg", "pdf": "uploads/edition.pdf"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if epaper.Media != "uploads/cover.jpg" || epaper.PDF != "uploads/edition.pdf" {
		t.Errorf("unexpected media fields: %+v", epaper)
	}
	if len(storage.deletions()) != 0 {
		t.Errorf("nothing should be deleted on success, got %v", storage.deletions())
	}
}

func TestUpdateEPaper_ReplacesFilesIndependently(t *testing.T) {
	store := newFakeEPaperStore()
	storage := &testStorage{}
	svc := NewEPaperService(store, storage, keylock.New())

	created, err := svc.CreateEPaper(context.Background(), &dto.CreateEPaperRequest{Name: "Morning Edition"},
		map[string]string{"media": "uploads/cover.jpg", "pdf": "uploads/edition.pdf"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateEPaper(context.Background(), created.ID, &dto.UpdateEPaperRequest{},
		map[string]string{"pdf": "uploads/edition-v2.pdf"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PDF != "uploads/edition-v2.pdf" {
		t.Errorf("PDF = %q, want replacement", updated.PDF)
	}
	if updated.Media != "uploads/cover.jpg" {
		t.Errorf("Media = %q, must be untouched", updated.Media)
	}
	if !storage.wasDeleted("uploads/edition.pdf") {
		t.Error("old pdf must be removed after the update persisted")
	}
	if storage.wasDeleted("uploads/cover.jpg") {
		t.Error("cover must not be removed when only the pdf was replaced")
	}
}

func TestUpdateEPaper_FailedPersistKeepsBothOldFiles(t *testing.T) {
	store := newFakeEPaperStore()
	storage := &testStorage{}
	svc := NewEPaperService(store, storage, keylock.New())

	created, err := svc.CreateEPaper(context.Background(), &dto.CreateEPaperRequest{Name: "Morning Edition"},
		map[string]string{"media": "uploads/cover.jpg", "pdf": "uploads/edition.pdf"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	store.updateErr = errors.New("connection reset")
	_, err = svc.UpdateEPaper(context.Background(), created.ID, &dto.UpdateEPaperRequest{},
		map[string]string{"media": "uploads/cover-v2.jpg", "pdf": "uploads/edition-v2.pdf"})
	if err == nil {
		t.Fatal("expected error from failing store")
	}
	if storage.wasDeleted("uploads/cover.jpg") || storage.wasDeleted("uploads/edition.pdf") {
		t.Error("old files must survive a failed update")
	}
	if !storage.wasDeleted("uploads/cover-v2.jpg") || !storage.wasDeleted("uploads/edition-v2.pdf") {
		t.Error("replacement uploads must be discarded on a failed update")
	}
}

func TestDeleteEPaper_RemovesBothFiles(t *testing.T) {
	store := newFakeEPaperStore()
	storage := &testStorage{}
	svc := NewEPaperService(store, storage, keylock.New())

	created, err := svc.CreateEPaper(context.Background(), &dto.CreateEPaperRequest{Name: "Morning Edition"},
		map[string]string{"media": "uploads/cover.jpg", "pdf": "uploads/edition.pdf"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteEPaper(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !storage.wasDeleted("uploads/cover.jpg") || !storage.wasDeleted("uploads/edition.pdf") {
		t.Errorf("both files must be cleaned up, deleted: %v", storage.deletions())
	}
}
