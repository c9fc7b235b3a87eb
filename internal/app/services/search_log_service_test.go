package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/atlasmedia/newsdesk/internal/app/models"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
)

type fakeSearchLogStore struct {
	mu        sync.Mutex
	items     map[int64]*models.SearchLog
	nextID    int64
	upsertErr error
}

func newFakeSearchLogStore() *fakeSearchLogStore {
	return &fakeSearchLogStore{items: make(map[int64]*models.SearchLog)}
}

func (f *fakeSearchLogStore) Upsert(_ context.Context, s *models.SearchLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for _, existing := range f.items {
		if existing.Term == s.Term {
			existing.Count += s.Count
			existing.SearchedAt = s.SearchedAt
			s.ID = existing.ID
			s.Count = existing.Count
			return nil
		}
	}
	f.nextID++
	s.ID = f.nextID
	copied := *s
	f.items[s.ID] = &copied
	return nil
}

func (f *fakeSearchLogStore) GetByID(_ context.Context, id int64) (*models.SearchLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrSearchLogNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSearchLogStore) FindByTerm(_ context.Context, term string) (*models.SearchLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.items {
		if s.Term == term {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSearchLogStore) Update(_ context.Context, s *models.SearchLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[s.ID]; !ok {
		return apperrors.ErrSearchLogNotFound
	}
	copied := *s
	f.items[s.ID] = &copied
	return nil
}

func (f *fakeSearchLogStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrSearchLogNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeSearchLogStore) List(_ context.Context, _ string, page, size int) ([]*models.SearchLog, dto.PaginationInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.SearchLog, 0, len(f.items))
	for _, s := range f.items {
		copied := *s
		out = append(out, &copied)
	}
	return out, dto.PaginationInfo{CurrentPage: page, PageSize: size, TotalItems: int64(len(out)), TotalPages: 1}, nil
}

func TestRecordSearch_NewTerm(t *testing.T) {
	store := newFakeSearchLogStore()
	svc := NewSearchLogService(store)

	when := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	entry, err := svc.RecordSearch(context.Background(), &dto.CreateSearchLogRequest{
		Term: "election results", Count: 1, SearchedAt: when,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if entry.ID == 0 {
		t.Error("new term must be assigned an id")
	}
	if entry.Count != 1 || !entry.SearchedAt.Equal(when) {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestRecordSearch_RepeatedTermAccumulates(t *testing.T) {
	store := newFakeSearchLogStore()
	svc := NewSearchLogService(store)

	first := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)
	if _, err := svc.RecordSearch(context.Background(), &dto.CreateSearchLogRequest{
		Term: "election results", Count: 1, SearchedAt: first,
	}); err != nil {
		t.Fatalf("first record: %v", err)
	}
	entry, err := svc.RecordSearch(context.Background(), &dto.CreateSearchLogRequest{
		Term: "election results", Count: 3, SearchedAt: second,
	})
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if entry.Count != 4 {
		t.Errorf("count = %d, want accumulated 4", entry.Count)
	}
	if !entry.SearchedAt.Equal(second) {
		t.Errorf("searchedAt = %v, want refreshed to %v", entry.SearchedAt, second)
	}
	if len(store.items) != 1 {
		t.Errorf("store holds %d rows, want 1", len(store.items))
	}
}

func TestRecordSearch_ConcurrentSearchesAllCounted(t *testing.T) {
	store := newFakeSearchLogStore()
	svc := NewSearchLogService(store)

	const searches = 50
	var wg sync.WaitGroup
	for i := 0; i < searches; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordSearch(context.Background(), &dto.CreateSearchLogRequest{
				Term: "flood alert", Count: 1, SearchedAt: time.Now(),
			})
			if err != nil {
				t.Errorf("record: %v", err)
			}
		}()
	}
	wg.Wait()

	entry, err := store.FindByTerm(context.Background(), "flood alert")
	if err != nil || entry == nil {
		t.Fatalf("find: %v, %v", entry, err)
	}
	if entry.Count != searches {
		t.Errorf("count = %d, want %d, increments were lost", entry.Count, searches)
	}
	if len(store.items) != 1 {
		t.Errorf("store holds %d rows, want 1", len(store.items))
	}
}

func TestRecordSearch_StoreFailure(t *testing.T) {
	store := newFakeSearchLogStore()
	store.upsertErr = errors.New("connection reset")
	svc := NewSearchLogService(store)

	_, err := svc.RecordSearch(context.Background(), &dto.CreateSearchLogRequest{
		Term: "cricket", Count: 1, SearchedAt: time.Now(),
	})
	if !errors.Is(err, apperrors.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestUpdateSearchLog_TermConflict(t *testing.T) {
	store := newFakeSearchLogStore()
	svc := NewSearchLogService(store)

	a, err := svc.RecordSearch(context.Background(), &dto.CreateSearchLogRequest{Term: "cricket", Count: 1, SearchedAt: time.Now()})
	if err != nil {
		t.Fatalf("record a: %v", err)
	}
	if _, err := svc.RecordSearch(context.Background(), &dto.CreateSearchLogRequest{Term: "football", Count: 1, SearchedAt: time.Now()}); err != nil {
		t.Fatalf("record b: %v", err)
	}

	term := "football"
	_, err = svc.UpdateSearchLog(context.Background(), a.ID, &dto.UpdateSearchLogRequest{Term: &term})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteSearchLog_Missing(t *testing.T) {
	svc := NewSearchLogService(newFakeSearchLogStore())

	err := svc.DeleteSearchLog(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
