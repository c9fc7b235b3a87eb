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

type fakePostStore struct {
	posts     map[int64]*models.Post
	views     map[int64]map[int64]bool
	reactions map[int64]map[int64]models.ReactionType
	nextID    int64
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{
		posts:     make(map[int64]*models.Post),
		views:     make(map[int64]map[int64]bool),
		reactions: make(map[int64]map[int64]models.ReactionType),
	}
}

func (f *fakePostStore) Create(_ context.Context, p *models.Post) error {
	f.nextID++
	p.ID = f.nextID
	copied := *p
	f.posts[p.ID] = &copied
	return nil
}

func (f *fakePostStore) GetByID(_ context.Context, id int64) (*dto.PostResponse, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	copied := *p
	resp := &dto.PostResponse{Post: &copied, Views: int64(len(f.views[id]))}
	for _, kind := range f.reactions[id] {
		if kind == models.ReactionLike {
			resp.Likes++
		} else {
			resp.Dislikes++
		}
	}
	return resp, nil
}

func (f *fakePostStore) Update(_ context.Context, p *models.Post) error {
	if _, ok := f.posts[p.ID]; !ok {
		return apperrors.ErrPostNotFound
	}
	copied := *p
	f.posts[p.ID] = &copied
	return nil
}

func (f *fakePostStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return apperrors.ErrPostNotFound
	}
	delete(f.posts, id)
	delete(f.views, id)
	delete(f.reactions, id)
	return nil
}

func (f *fakePostStore) List(_ context.Context, _ string, _ models.ModerationStatus, _ string, page, size int) ([]*dto.PostResponse, dto.PaginationInfo, error) {
	out := make([]*dto.PostResponse, 0, len(f.posts))
	for id := range f.posts {
		resp, _ := f.GetByID(context.Background(), id)
		out = append(out, resp)
	}
	return out, dto.PaginationInfo{CurrentPage: page, PageSize: size, TotalItems: int64(len(out)), TotalPages: 1}, nil
}

func (f *fakePostStore) AddView(_ context.Context, postID, userID int64) error {
	if f.views[postID] == nil {
		f.views[postID] = make(map[int64]bool)
	}
	f.views[postID][userID] = true
	return nil
}

func (f *fakePostStore) GetReaction(_ context.Context, postID, userID int64) (*models.PostReaction, error) {
	kind, ok := f.reactions[postID][userID]
	if !ok {
		return nil, nil
	}
	return &models.PostReaction{PostID: postID, UserID: userID, Reaction: kind}, nil
}

func (f *fakePostStore) SetReaction(_ context.Context, postID, userID int64, reaction models.ReactionType) error {
	if f.reactions[postID] == nil {
		f.reactions[postID] = make(map[int64]models.ReactionType)
	}
	f.reactions[postID][userID] = reaction
	return nil
}

func (f *fakePostStore) RemoveReaction(_ context.Context, postID, userID int64) error {
	delete(f.reactions[postID], userID)
	return nil
}

type fakePostUserStore struct {
	known map[int64]bool
}

func (f *fakePostUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if !f.known[id] {
		return nil, apperrors.ErrUserNotFound
	}
	return &models.User{ID: id}, nil
}

func newPostService(store *fakePostStore, storage *testStorage, userIDs ...int64) PostService {
	users := &fakePostUserStore{known: make(map[int64]bool)}
	for _, id := range userIDs {
		users.known[id] = true
	}
	return NewPostService(store, users, storage, keylock.New())
}

func TestCreatePost_DefaultsToPending(t *testing.T) {
	store := newFakePostStore()
	svc := newPostService(store, &testStorage{}, 7)

	post, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Type:        "VIDEO",
		Description: "street interview",
		UserID:      7,
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.Status != models.ModerationPending {
		t.Errorf("status = %q, want PENDING default", post.Status)
	}
}

func TestCreatePost_UnknownUserDiscardsUpload(t *testing.T) {
	storage := &testStorage{}
	svc := newPostService(newFakePostStore(), storage)

	_, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Type:        "VIDEO",
		Description: "street interview",
		UserID:      99,
	}, map[string]string{"image": "uploads/frame.jpg"})
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
	if !storage.wasDeleted("uploads/frame.jpg") {
		t.Error("upload must be discarded when the owner does not exist")
	}
}

func TestUpdatePostStatus(t *testing.T) {
	store := newFakePostStore()
	svc := newPostService(store, &testStorage{}, 7)

	post, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Type:        "VIDEO",
		Description: "street interview",
		UserID:      7,
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdatePostStatus(context.Background(), post.ID, "PUBLISHED")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != models.ModerationPublished {
		t.Errorf("status = %q, want PUBLISHED", updated.Status)
	}
	if store.posts[post.ID].Status != models.ModerationPublished {
		t.Error("status change must be persisted")
	}
}

func TestAddView_DistinctUsersOnly(t *testing.T) {
	store := newFakePostStore()
	svc := newPostService(store, &testStorage{}, 7)

	post, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Type:        "VIDEO",
		Description: "street interview",
		UserID:      7,
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := svc.AddView(context.Background(), post.ID, 7); err != nil {
			t.Fatalf("add view: %v", err)
		}
	}
	got, err := svc.GetPostByID(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Views != 1 {
		t.Errorf("views = %d, want 1 for a repeated viewer", got.Views)
	}
}

func TestAddView_MissingPost(t *testing.T) {
	svc := newPostService(newFakePostStore(), &testStorage{}, 7)

	err := svc.AddView(context.Background(), 42, 7)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestToggleReaction(t *testing.T) {
	store := newFakePostStore()
	svc := newPostService(store, &testStorage{}, 7)

	post, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Type:        "VIDEO",
		Description: "street interview",
		UserID:      7,
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.ToggleReaction(context.Background(), post.ID, 7, "LIKE")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if got.Likes != 1 || got.Dislikes != 0 {
		t.Errorf("after like: likes=%d dislikes=%d", got.Likes, got.Dislikes)
	}

	got, err = svc.ToggleReaction(context.Background(), post.ID, 7, "DISLIKE")
	if err != nil {
		t.Fatalf("switch toggle: %v", err)
	}
	if got.Likes != 0 || got.Dislikes != 1 {
		t.Errorf("after switch: likes=%d dislikes=%d", got.Likes, got.Dislikes)
	}

	got, err = svc.ToggleReaction(context.Background(), post.ID, 7, "DISLIKE")
	if err != nil {
		t.Fatalf("repeat toggle: %v", err)
	}
	if got.Likes != 0 || got.Dislikes != 0 {
		t.Errorf("repeating a reaction must remove it: likes=%d dislikes=%d", got.Likes, got.Dislikes)
	}
}

func TestDeletePost_RemovesRowThenImage(t *testing.T) {
	store := newFakePostStore()
	storage := &testStorage{}
	svc := newPostService(store, storage, 7)

	post, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Type:        "VIDEO",
		Description: "street interview",
		UserID:      7,
	}, map[string]string{"image": "uploads/frame.jpg"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeletePost(context.Background(), post.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetPostByID(context.Background(), post.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found after delete, got %v", err)
	}
	if !storage.wasDeleted("uploads/frame.jpg") {
		t.Error("image must be cleaned up after the row is gone")
	}
}
