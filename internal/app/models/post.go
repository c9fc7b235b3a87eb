package models

import "time"

// Post is user-generated content moderated by admins. Image is optional.
type Post struct {
	ID          int64            `json:"id" db:"id"`
	Type        string           `json:"type" db:"type"`
	Description string           `json:"description" db:"description"`
	Status      ModerationStatus `json:"status" db:"status"`
	UserID      int64            `json:"userId" db:"user_id"`
	Image       string           `json:"image" db:"image"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time        `json:"updatedAt" db:"updated_at"`
}

// PostView records one user viewing a post.
type PostView struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// PostReaction is one user's like or dislike on a post. A user has at most
// one row per post; toggling the same reaction removes it, toggling the
// other one replaces it. Counts are derived by query, never stored.
type PostReaction struct {
	ID        int64        `json:"id" db:"id"`
	PostID    int64        `json:"postId" db:"post_id"`
	UserID    int64        `json:"userId" db:"user_id"`
	Reaction  ReactionType `json:"reaction" db:"reaction"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
}
