package dto

import "github.com/atlasmedia/newsdesk/internal/app/models"

type CreatePostRequest struct {
	Type        string `form:"type" binding:"required"`
	Description string `form:"description" binding:"required"`
	Status      string `form:"status" binding:"omitempty,oneof=PENDING PUBLISHED REJECTED"`
	UserID      int64  `form:"userId" binding:"required,min=1"`
}

type UpdatePostRequest struct {
	Type        *string `form:"type"`
	Description *string `form:"description"`
	Status      *string `form:"status" binding:"omitempty,oneof=PENDING PUBLISHED REJECTED"`
}

// UpdatePostStatusRequest is the admin moderation action.
type UpdatePostStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING PUBLISHED REJECTED"`
}

// ToggleReactionRequest toggles the calling user's like/dislike on a post.
type ToggleReactionRequest struct {
	Reaction string `json:"reaction" binding:"required,oneof=LIKE DISLIKE"`
}

// PostResponse is a post enriched with derived counters.
type PostResponse struct {
	*models.Post
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}
