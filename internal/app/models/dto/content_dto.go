package dto

import "time"

// ListQuery carries the shared page/limit/query listing parameters.
type ListQuery struct {
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=10"`
	Query string `form:"query"`
}

// --- Category ---

type CreateCategoryRequest struct {
	Name         string `form:"name" binding:"required,min=2,max=100"`
	MainCategory string `form:"mainCategory" binding:"required,min=2,max=100"`
}

type UpdateCategoryRequest struct {
	Name         *string `form:"name" binding:"omitempty,min=2,max=100"`
	MainCategory *string `form:"mainCategory" binding:"omitempty,min=2,max=100"`
}

// --- News ---

type CreateNewsRequest struct {
	Title string `form:"title" binding:"required,min=2,max=255"`
}

type UpdateNewsRequest struct {
	Title *string `form:"title" binding:"omitempty,min=2,max=255"`
}

// --- Blog ---

type CreateBlogRequest struct {
	Title           string     `form:"title" binding:"required,min=2,max=255"`
	Visibility      string     `form:"visibility" binding:"required"`
	PublishDateTime *time.Time `form:"publishDateTime" time_format:"2006-01-02T15:04:05Z07:00"`
	Status          string     `form:"status" binding:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
	Type            string     `form:"type" binding:"required"`
}

type UpdateBlogRequest struct {
	Title           *string    `form:"title" binding:"omitempty,min=2,max=255"`
	Visibility      *string    `form:"visibility"`
	PublishDateTime *time.Time `form:"publishDateTime" time_format:"2006-01-02T15:04:05Z07:00"`
	Status          *string    `form:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Type            *string    `form:"type"`
}

// --- Ad ---

type CreateAdRequest struct {
	Title     string `form:"title" binding:"required,min=2,max=255"`
	Timestamp string `form:"timestamp" binding:"required"`
	Frequency string `form:"frequency" binding:"required"`
}

type UpdateAdRequest struct {
	Title     *string `form:"title" binding:"omitempty,min=2,max=255"`
	Timestamp *string `form:"timestamp"`
	Frequency *string `form:"frequency"`
}

// --- LiveNews ---

// Live news media is an external stream URL carried in the body; there is no
// file upload on this entity.
type CreateLiveNewsRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=255"`
	URI   string `json:"uri" binding:"required,url"`
	Media string `json:"media" binding:"omitempty,url"`
}

type UpdateLiveNewsRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=255"`
	URI   *string `json:"uri" binding:"omitempty,url"`
	Media *string `json:"media" binding:"omitempty,url"`
}

// --- RSSFeed ---

type CreateRSSFeedRequest struct {
	Name     string `form:"name" binding:"required,min=2,max=255"`
	Title    string `form:"title" binding:"required,min=2,max=255"`
	URL      string `form:"url" binding:"required,url"`
	Category string `form:"category" binding:"required"`
	Language string `form:"language" binding:"required"`
}

type UpdateRSSFeedRequest struct {
	Name     *string `form:"name" binding:"omitempty,min=2,max=255"`
	Title    *string `form:"title" binding:"omitempty,min=2,max=255"`
	URL      *string `form:"url" binding:"omitempty,url"`
	Category *string `form:"category"`
	Language *string `form:"language"`
}

// --- CMSPage ---

type CreateCMSPageRequest struct {
	Title       string `form:"title" binding:"required,min=2,max=255"`
	Description string `form:"description" binding:"required"`
}

type UpdateCMSPageRequest struct {
	Title       *string `form:"title" binding:"omitempty,min=2,max=255"`
	Description *string `form:"description"`
}

// --- EPaper ---

type CreateEPaperRequest struct {
	Name string `form:"name" binding:"required,min=2,max=255"`
}

type UpdateEPaperRequest struct {
	Name *string `form:"name" binding:"omitempty,min=2,max=255"`
}

// --- Advertisement ---

type CreateAdvertisementRequest struct {
	AdvertisementType string `form:"advertisementType" binding:"required"`
	BannerType        string `form:"bannerType"`
	Content           string `form:"content"`
	PostType          string `form:"postType" binding:"required"`
	Status            string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

type UpdateAdvertisementRequest struct {
	AdvertisementType *string `form:"advertisementType"`
	BannerType        *string `form:"bannerType"`
	Content           *string `form:"content"`
	PostType          *string `form:"postType"`
	Status            *string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// --- SearchLog ---

type CreateSearchLogRequest struct {
	Term       string    `json:"searchLog" binding:"required,min=1,max=255"`
	Count      int       `json:"count" binding:"required,min=1"`
	SearchedAt time.Time `json:"searchDate" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type UpdateSearchLogRequest struct {
	Term       *string    `json:"searchLog" binding:"omitempty,min=1,max=255"`
	Count      *int       `json:"count" binding:"omitempty,min=1"`
	SearchedAt *time.Time `json:"searchDate" time_format:"2006-01-02T15:04:05Z07:00"`
}
