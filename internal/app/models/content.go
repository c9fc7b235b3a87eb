package models

import "time"

// Category groups news items under a main category / sub name pair.
// Image is a media reference field: the stored path of an uploaded file.
type Category struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	MainCategory string    `json:"mainCategory" db:"main_category"`
	Image        string    `json:"image" db:"image"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// News is a headline entry with a required cover image.
type News struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Blog is an editorial entry with visibility and scheduling metadata.
type Blog struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Visibility      string     `json:"visibility" db:"visibility"`
	PublishDateTime *time.Time `json:"publishDateTime" db:"publish_date_time"`
	Status          BlogStatus `json:"status" db:"status"`
	Type            string     `json:"type" db:"type"`
	Image           string     `json:"image" db:"image"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// Ad is a rotating promo slot. Media is required on create.
type Ad struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Timestamp string    `json:"timestamp" db:"timestamp"`
	Frequency string    `json:"frequency" db:"frequency"`
	Media     string    `json:"media" db:"media"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// LiveNews points at an external stream. Media here is a URL supplied in the
// request body, not an uploaded file, so no lifecycle coupling applies.
type LiveNews struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	URI       string    `json:"uri" db:"uri"`
	Media     string    `json:"media" db:"media"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// RSSFeed is an external feed registration with a cover image.
type RSSFeed struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Title     string    `json:"title" db:"title"`
	URL       string    `json:"url" db:"url"`
	Category  string    `json:"category" db:"category"`
	Language  string    `json:"language" db:"language"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CMSPage is a static content page with attached media.
type CMSPage struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Media       string    `json:"media" db:"media"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// EPaper carries two media reference fields: a cover image and the pdf.
type EPaper struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Media     string    `json:"media" db:"media"`
	PDF       string    `json:"pdf" db:"pdf"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Advertisement is a user-submitted ad pending moderation. Image is optional.
type Advertisement struct {
	ID                int64            `json:"id" db:"id"`
	AdvertisementType string           `json:"advertisementType" db:"advertisement_type"`
	BannerType        string           `json:"bannerType" db:"banner_type"`
	Content           string           `json:"content" db:"content"`
	PostType          string           `json:"postType" db:"post_type"`
	Status            ModerationStatus `json:"status" db:"status"`
	Image             string           `json:"image" db:"image"`
	CreatedAt         time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time        `json:"updatedAt" db:"updated_at"`
}

// SearchLog aggregates search terms for analytics.
type SearchLog struct {
	ID         int64     `json:"id" db:"id"`
	Term       string    `json:"term" db:"term"`
	Count      int       `json:"count" db:"count"`
	SearchedAt time.Time `json:"searchedAt" db:"searched_at"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
