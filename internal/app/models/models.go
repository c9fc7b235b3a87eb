package models

// RoleType defines the account role carried in tokens
type RoleType string

const (
	RoleAdmin RoleType = "ADMIN"
	RoleUser  RoleType = "USER"
)

// BlogStatus represents the publication state of a blog entry
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "DRAFT"
	BlogStatusPublished BlogStatus = "PUBLISHED"
	BlogStatusArchived  BlogStatus = "ARCHIVED"
)

// ModerationStatus is shared by posts and advertisements
type ModerationStatus string

const (
	ModerationPending   ModerationStatus = "PENDING"
	ModerationPublished ModerationStatus = "PUBLISHED"
	ModerationApproved  ModerationStatus = "APPROVED"
	ModerationRejected  ModerationStatus = "REJECTED"
)

// ReporterStatus represents a reporter application state
type ReporterStatus string

const (
	ReporterWaiting  ReporterStatus = "WAITING"
	ReporterApproved ReporterStatus = "APPROVED"
	ReporterRejected ReporterStatus = "REJECTED"
)

// ReactionType is a post reaction kind
type ReactionType string

const (
	ReactionLike    ReactionType = "LIKE"
	ReactionDislike ReactionType = "DISLIKE"
)
