package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors
	ErrStorage = errors.New("storage error")

	// File errors
	ErrFileIO = errors.New("file i/o error")
)

// Entity not-found errors. Each wraps ErrResourceNotFound so a single
// errors.Is check at the boundary maps all of them to 404.
var (
	ErrCategoryNotFound      = notFound("category not found")
	ErrNewsNotFound          = notFound("news not found")
	ErrBlogNotFound          = notFound("blog not found")
	ErrAdNotFound            = notFound("ad not found")
	ErrLiveNewsNotFound      = notFound("live news not found")
	ErrRSSFeedNotFound       = notFound("rss feed not found")
	ErrCMSPageNotFound       = notFound("cms page not found")
	ErrEPaperNotFound        = notFound("e-paper not found")
	ErrAdvertisementNotFound = notFound("advertisement not found")
	ErrPostNotFound          = notFound("post not found")
	ErrReporterNotFound      = notFound("reporter not found")
	ErrUserNotFound          = notFound("user not found")
	ErrAdminNotFound         = notFound("admin not found")
	ErrSearchLogNotFound     = notFound("search log not found")
)

func notFound(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a new custom error for unique-key collisions
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid input
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewStorageError wraps a durable-store failure, keeping the cause for logs
func NewStorageError(cause error, message string) error {
	return &CustomError{
		Err:     ErrStorage,
		Cause:   cause,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Cause   error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
