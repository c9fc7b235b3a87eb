package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations.
// Services depend on this interface so tests can substitute a fake store.
type FileStorage interface {
	// SaveFile saves a file and returns the accessible path it was stored under
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath lets you specify a subdirectory for storing the file
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage. Deleting a path that is already
	// gone is not an error.
	DeleteFile(filePath string) error

	// GetFullPath returns the full filesystem path for a given stored path
	GetFullPath(fileURL string) string
}
