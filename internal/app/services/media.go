package services

import (
	"fmt"

	"github.com/atlasmedia/newsdesk/internal/pkg/filestorage"
	"github.com/atlasmedia/newsdesk/internal/pkg/logger"
)

// discardUploads removes files that were saved for a request whose mutation
// did not persist. Best effort: a failed removal is logged and never masks
// the error that triggered the cleanup.
func discardUploads(storage filestorage.FileStorage, uploads map[string]string) {
	for field, path := range uploads {
		if path == "" {
			continue
		}
		if err := storage.DeleteFile(path); err != nil {
			logger.Warn().Err(err).Str("field", field).Str("path", path).Msg("Failed to remove orphaned upload")
		}
	}
}

// removeStoredFile deletes a media file that belonged to a persisted record.
// Callers invoke it only after the row change has been committed; a leftover
// file is tolerable, a dangling reference is not.
func removeStoredFile(storage filestorage.FileStorage, path string) {
	if path == "" {
		return
	}
	if err := storage.DeleteFile(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to remove stored media file")
	}
}

// lockKey builds the per-record key used to serialize update/delete on the
// same row, so concurrent mutations cannot interleave their file operations.
func lockKey(entity string, id int64) string {
	return fmt.Sprintf("%s:%d", entity, id)
}
