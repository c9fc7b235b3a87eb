package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/pkg/filestorage"
	"github.com/atlasmedia/newsdesk/internal/pkg/logger"
)

// Upload kinds accepted by the middleware. The kind is checked against the
// sniffed content of the file, never the client-sent content type.
const (
	UploadKindImage = "image"
	UploadKindMedia = "media" // image or video
	UploadKindPDF   = "pdf"
)

// UploadField describes one expected multipart file field.
type UploadField struct {
	Name     string
	Required bool
	Kind     string
	MaxSize  int64
}

const uploadedFilesKey = "uploadedFiles"

// UploadMiddleware validates and stores multipart file uploads before the
// handler runs. Saved paths are exposed to the handler via UploadedFiles; any
// rejection removes the files that were already written for the request.
type UploadMiddleware struct {
	storage filestorage.FileStorage
}

// NewUploadMiddleware creates a new UploadMiddleware
func NewUploadMiddleware(storage filestorage.FileStorage) *UploadMiddleware {
	return &UploadMiddleware{storage: storage}
}

// Files accepts the given multipart fields, sniffing each file's real content
// type and enforcing the per-field size cap before saving to storage.
func (m *UploadMiddleware) Files(fields ...UploadField) gin.HandlerFunc {
	return func(c *gin.Context) {
		saved := make(map[string]string)

		fail := func(status int, message string) {
			for field, path := range saved {
				if err := m.storage.DeleteFile(path); err != nil {
					logger.Warn().Err(err).Str("field", field).Str("path", path).Msg("Failed to remove rejected upload")
				}
			}
			c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, message))
		}

		for _, field := range fields {
			fileHeader, err := c.FormFile(field.Name)
			if err != nil {
				// A non-multipart body carries no files at all, which is fine
				// as long as no field is required.
				if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
					if field.Required {
						fail(http.StatusBadRequest, fmt.Sprintf("%s file is required", field.Name))
						return
					}
					continue
				}
				fail(http.StatusBadRequest, "Invalid multipart form")
				return
			}

			if field.MaxSize > 0 && fileHeader.Size > field.MaxSize {
				fail(http.StatusBadRequest, fmt.Sprintf("%s exceeds the maximum allowed size", field.Name))
				return
			}

			src, err := fileHeader.Open()
			if err != nil {
				fail(http.StatusBadRequest, fmt.Sprintf("unable to read %s file", field.Name))
				return
			}
			mtype, err := mimetype.DetectReader(src)
			src.Close()
			if err != nil {
				fail(http.StatusBadRequest, fmt.Sprintf("unable to read %s file", field.Name))
				return
			}

			switch field.Kind {
			case UploadKindImage:
				if !strings.HasPrefix(mtype.String(), "image/") {
					fail(http.StatusBadRequest, fmt.Sprintf("%s must be an image file", field.Name))
					return
				}
			case UploadKindMedia:
				if !strings.HasPrefix(mtype.String(), "image/") && !strings.HasPrefix(mtype.String(), "video/") {
					fail(http.StatusBadRequest, fmt.Sprintf("%s must be an image or video file", field.Name))
					return
				}
			case UploadKindPDF:
				if !mtype.Is("application/pdf") {
					fail(http.StatusBadRequest, fmt.Sprintf("%s must be a pdf file", field.Name))
					return
				}
			}

			path, err := m.storage.SaveFile(fileHeader)
			if err != nil {
				logger.Error().Err(err).Str("field", field.Name).Msg("Failed to store uploaded file")
				fail(http.StatusInternalServerError, "Failed to store uploaded file")
				return
			}
			saved[field.Name] = path
		}

		c.Set(uploadedFilesKey, saved)
		c.Next()
	}
}

// UploadedFiles returns the field name to stored path map saved by Files.
func UploadedFiles(c *gin.Context) map[string]string {
	if v, ok := c.Get(uploadedFilesKey); ok {
		if files, ok := v.(map[string]string); ok {
			return files
		}
	}
	return map[string]string{}
}

// DiscardUploadedFiles removes files saved for a request whose handler could
// not use them, e.g. when body binding failed after the upload step.
func DiscardUploadedFiles(c *gin.Context, storage filestorage.FileStorage) {
	for field, path := range UploadedFiles(c) {
		if err := storage.DeleteFile(path); err != nil {
			logger.Warn().Err(err).Str("field", field).Str("path", path).Msg("Failed to remove unused upload")
		}
	}
}
