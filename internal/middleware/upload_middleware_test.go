package middleware

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

// fakeStorage records saves and deletes without touching disk.
type fakeStorage struct {
	mu      sync.Mutex
	next    int
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return f.SaveFileWithPath(fileHeader, "")
}

func (f *fakeStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.next++
	path := fmt.Sprintf("uploads/stored-%d", f.next)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeStorage) DeleteFile(filePath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, filePath)
	return nil
}

func (f *fakeStorage) GetFullPath(fileURL string) string { return fileURL }

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for field, content := range files {
		part, err := writer.CreateFormFile(field, field+".bin")
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	writer.Close()
	return &body, writer.FormDataContentType()
}

func uploadRouter(storage *fakeStorage, captured *map[string]string, fields ...UploadField) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m := NewUploadMiddleware(storage)
	router.POST("/upload", m.Files(fields...), func(c *gin.Context) {
		*captured = UploadedFiles(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestUploadMiddleware_SavesAcceptedImage(t *testing.T) {
	storage := &fakeStorage{}
	var got map[string]string
	router := uploadRouter(storage, &got, UploadField{Name: "image", Required: true, Kind: UploadKindImage, MaxSize: 1 << 20})

	body, contentType := multipartBody(t, map[string][]byte{"image": pngBytes})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if got["image"] == "" {
		t.Fatal("expected stored path for image field")
	}
	if len(storage.deleted) != 0 {
		t.Errorf("expected no deletions on success, got %v", storage.deleted)
	}
}

func TestUploadMiddleware_MissingRequiredFile(t *testing.T) {
	storage := &fakeStorage{}
	var got map[string]string
	router := uploadRouter(storage, &got, UploadField{Name: "image", Required: true, Kind: UploadKindImage})

	body, contentType := multipartBody(t, map[string][]byte{})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadMiddleware_OptionalFileMayBeOmitted(t *testing.T) {
	storage := &fakeStorage{}
	var got map[string]string
	router := uploadRouter(storage, &got, UploadField{Name: "image", Required: false, Kind: UploadKindImage})

	body, contentType := multipartBody(t, map[string][]byte{})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(got) != 0 {
		t.Errorf("expected no uploads recorded, got %v", got)
	}
}

func TestUploadMiddleware_NonMultipartBodyWithOptionalFields(t *testing.T) {
	storage := &fakeStorage{}
	var got map[string]string
	router := uploadRouter(storage, &got, UploadField{Name: "image", Required: false, Kind: UploadKindImage})

	body := bytes.NewBufferString("title=updated")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if len(got) != 0 {
		t.Errorf("expected no uploads recorded, got %v", got)
	}
}

func TestUploadMiddleware_NonMultipartBodyWithRequiredField(t *testing.T) {
	storage := &fakeStorage{}
	var got map[string]string
	router := uploadRouter(storage, &got, UploadField{Name: "image", Required: true, Kind: UploadKindImage})

	body := bytes.NewBufferString("title=updated")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadMiddleware_RejectsWrongContent(t *testing.T) {
	storage := &fakeStorage{}
	var got map[string]string
	router := uploadRouter(storage, &got, UploadField{Name: "pdf", Required: true, Kind: UploadKindPDF})

	// Plain text pretending to be a pdf, sniffed by content not filename.
	body, contentType := multipartBody(t, map[string][]byte{"pdf": []byte("just text")})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(storage.saved) != 0 {
		t.Errorf("expected nothing saved for rejected content, got %v", storage.saved)
	}
}

func TestUploadMiddleware_RejectsOversizeFile(t *testing.T) {
	storage := &fakeStorage{}
	var got map[string]string
	router := uploadRouter(storage, &got, UploadField{Name: "image", Required: true, Kind: UploadKindImage, MaxSize: 4})

	body, contentType := multipartBody(t, map[string][]byte{"image": pngBytes})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadMiddleware_RejectionCleansUpEarliersaves(t *testing.T) {
	storage := &fakeStorage{}
	var got map[string]string
	router := uploadRouter(storage, &got,
		UploadField{Name: "media", Required: true, Kind: UploadKindMedia},
		UploadField{Name: "pdf", Required: true, Kind: UploadKindPDF},
	)

	// Valid image then an invalid pdf: the saved image must be removed again.
	body, contentType := multipartBody(t, map[string][]byte{
		"media": pngBytes,
		"pdf":   []byte("not a pdf"),
	})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(storage.saved) != len(storage.deleted) {
		t.Errorf("every saved file must be deleted on rejection: saved %v, deleted %v",
			storage.saved, storage.deleted)
	}
}
