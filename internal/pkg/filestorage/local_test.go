package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func multipartFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}

	files := req.MultipartForm.File[field]
	if len(files) != 1 {
		t.Fatalf("expected 1 file for field %q, got %d", field, len(files))
	}
	return files[0]
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	header := multipartFileHeader(t, "image", "cover.jpg", "jpeg-bytes")
	path, err := storage.SaveFile(header)
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if path == "" {
		t.Fatal("expected a stored path, got empty string")
	}
	if filepath.Ext(path) != ".jpg" {
		t.Errorf("expected original extension preserved, got %q", path)
	}

	physical := storage.GetFullPath(path)
	data, err := os.ReadFile(physical)
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("stored content = %q, want %q", data, "jpeg-bytes")
	}

	if err := storage.DeleteFile(path); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if _, err := os.Stat(physical); !os.IsNotExist(err) {
		t.Error("expected file to be removed from disk")
	}
}

func TestLocalStorage_SaveGeneratesUniqueNames(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	first, err := storage.SaveFile(multipartFileHeader(t, "image", "same.png", "a"))
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	second, err := storage.SaveFile(multipartFileHeader(t, "image", "same.png", "b"))
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct stored names for the same filename, both were %q", first)
	}
}

func TestLocalStorage_BaseURLPrefix(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	path, err := storage.SaveFile(multipartFileHeader(t, "pdf", "edition.pdf", "%PDF-1.4"))
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if !strings.HasPrefix(path, "http://localhost:8080/uploads/") {
		t.Errorf("expected stored path under the base URL, got %q", path)
	}
}

func TestLocalStorage_DeleteMissingIsNoError(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if err := storage.DeleteFile("uploads/never-existed.jpg"); err != nil {
		t.Fatalf("expected deleting a missing file to succeed, got %v", err)
	}
	if err := storage.DeleteFile(""); err != nil {
		t.Fatalf("expected deleting an empty path to succeed, got %v", err)
	}
}
