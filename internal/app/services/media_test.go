package services

import (
	"mime/multipart"
	"sync"
)

// testStorage records deletions so tests can assert on the media lifecycle
// without touching disk.
type testStorage struct {
	mu      sync.Mutex
	deleted []string
}

func (s *testStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return "", nil
}

func (s *testStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	return "", nil
}

func (s *testStorage) DeleteFile(filePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, filePath)
	return nil
}

func (s *testStorage) GetFullPath(fileURL string) string { return fileURL }

func (s *testStorage) deletions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.deleted))
	copy(out, s.deleted)
	return out
}

func (s *testStorage) wasDeleted(path string) bool {
	for _, p := range s.deletions() {
		if p == path {
			return true
		}
	}
	return false
}
