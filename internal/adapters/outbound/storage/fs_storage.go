package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"video-metadata-service/internal/core/ports"
)

type fsStorage struct {
	uploadDir string
}

func NewFSStorage(uploadDir string) ports.Storage {
	storage := &fsStorage{
		uploadDir: uploadDir,
	}
	os.MkdirAll(storage.uploadDir, 0755)
	return storage
}

// SaveUpload streams data to a fresh file under the upload dir and
// reports its final path and size. The stored name is prefixed with a
// nanosecond timestamp so repeated uploads of the same filename never
// collide.
func (s *fsStorage) SaveUpload(filename string, data io.Reader) (string, int64, error) {
	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(filename))
	path := filepath.Join(s.uploadDir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	defer out.Close()

	size, err := io.Copy(out, data)
	if err != nil {
		os.Remove(path)
		return "", 0, err
	}
	return path, size, nil
}

func (s *fsStorage) DeleteFile(path string) error {
	return os.Remove(path)
}
