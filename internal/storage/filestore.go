package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore persists uploaded binaries and hands back an opaque filename
// reference. The rest of the system only ever stores the reference.
type FileStore interface {
	Save(name string, src io.Reader) (string, error)
}

// LocalStore writes uploads to a directory on disk, prefixing each file
// with the upload time so names never collide.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(name string, src io.Reader) (string, error) {
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(name))

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}
	return filename, nil
}

// Dir returns the directory served statically under /uploads/.
func (s *LocalStore) Dir() string {
	return s.dir
}

func sanitize(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	return name
}
