package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"snp-mealhub/internal/core/domain"
)

// FileStore is the object-storage capability. The rest of the system only
// depends on this interface; swapping the disk store for a cloud bucket is a
// wiring change.
type FileStore interface {
	Upload(ctx context.Context, path string, data []byte, metadata map[string]string) (string, error)
}

// DiskFileStore stores uploads on the local filesystem, with metadata kept
// in a JSON sidecar next to each file.
type DiskFileStore struct {
	baseDir string
	baseURL string
}

// NewDiskFileStore creates a disk-backed file store
func NewDiskFileStore(baseDir, baseURL string) *DiskFileStore {
	return &DiskFileStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload writes the file under the store's base directory and returns its
// public URL.
func (s *DiskFileStore) Upload(_ context.Context, path string, data []byte, metadata map[string]string) (string, error) {
	clean := filepath.Clean("/" + path)
	if strings.Contains(clean, "..") {
		return "", domain.ErrInvalidInput
	}

	dest := filepath.Join(s.baseDir, clean)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", err
	}

	if len(metadata) > 0 {
		meta, err := json.Marshal(metadata)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(dest+".meta.json", meta, 0o644); err != nil {
			return "", err
		}
	}

	url := fmt.Sprintf("%s%s", s.baseURL, filepath.ToSlash(clean))
	logrus.Debugf("File stored: %s (%d bytes)", url, len(data))
	return url, nil
}
