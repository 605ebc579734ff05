// Package filesystem implements storage adapters using the local filesystem.
package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/pkg/checksum"
)

// BlobStorage lays pulled blobs out as <root>/<name>_<tag>/<file>.
type BlobStorage struct {
	rootDir string
	log     *log.Logger
}

// NewBlobStorage creates a new filesystem blob storage instance.
func NewBlobStorage(rootDir string, logger *log.Logger) (*BlobStorage, error) {
	if err := os.MkdirAll(rootDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", rootDir, err)
	}

	logger = logger.With("adapter", "filesystem")
	logger.Debug("blob storage initialized", "root_dir", rootDir)

	return &BlobStorage{
		rootDir: rootDir,
		log:     logger,
	}, nil
}

// RootDir returns the directory holding every model directory.
func (s *BlobStorage) RootDir() string {
	return s.rootDir
}

// ModelDir returns the directory holding the variant's blobs.
func (s *BlobStorage) ModelDir(ref domain.Reference) string {
	return filepath.Join(s.rootDir, ref.DirName())
}

// Inspect reports whether the file at path is missing, an interrupted
// download placeholder, or a complete file that does or does not match
// hexDigest.
func (s *BlobStorage) Inspect(path, hexDigest string) (domain.BlobState, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.BlobMissing, nil
	}
	if err != nil {
		return domain.BlobMissing, fmt.Errorf("failed to stat blob: %w", err)
	}
	if info.IsDir() {
		return domain.BlobCorrupt, nil
	}
	if info.Size() == 0 {
		if _, err := os.Stat(path + ".part"); err == nil {
			return domain.BlobPlaceholder, nil
		}
	}

	ok, err := checksum.File(path, hexDigest)
	if err != nil {
		if errors.Is(err, checksum.ErrDecode) {
			return domain.BlobMissing, err
		}
		s.log.Warn("blob unreadable, treating as corrupt", "path", path, "error", err)
		return domain.BlobCorrupt, nil
	}
	if !ok {
		return domain.BlobCorrupt, nil
	}
	return domain.BlobValid, nil
}

// Discard removes a blob file that failed verification.
func (s *BlobStorage) Discard(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove blob %s: %w", path, err)
	}
	s.log.Info("corrupt blob removed", "path", path)
	return nil
}
