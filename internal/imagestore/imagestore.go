package imagestore

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"property-portfolio/internal/config"

	"github.com/google/uuid"
)

// ErrDisallowedExtension is returned by Save for files whose extension is
// not in the configured allow-list.
var ErrDisallowedExtension = fmt.Errorf("file extension not allowed")

// ErrFileTooLarge is returned by Save for files above the configured size limit.
var ErrFileTooLarge = fmt.Errorf("file exceeds maximum size")

// Store persists image files on disk. The original upload name is discarded
// except for its extension; references handed back are root-relative paths
// under the configured base path (e.g. /images/owners/<uuid>.jpg).
type Store struct {
	uploadPath  string
	basePath    string
	allowedExts []string
	maxBytes    int64
}

// New creates an image store from configuration
func New(cfg config.ImagesConfig) *Store {
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "/images"
	}
	return &Store{
		uploadPath:  cfg.UploadPath,
		basePath:    basePath,
		allowedExts: cfg.AllowedExtensions,
		maxBytes:    cfg.MaxFileSizeBytes(),
	}
}

// Save validates and persists an uploaded file under the given category
// sub-directory ("" for none) and returns its reference path.
func (s *Store) Save(file *multipart.FileHeader, category string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !s.extensionAllowed(ext) {
		return "", fmt.Errorf("%w: %s (allowed: %s)", ErrDisallowedExtension, ext, strings.Join(s.allowedExts, ", "))
	}

	if file.Size > s.maxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, s.maxBytes)
	}

	dir := s.uploadPath
	if category != "" {
		dir = filepath.Join(s.uploadPath, category)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	uniqueName := uuid.NewString() + ext
	dst := filepath.Join(dir, uniqueName)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	if category != "" {
		return path.Join(s.basePath, category, uniqueName), nil
	}
	return path.Join(s.basePath, uniqueName), nil
}

// Delete removes the file a reference points at, best-effort. The bare file
// name is looked up recursively under the upload root; a missing file or a
// failed removal is logged, never surfaced. An empty reference is a no-op.
func (s *Store) Delete(ref string) {
	if ref == "" {
		return
	}

	fileName := path.Base(ref)
	if fileName == "" || fileName == "." || fileName == "/" {
		return
	}

	found := ""
	err := filepath.WalkDir(s.uploadPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == fileName {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	if err != nil || found == "" {
		log.Printf("[imagestore] file not found for deletion: %s", fileName)
		return
	}

	if err := os.Remove(found); err != nil {
		log.Printf("[imagestore] failed to delete %s: %v", found, err)
		return
	}
	log.Printf("[imagestore] deleted file: %s", found)
}

func (s *Store) extensionAllowed(ext string) bool {
	for _, allowed := range s.allowedExts {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}
