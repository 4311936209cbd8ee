package cleanup

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"property-portfolio/internal/models"

	"gorm.io/gorm"
)

// Service deletes orphaned image files: files on disk under the upload root
// that no owner image record, property image record or owner photo field
// references anymore. Entity deletion removes files best-effort, so a crash
// or an old leak can leave strays behind; this sweep picks them up.
type Service struct {
	db         *gorm.DB
	uploadPath string
}

// NewService creates a new cleanup service
func NewService(db *gorm.DB, uploadPath string) *Service {
	return &Service{db: db, uploadPath: uploadPath}
}

// Config holds configuration for a cleanup run
type Config struct {
	GracePeriod      time.Duration // Files younger than this are never touched (in-flight uploads)
	MaxDeletionCount int           // Maximum number of files to delete in one run (safety limit)
	DryRun           bool          // If true, only log what would be deleted
}

// DefaultConfig returns default cleanup configuration
func DefaultConfig() Config {
	return Config{
		GracePeriod:      time.Hour,
		MaxDeletionCount: 1000,
		DryRun:           true,
	}
}

// Result holds the result of a cleanup run
type Result struct {
	ScannedCount int       `json:"scanned_count"` // Files inspected on disk
	OrphanCount  int       `json:"orphan_count"`  // Files with no referencing record
	DeletedCount int       `json:"deleted_count"` // Files actually deleted
	SkippedCount int       `json:"skipped_count"` // Files skipped (grace period)
	DryRun       bool      `json:"dry_run"`
	ExecutedAt   time.Time `json:"executed_at"`
	DeletedFiles []string  `json:"deleted_files"`
	Errors       []string  `json:"errors,omitempty"`
}

// Run scans the upload directory and deletes orphaned files
func (s *Service) Run(cfg Config) (*Result, error) {
	result := &Result{
		DryRun:     cfg.DryRun,
		ExecutedAt: time.Now(),
	}

	referenced, err := s.referencedFileNames()
	if err != nil {
		return nil, fmt.Errorf("failed to collect referenced files: %w", err)
	}

	var orphans []string
	cutoff := time.Now().Add(-cfg.GracePeriod)

	err = filepath.WalkDir(s.uploadPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		result.ScannedCount++

		if _, ok := referenced[d.Name()]; ok {
			return nil
		}

		info, err := d.Info()
		if err == nil && info.ModTime().After(cutoff) {
			// Could be an upload whose record is not committed yet
			result.SkippedCount++
			return nil
		}

		orphans = append(orphans, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan upload directory: %w", err)
	}

	result.OrphanCount = len(orphans)
	if result.OrphanCount == 0 {
		log.Println("Cleanup: no orphaned image files found")
		return result, nil
	}

	// Safety check: abort if too many files would be deleted
	if result.OrphanCount > cfg.MaxDeletionCount {
		return nil, fmt.Errorf("safety check failed: %d orphans exceed max deletion limit of %d",
			result.OrphanCount, cfg.MaxDeletionCount)
	}

	log.Printf("Cleanup: %d orphaned files of %d scanned (dry-run: %v)",
		result.OrphanCount, result.ScannedCount, cfg.DryRun)

	for _, path := range orphans {
		if cfg.DryRun {
			log.Printf("[DRY-RUN] Would delete orphaned file %s", path)
			result.DeletedFiles = append(result.DeletedFiles, path)
			result.DeletedCount++
			continue
		}

		if err := os.Remove(path); err != nil {
			errMsg := fmt.Sprintf("failed to delete %s: %v", path, err)
			log.Printf("Cleanup: ERROR: %s", errMsg)
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		log.Printf("Cleanup: deleted orphaned file %s", path)
		result.DeletedFiles = append(result.DeletedFiles, path)
		result.DeletedCount++
	}

	log.Printf("Cleanup: completed. %d/%d deleted, %d errors (dry-run: %v)",
		result.DeletedCount, result.OrphanCount, len(result.Errors), cfg.DryRun)

	return result, nil
}

// Stats returns counts useful for the admin dashboard
func (s *Service) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var ownerImages, propertyImages int64
	if err := s.db.Model(&models.OwnerImage{}).Count(&ownerImages).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.PropertyImage{}).Count(&propertyImages).Error; err != nil {
		return nil, err
	}
	stats["owner_image_records"] = ownerImages
	stats["property_image_records"] = propertyImages

	var filesOnDisk int64
	filepath.WalkDir(s.uploadPath, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			filesOnDisk++
		}
		return nil
	})
	stats["files_on_disk"] = filesOnDisk

	return stats, nil
}

// referencedFileNames collects the base names of every file some record
// still points at
func (s *Service) referencedFileNames() (map[string]struct{}, error) {
	referenced := make(map[string]struct{})

	var ownerFiles []string
	if err := s.db.Model(&models.OwnerImage{}).Pluck("file", &ownerFiles).Error; err != nil {
		return nil, err
	}
	var propertyFiles []string
	if err := s.db.Model(&models.PropertyImage{}).Pluck("file", &propertyFiles).Error; err != nil {
		return nil, err
	}
	var photos []string
	if err := s.db.Model(&models.Owner{}).Where("photo IS NOT NULL").Pluck("photo", &photos).Error; err != nil {
		return nil, err
	}

	for _, ref := range ownerFiles {
		referenced[filepath.Base(ref)] = struct{}{}
	}
	for _, ref := range propertyFiles {
		referenced[filepath.Base(ref)] = struct{}{}
	}
	for _, ref := range photos {
		referenced[filepath.Base(ref)] = struct{}{}
	}

	return referenced, nil
}
