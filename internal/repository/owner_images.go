package repository

import (
	"property-portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnerImages is the repository for owner image metadata records. Reads are
// restricted to enabled records and come back newest first.
type OwnerImages struct {
	db *gorm.DB
}

// NewOwnerImages creates a new owner image repository
func NewOwnerImages(db *gorm.DB) *OwnerImages {
	return &OwnerImages{db: db}
}

// Add stores a new image record, assigning an ID when not set
func (r *OwnerImages) Add(image *models.OwnerImage) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	return r.db.Create(image).Error
}

// GetByOwnerID retrieves all enabled image records for an owner, most
// recent first
func (r *OwnerImages) GetByOwnerID(ownerID string) ([]models.OwnerImage, error) {
	var images []models.OwnerImage
	err := r.db.
		Where("owner_id = ? AND enabled = ?", ownerID, true).
		Order("created_date DESC").
		Find(&images).Error
	return images, err
}

// DeleteByOwnerID removes every image record for an owner. Backing files are
// the caller's responsibility.
func (r *OwnerImages) DeleteByOwnerID(ownerID string) error {
	return r.db.Where("owner_id = ?", ownerID).Delete(&models.OwnerImage{}).Error
}

// DeleteByURL removes the single record matching owner ID and file reference
func (r *OwnerImages) DeleteByURL(ownerID, fileRef string) error {
	return r.db.
		Where("owner_id = ? AND file = ?", ownerID, fileRef).
		Delete(&models.OwnerImage{}).Error
}

// Exists reports whether an enabled record with this exact (owner, file)
// pair is already stored
func (r *OwnerImages) Exists(ownerID, fileRef string) (bool, error) {
	var count int64
	err := r.db.Model(&models.OwnerImage{}).
		Where("owner_id = ? AND file = ? AND enabled = ?", ownerID, fileRef, true).
		Count(&count).Error
	return count > 0, err
}
