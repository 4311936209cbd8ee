package repository

import (
	"property-portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyImages is the repository for property image metadata records.
// Unlike OwnerImages it applies no enabled filter and guarantees no order.
type PropertyImages struct {
	db *gorm.DB
}

// NewPropertyImages creates a new property image repository
func NewPropertyImages(db *gorm.DB) *PropertyImages {
	return &PropertyImages{db: db}
}

// Add stores a new image record, assigning an ID when not set
func (r *PropertyImages) Add(image *models.PropertyImage) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	return r.db.Create(image).Error
}

// GetByPropertyID retrieves all image records for a property
func (r *PropertyImages) GetByPropertyID(propertyID string) ([]models.PropertyImage, error) {
	var images []models.PropertyImage
	err := r.db.Where("property_id = ?", propertyID).Find(&images).Error
	return images, err
}

// DeleteByPropertyID removes every image record for a property. Backing
// files are the caller's responsibility.
func (r *PropertyImages) DeleteByPropertyID(propertyID string) error {
	return r.db.Where("property_id = ?", propertyID).Delete(&models.PropertyImage{}).Error
}

// DeleteByURL removes the single record matching property ID and file reference
func (r *PropertyImages) DeleteByURL(propertyID, fileRef string) error {
	return r.db.
		Where("property_id = ? AND file = ?", propertyID, fileRef).
		Delete(&models.PropertyImage{}).Error
}
