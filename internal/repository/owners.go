package repository

import (
	"errors"

	"property-portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owners is the repository for the owners collection. A missing record is
// signaled by a nil result, never an error.
type Owners struct {
	db *gorm.DB
}

// NewOwners creates a new owner repository
func NewOwners(db *gorm.DB) *Owners {
	return &Owners{db: db}
}

// List retrieves all owners
func (r *Owners) List() ([]models.Owner, error) {
	var owners []models.Owner
	err := r.db.Find(&owners).Error
	return owners, err
}

// GetByID retrieves an owner by ID, nil if not found
func (r *Owners) GetByID(id string) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.Where("id = ?", id).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// Insert stores a new owner, assigning an ID when not set
func (r *Owners) Insert(owner *models.Owner) error {
	if owner.ID == "" {
		owner.ID = uuid.NewString()
	}
	return r.db.Create(owner).Error
}

// Update replaces the full owner document by ID
func (r *Owners) Update(id string, owner *models.Owner) error {
	owner.ID = id
	return r.db.Save(owner).Error
}

// Delete removes an owner record by ID
func (r *Owners) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Owner{}).Error
}
