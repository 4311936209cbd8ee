package repository

import (
	"errors"
	"strings"

	"property-portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyFilter holds the optional list filters. Supplied fields combine
// with AND; omitted fields impose no constraint.
type PropertyFilter struct {
	Name     string
	Address  string
	MinPrice *float64
	MaxPrice *float64
}

// Properties is the repository for the properties collection
type Properties struct {
	db *gorm.DB
}

// NewProperties creates a new property repository
func NewProperties(db *gorm.DB) *Properties {
	return &Properties{db: db}
}

// List retrieves properties matching the filter. Substring filters are
// case-insensitive and match anywhere in the field; price bounds are
// inclusive.
func (r *Properties) List(filter PropertyFilter) ([]models.Property, error) {
	q := r.db.Model(&models.Property{})

	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Address != "" {
		q = q.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(filter.Address)+"%")
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	var properties []models.Property
	err := q.Find(&properties).Error
	return properties, err
}

// GetByID retrieves a property by ID, nil if not found
func (r *Properties) GetByID(id string) (*models.Property, error) {
	var property models.Property
	err := r.db.Where("id = ?", id).First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetByCodeInternal retrieves a property by its internal code (exact,
// case-sensitive match), nil if none. Used for the uniqueness check.
func (r *Properties) GetByCodeInternal(code string) (*models.Property, error) {
	var property models.Property
	err := r.db.Where("code_internal = ?", code).First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Insert stores a new property, assigning an ID when not set
func (r *Properties) Insert(property *models.Property) error {
	if property.ID == "" {
		property.ID = uuid.NewString()
	}
	return r.db.Create(property).Error
}

// Update replaces the full property document by ID
func (r *Properties) Update(id string, property *models.Property) error {
	property.ID = id
	return r.db.Save(property).Error
}

// Delete removes a property record by ID
func (r *Properties) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Property{}).Error
}
