package repository

import (
	"errors"

	"property-portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Traces is the repository for property trace records
type Traces struct {
	db *gorm.DB
}

// NewTraces creates a new trace repository
func NewTraces(db *gorm.DB) *Traces {
	return &Traces{db: db}
}

// List retrieves all traces
func (r *Traces) List() ([]models.PropertyTrace, error) {
	var traces []models.PropertyTrace
	err := r.db.Find(&traces).Error
	return traces, err
}

// GetByID retrieves a trace by ID, nil if not found
func (r *Traces) GetByID(id string) (*models.PropertyTrace, error) {
	var trace models.PropertyTrace
	err := r.db.Where("id = ?", id).First(&trace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trace, nil
}

// Insert stores a new trace, assigning an ID when not set
func (r *Traces) Insert(trace *models.PropertyTrace) error {
	if trace.ID == "" {
		trace.ID = uuid.NewString()
	}
	return r.db.Create(trace).Error
}

// Update replaces the full trace document by ID
func (r *Traces) Update(id string, trace *models.PropertyTrace) error {
	trace.ID = id
	return r.db.Save(trace).Error
}

// Delete removes a trace record by ID
func (r *Traces) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.PropertyTrace{}).Error
}
