package service

import (
	"property-portfolio/internal/models"
	"property-portfolio/internal/repository"
)

// Traces orchestrates property trace writes. The only cross-collection rule
// is that the referenced property must exist at write time.
type Traces struct {
	traces     *repository.Traces
	properties *repository.Properties
}

// NewTraces creates the trace service
func NewTraces(traces *repository.Traces, properties *repository.Properties) *Traces {
	return &Traces{traces: traces, properties: properties}
}

// List returns all traces
func (s *Traces) List() ([]models.PropertyTrace, error) {
	return s.traces.List()
}

// Get returns one trace
func (s *Traces) Get(id string) (*models.PropertyTrace, error) {
	trace, err := s.traces.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trace == nil {
		return nil, ErrNotFound
	}
	return trace, nil
}

// Create validates and stores a new trace
func (s *Traces) Create(trace *models.PropertyTrace) error {
	if err := s.checkProperty(trace.PropertyID); err != nil {
		return err
	}
	return s.traces.Insert(trace)
}

// Update validates and replaces a trace document
func (s *Traces) Update(id string, trace *models.PropertyTrace) error {
	existing, err := s.traces.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.checkProperty(trace.PropertyID); err != nil {
		return err
	}
	return s.traces.Update(id, trace)
}

// Delete removes a trace. Nothing cascades from trace deletion.
func (s *Traces) Delete(id string) error {
	existing, err := s.traces.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.traces.Delete(id)
}

func (s *Traces) checkProperty(propertyID string) error {
	property, err := s.properties.GetByID(propertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return &ValidationError{Field: "propertyId", Message: "the specified property does not exist"}
	}
	return nil
}
