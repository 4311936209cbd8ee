package service

import (
	"errors"
	"log"
	"mime/multipart"

	"property-portfolio/internal/imagestore"
	"property-portfolio/internal/models"
	"property-portfolio/internal/repository"
	"property-portfolio/internal/search"
)

// PropertyDetail is a property joined with the file references of its images
type PropertyDetail struct {
	models.Property
	ImageURLs []string `json:"imageUrls"`
}

// Properties orchestrates property writes: the internal-code uniqueness
// rule, the owner reference check, the image lifecycle and the cascade on
// delete. Search indexing piggybacks on the write path and is best-effort.
type Properties struct {
	properties *repository.Properties
	owners     *repository.Owners
	images     *repository.PropertyImages
	files      *imagestore.Store
	search     *search.Client
}

// NewProperties creates the property service. search may be nil.
func NewProperties(
	properties *repository.Properties,
	owners *repository.Owners,
	images *repository.PropertyImages,
	files *imagestore.Store,
	searchClient *search.Client,
) *Properties {
	return &Properties{
		properties: properties,
		owners:     owners,
		images:     images,
		files:      files,
		search:     searchClient,
	}
}

// List returns properties matching the filter, each joined with its image URLs
func (s *Properties) List(filter repository.PropertyFilter) ([]PropertyDetail, error) {
	properties, err := s.properties.List(filter)
	if err != nil {
		return nil, err
	}

	details := make([]PropertyDetail, 0, len(properties))
	for _, p := range properties {
		urls, err := s.imageURLs(p.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, PropertyDetail{Property: p, ImageURLs: urls})
	}
	return details, nil
}

// Get returns one property joined with its image URLs
func (s *Properties) Get(id string) (*PropertyDetail, error) {
	property, err := s.properties.GetByID(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrNotFound
	}

	urls, err := s.imageURLs(id)
	if err != nil {
		return nil, err
	}
	return &PropertyDetail{Property: *property, ImageURLs: urls}, nil
}

// Create validates and stores a new property
func (s *Properties) Create(property *models.Property) error {
	if err := s.checkCodeInternal(property.CodeInternal, ""); err != nil {
		return err
	}
	if err := s.checkOwner(property.OwnerID); err != nil {
		return err
	}
	if err := s.properties.Insert(property); err != nil {
		return err
	}
	s.index(property)
	return nil
}

// Update validates and replaces a property document
func (s *Properties) Update(id string, property *models.Property) error {
	existing, err := s.properties.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	// The property's own unchanged code is not a collision
	if err := s.checkCodeInternal(property.CodeInternal, id); err != nil {
		return err
	}
	if err := s.checkOwner(property.OwnerID); err != nil {
		return err
	}
	if err := s.properties.Update(id, property); err != nil {
		return err
	}
	s.index(property)
	return nil
}

// Delete removes a property together with its image records and,
// best-effort, their backing files
func (s *Properties) Delete(id string) error {
	existing, err := s.properties.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	images, err := s.images.GetByPropertyID(id)
	if err != nil {
		return err
	}
	for _, img := range images {
		s.files.Delete(img.File)
	}

	if err := s.images.DeleteByPropertyID(id); err != nil {
		return err
	}
	if err := s.properties.Delete(id); err != nil {
		return err
	}

	if err := s.search.RemoveProperty(id); err != nil {
		log.Printf("[search] failed to deindex property %s: %v", id, err)
	}
	return nil
}

// UploadImage attaches a new image to an existing property. Property uploads
// carry no duplicate check.
func (s *Properties) UploadImage(propertyID string, file *multipart.FileHeader) (*models.PropertyImage, error) {
	if file == nil || file.Size == 0 {
		return nil, &ValidationError{Field: "imageFile", Message: "image file is required"}
	}

	property, err := s.properties.GetByID(propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrNotFound
	}

	ref, err := s.files.Save(file, "properties")
	if err != nil {
		if errors.Is(err, imagestore.ErrDisallowedExtension) || errors.Is(err, imagestore.ErrFileTooLarge) {
			return nil, &ValidationError{Field: "imageFile", Message: err.Error()}
		}
		return nil, err
	}

	image := &models.PropertyImage{
		PropertyID: propertyID,
		File:       ref,
		Enabled:    true,
	}
	if err := s.images.Add(image); err != nil {
		return nil, err
	}
	return image, nil
}

// ImageURLs returns the file references of a property's images
func (s *Properties) ImageURLs(propertyID string) ([]string, error) {
	return s.imageURLs(propertyID)
}

// DeleteImage removes one image record and, best-effort, its backing file
func (s *Properties) DeleteImage(propertyID, fileRef string) error {
	s.files.Delete(fileRef)
	return s.images.DeleteByURL(propertyID, fileRef)
}

// SearchText runs a full-text query against the search index
func (s *Properties) SearchText(query string, limit int64) ([]models.Property, error) {
	return s.search.Search(query, limit)
}

// SearchEnabled reports whether a search backend is configured
func (s *Properties) SearchEnabled() bool {
	return s.search.Enabled()
}

func (s *Properties) imageURLs(propertyID string) ([]string, error) {
	images, err := s.images.GetByPropertyID(propertyID)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.File)
	}
	return urls, nil
}

func (s *Properties) checkCodeInternal(code, selfID string) error {
	existing, err := s.properties.GetByCodeInternal(code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return &ConflictError{Message: "internal code already in use by another property"}
	}
	return nil
}

func (s *Properties) checkOwner(ownerID string) error {
	owner, err := s.owners.GetByID(ownerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return &ValidationError{Field: "ownerId", Message: "the specified owner does not exist"}
	}
	return nil
}

func (s *Properties) index(property *models.Property) {
	if err := s.search.IndexProperty(property); err != nil {
		log.Printf("[search] failed to index property %s: %v", property.ID, err)
	}
}
