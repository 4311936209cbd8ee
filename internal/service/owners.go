package service

import (
	"errors"
	"mime/multipart"

	"property-portfolio/internal/imagestore"
	"property-portfolio/internal/models"
	"property-portfolio/internal/repository"
)

// Owners orchestrates owner writes and the owner image lifecycle. All
// cross-collection rules live here; the repositories stay single-collection.
type Owners struct {
	owners *repository.Owners
	images *repository.OwnerImages
	files  *imagestore.Store
}

// NewOwners creates the owner service
func NewOwners(owners *repository.Owners, images *repository.OwnerImages, files *imagestore.Store) *Owners {
	return &Owners{owners: owners, images: images, files: files}
}

// List returns all owners with their Photo field refreshed from the image
// collection (newest enabled image wins; the stored value is only a cache).
func (s *Owners) List() ([]models.Owner, error) {
	owners, err := s.owners.List()
	if err != nil {
		return nil, err
	}
	for i := range owners {
		if err := s.refreshPhoto(&owners[i]); err != nil {
			return nil, err
		}
	}
	return owners, nil
}

// Get returns one owner, Photo refreshed
func (s *Owners) Get(id string) (*models.Owner, error) {
	owner, err := s.owners.GetByID(id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrNotFound
	}
	if err := s.refreshPhoto(owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// Create stores a new owner without an image
func (s *Owners) Create(owner *models.Owner) error {
	return s.owners.Insert(owner)
}

// CreateWithImage stores a new owner and, when a file is supplied, saves it,
// records it and patches the owner's denormalized Photo field.
func (s *Owners) CreateWithImage(owner *models.Owner, file *multipart.FileHeader) error {
	if err := s.owners.Insert(owner); err != nil {
		return err
	}

	if file == nil || file.Size == 0 {
		return nil
	}

	ref, err := s.saveFile(file)
	if err != nil {
		return err
	}

	image := &models.OwnerImage{
		OwnerID: owner.ID,
		File:    ref,
		Enabled: true,
	}
	if err := s.images.Add(image); err != nil {
		return err
	}

	owner.Photo = &ref
	return s.owners.Update(owner.ID, owner)
}

// Update replaces an owner document
func (s *Owners) Update(id string, owner *models.Owner) error {
	existing, err := s.owners.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.owners.Update(id, owner)
}

// Delete removes an owner together with its image records and, best-effort,
// their backing files. A failed file removal never blocks the delete.
func (s *Owners) Delete(id string) error {
	existing, err := s.owners.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	images, err := s.images.GetByOwnerID(id)
	if err != nil {
		return err
	}
	for _, img := range images {
		s.files.Delete(img.File)
	}

	if err := s.images.DeleteByOwnerID(id); err != nil {
		return err
	}
	return s.owners.Delete(id)
}

// UploadImage attaches a new image to an existing owner. A second upload
// resolving to an already-recorded reference is rejected with a conflict.
func (s *Owners) UploadImage(ownerID string, file *multipart.FileHeader) (*models.OwnerImage, error) {
	if file == nil || file.Size == 0 {
		return nil, &ValidationError{Field: "imageFile", Message: "image file is required"}
	}

	owner, err := s.owners.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrNotFound
	}

	ref, err := s.saveFile(file)
	if err != nil {
		return nil, err
	}

	exists, err := s.images.Exists(ownerID, ref)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &ConflictError{Message: "this image already exists for this owner"}
	}

	image := &models.OwnerImage{
		OwnerID: ownerID,
		File:    ref,
		Enabled: true,
	}
	if err := s.images.Add(image); err != nil {
		return nil, err
	}
	return image, nil
}

// Images returns the owner's enabled image records, newest first
func (s *Owners) Images(ownerID string) ([]models.OwnerImage, error) {
	owner, err := s.owners.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrNotFound
	}
	return s.images.GetByOwnerID(ownerID)
}

// DeleteImage removes one image record and, best-effort, its backing file
func (s *Owners) DeleteImage(ownerID, fileRef string) error {
	owner, err := s.owners.GetByID(ownerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return ErrNotFound
	}

	s.files.Delete(fileRef)
	return s.images.DeleteByURL(ownerID, fileRef)
}

func (s *Owners) refreshPhoto(owner *models.Owner) error {
	images, err := s.images.GetByOwnerID(owner.ID)
	if err != nil {
		return err
	}
	if len(images) > 0 {
		owner.Photo = &images[0].File
	} else {
		owner.Photo = nil
	}
	return nil
}

func (s *Owners) saveFile(file *multipart.FileHeader) (string, error) {
	ref, err := s.files.Save(file, "owners")
	if err != nil {
		if errors.Is(err, imagestore.ErrDisallowedExtension) || errors.Is(err, imagestore.ErrFileTooLarge) {
			return "", &ValidationError{Field: "imageFile", Message: err.Error()}
		}
		return "", err
	}
	return ref, nil
}
