package service

import (
	"os"
	"path/filepath"
	"testing"

	"property-portfolio/internal/models"
	"property-portfolio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesCreateDuplicateCode(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedOwner(t, "Ana")
	env.seedProperty(t, owner.ID, "VS-001")

	err := env.properties.Create(&models.Property{
		Name:         "Casa Norte",
		Address:      "Av Norte 42",
		Price:        200,
		CodeInternal: "VS-001",
		Year:         2015,
		OwnerID:      owner.ID,
	})
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)

	// the rejected property was not stored
	got, listErr := env.propertyRepo.List(repository.PropertyFilter{})
	require.NoError(t, listErr)
	assert.Len(t, got, 1)
}

func TestPropertiesCreateMissingOwner(t *testing.T) {
	env := newTestEnv(t)

	err := env.properties.Create(&models.Property{
		Name:         "Villa Sol",
		Address:      "Calle 10",
		Price:        100,
		CodeInternal: "VS-001",
		Year:         2010,
		OwnerID:      "missing",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ownerId", verr.Field)

	got, listErr := env.propertyRepo.List(repository.PropertyFilter{})
	require.NoError(t, listErr)
	assert.Empty(t, got)
}

func TestPropertiesUpdateKeepsOwnCode(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedOwner(t, "Ana")
	prop := env.seedProperty(t, owner.ID, "VS-001")

	updated := *prop
	updated.Price = 150
	require.NoError(t, env.properties.Update(prop.ID, &updated))

	got, err := env.properties.Get(prop.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, got.Price)
}

func TestPropertiesUpdateCodeTakenByOther(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedOwner(t, "Ana")
	env.seedProperty(t, owner.ID, "VS-001")
	other := env.seedProperty(t, owner.ID, "CN-002")

	updated := *other
	updated.CodeInternal = "VS-001"
	err := env.properties.Update(other.ID, &updated)
	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr)
}

func TestPropertiesUpdateNotFound(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedOwner(t, "Ana")

	err := env.properties.Update("missing", &models.Property{
		Name: "Villa Sol", Address: "Calle 10", Price: 100,
		CodeInternal: "VS-001", Year: 2010, OwnerID: owner.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPropertiesGetJoinsImageURLs(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedOwner(t, "Ana")
	prop := env.seedProperty(t, owner.ID, "VS-001")

	image, err := env.properties.UploadImage(prop.ID, makeFileHeader(t, "front.jpg", []byte("jpeg")))
	require.NoError(t, err)

	got, err := env.properties.Get(prop.ID)
	require.NoError(t, err)
	require.Len(t, got.ImageURLs, 1)
	assert.Equal(t, image.File, got.ImageURLs[0])
}

func TestPropertiesUploadImageMissingProperty(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.properties.UploadImage("missing", makeFileHeader(t, "a.jpg", []byte("x")))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPropertiesUploadImageBadExtension(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedOwner(t, "Ana")
	prop := env.seedProperty(t, owner.ID, "VS-001")

	_, err := env.properties.UploadImage(prop.ID, makeFileHeader(t, "notes.txt", []byte("x")))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "imageFile", verr.Field)
}

func TestPropertiesDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedOwner(t, "Ana")
	prop := env.seedProperty(t, owner.ID, "VS-001")

	_, err := env.properties.UploadImage(prop.ID, makeFileHeader(t, "a.jpg", []byte("one")))
	require.NoError(t, err)
	_, err = env.properties.UploadImage(prop.ID, makeFileHeader(t, "b.jpg", []byte("two")))
	require.NoError(t, err)

	require.NoError(t, env.properties.Delete(prop.ID))

	_, err = env.properties.Get(prop.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	images, err := env.propImages.GetByPropertyID(prop.ID)
	require.NoError(t, err)
	assert.Empty(t, images)

	entries, err := os.ReadDir(filepath.Join(env.uploadRoot, "properties"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPropertiesDeleteNotFound(t *testing.T) {
	env := newTestEnv(t)

	assert.ErrorIs(t, env.properties.Delete("missing"), ErrNotFound)
}

func TestPropertiesSearchDisabled(t *testing.T) {
	env := newTestEnv(t)

	assert.False(t, env.properties.SearchEnabled())
}
