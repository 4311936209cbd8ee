package repository

import (
	"testing"
	"time"

	"property-portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnersRoundtrip(t *testing.T) {
	repo := NewOwners(newTestDB(t))

	birthday := time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC)
	owner := &models.Owner{Name: "Ana", Address: "1 Main St", Birthday: &birthday}
	require.NoError(t, repo.Insert(owner))
	assert.NotEmpty(t, owner.ID)

	got, err := repo.GetByID(owner.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Name)
	require.NotNil(t, got.Birthday)
	assert.True(t, got.Birthday.Equal(birthday))
	assert.Nil(t, got.Photo)
}

func TestOwnersGetByIDNotFound(t *testing.T) {
	repo := NewOwners(newTestDB(t))

	got, err := repo.GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOwnersList(t *testing.T) {
	repo := NewOwners(newTestDB(t))

	require.NoError(t, repo.Insert(&models.Owner{Name: "Ana", Address: "1 Main St"}))
	require.NoError(t, repo.Insert(&models.Owner{Name: "Ben", Address: "2 High St"}))

	got, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestOwnersUpdateAndDelete(t *testing.T) {
	repo := NewOwners(newTestDB(t))

	owner := &models.Owner{Name: "Ana", Address: "1 Main St"}
	require.NoError(t, repo.Insert(owner))

	updated := *owner
	updated.Address = "3 New St"
	require.NoError(t, repo.Update(owner.ID, &updated))

	got, err := repo.GetByID(owner.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "3 New St", got.Address)

	require.NoError(t, repo.Delete(owner.ID))
	got, err = repo.GetByID(owner.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
