package repository

import (
	"testing"
	"time"

	"property-portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracesRoundtrip(t *testing.T) {
	repo := NewTraces(newTestDB(t))

	trace := &models.PropertyTrace{
		DateSale:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Name:       "Initial sale",
		Value:      250000,
		Tax:        12500,
		PropertyID: "p1",
	}
	require.NoError(t, repo.Insert(trace))
	assert.NotEmpty(t, trace.ID)

	got, err := repo.GetByID(trace.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Initial sale", got.Name)
	assert.Equal(t, 250000.0, got.Value)

	updated := *got
	updated.Tax = 0
	require.NoError(t, repo.Update(trace.ID, &updated))

	got, err = repo.GetByID(trace.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0.0, got.Tax)

	require.NoError(t, repo.Delete(trace.ID))
	got, err = repo.GetByID(trace.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTracesList(t *testing.T) {
	repo := NewTraces(newTestDB(t))

	for _, name := range []string{"Sale", "Valuation"} {
		require.NoError(t, repo.Insert(&models.PropertyTrace{
			DateSale:   time.Now().UTC(),
			Name:       name,
			Value:      100,
			PropertyID: "p1",
		}))
	}

	got, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
