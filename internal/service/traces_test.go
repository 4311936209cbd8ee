package service

import (
	"testing"
	"time"

	"property-portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracesCreateMissingProperty(t *testing.T) {
	env := newTestEnv(t)

	err := env.traces.Create(&models.PropertyTrace{
		DateSale:   time.Now().UTC(),
		Name:       "Initial sale",
		Value:      250000,
		Tax:        12500,
		PropertyID: "missing",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "propertyId", verr.Field)
}

func TestTracesLifecycle(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedOwner(t, "Ana")
	prop := env.seedProperty(t, owner.ID, "VS-001")

	trace := &models.PropertyTrace{
		DateSale:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Name:       "Initial sale",
		Value:      250000,
		Tax:        12500,
		PropertyID: prop.ID,
	}
	require.NoError(t, env.traces.Create(trace))

	got, err := env.traces.Get(trace.ID)
	require.NoError(t, err)
	assert.Equal(t, "Initial sale", got.Name)

	updated := *got
	updated.Value = 300000
	require.NoError(t, env.traces.Update(trace.ID, &updated))

	got, err = env.traces.Get(trace.ID)
	require.NoError(t, err)
	assert.Equal(t, 300000.0, got.Value)

	require.NoError(t, env.traces.Delete(trace.ID))
	_, err = env.traces.Get(trace.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTracesUpdateRechecksProperty(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedOwner(t, "Ana")
	prop := env.seedProperty(t, owner.ID, "VS-001")

	trace := &models.PropertyTrace{
		DateSale:   time.Now().UTC(),
		Name:       "Initial sale",
		Value:      100,
		PropertyID: prop.ID,
	}
	require.NoError(t, env.traces.Create(trace))

	updated := *trace
	updated.PropertyID = "missing"
	err := env.traces.Update(trace.ID, &updated)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestTracesDeleteNotFound(t *testing.T) {
	env := newTestEnv(t)

	assert.ErrorIs(t, env.traces.Delete("missing"), ErrNotFound)
}
