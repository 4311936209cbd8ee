package repository

import (
	"testing"

	"property-portfolio/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Owner{},
		&models.OwnerImage{},
		&models.Property{},
		&models.PropertyImage{},
		&models.PropertyTrace{},
	))
	return db
}

func seedOwner(t *testing.T, db *gorm.DB, name string) *models.Owner {
	t.Helper()
	owner := &models.Owner{Name: name, Address: "1 Main St"}
	require.NoError(t, NewOwners(db).Insert(owner))
	return owner
}
