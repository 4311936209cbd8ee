package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"property-portfolio/internal/config"
	"property-portfolio/internal/imagestore"
	"property-portfolio/internal/models"
	"property-portfolio/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db         *gorm.DB
	uploadRoot string
	owners     *Owners
	properties *Properties
	traces     *Traces

	ownerRepo    *repository.Owners
	propertyRepo *repository.Properties
	ownerImages  *repository.OwnerImages
	propImages   *repository.PropertyImages
}

func newTestEnv(t *testing.T) *testEnv {
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

	root := t.TempDir()
	files := imagestore.New(config.ImagesConfig{
		UploadPath:        root,
		AllowedExtensions: []string{".jpg", ".jpeg", ".png"},
		MaxFileSizeMB:     1,
		BasePath:          "/images",
	})

	ownerRepo := repository.NewOwners(db)
	propertyRepo := repository.NewProperties(db)
	ownerImages := repository.NewOwnerImages(db)
	propImages := repository.NewPropertyImages(db)
	traceRepo := repository.NewTraces(db)

	return &testEnv{
		db:           db,
		uploadRoot:   root,
		owners:       NewOwners(ownerRepo, ownerImages, files),
		properties:   NewProperties(propertyRepo, ownerRepo, propImages, files, nil),
		traces:       NewTraces(traceRepo, propertyRepo),
		ownerRepo:    ownerRepo,
		propertyRepo: propertyRepo,
		ownerImages:  ownerImages,
		propImages:   propImages,
	}
}

func (e *testEnv) seedOwner(t *testing.T, name string) *models.Owner {
	t.Helper()
	owner := &models.Owner{Name: name, Address: "1 Main St"}
	require.NoError(t, e.ownerRepo.Insert(owner))
	return owner
}

func (e *testEnv) seedProperty(t *testing.T, ownerID, code string) *models.Property {
	t.Helper()
	prop := &models.Property{
		Name:         "Villa Sol",
		Address:      "Calle 10 #5-20",
		Price:        100,
		CodeInternal: code,
		Year:         2010,
		OwnerID:      ownerID,
	}
	require.NoError(t, e.propertyRepo.Insert(prop))
	return prop
}

func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("imageFile", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["imageFile"][0]
}
