package service

import (
	"testing"

	"github.com/signstudio/signage-backend/internal/app/repository"
	"github.com/signstudio/signage-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalogService(t *testing.T) (*gorm.DB, CatalogService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	svc := NewCatalogService(repository.NewCatalogRepository(testDB))
	return testDB, svc
}

func TestCatalogService_AddColor(t *testing.T) {
	testDB, svc := setupCatalogService(t)
	defer db.CleanupTestDB(testDB)

	color, err := svc.AddColor("Navy", "#001F3F")
	require.NoError(t, err)
	assert.NotZero(t, color.ID)
	assert.Equal(t, "#001F3F", color.HexValue)
}

func TestCatalogService_AddColor_InvalidHex(t *testing.T) {
	testDB, svc := setupCatalogService(t)
	defer db.CleanupTestDB(testDB)

	tests := []struct {
		name string
		hex  string
	}{
		{"missing hash", "001F3F"},
		{"too short", "#FFF"},
		{"not hex digits", "#GGGGGG"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddColor("Broken", tt.hex)
			assert.ErrorIs(t, err, ErrInvalidHex)
		})
	}
}

func TestCatalogService_AddColor_DuplicateHex(t *testing.T) {
	testDB, svc := setupCatalogService(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.AddColor("Red", "#FF0000")
	require.NoError(t, err)

	_, err = svc.AddColor("Crimson", "#FF0000")
	require.Error(t, err)

	var exists *ColorExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "#FF0000", exists.HexValue)
}

func TestCatalogService_AddColor_MissingName(t *testing.T) {
	testDB, svc := setupCatalogService(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.AddColor("   ", "#FF0000")
	assert.ErrorIs(t, err, ErrColorNameMissing)
}

func TestCatalogService_Images(t *testing.T) {
	testDB, svc := setupCatalogService(t)
	defer db.CleanupTestDB(testDB)

	name := "Exit"
	image, err := svc.AddImage("https://cdn.example.com/icons/exit.svg", &name)
	require.NoError(t, err)
	assert.NotZero(t, image.ID)

	_, err = svc.AddImage("  ", nil)
	assert.ErrorIs(t, err, ErrImageURLMissing)

	images, err := svc.ListImages()
	require.NoError(t, err)
	assert.Len(t, images, 1)

	require.NoError(t, svc.DeleteImage(image.ID))

	err = svc.DeleteImage(image.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, OptionImage, notFound.Kind)
}

func TestCatalogService_Shapes(t *testing.T) {
	testDB, svc := setupCatalogService(t)
	defer db.CleanupTestDB(testDB)

	svg := "https://cdn.example.com/shapes/square.svg"
	width, height := 30.0, 20.0
	shape, err := svc.AddShape("Square", &svg, &width, &height)
	require.NoError(t, err)
	assert.NotZero(t, shape.ID)

	// Artwork is optional at catalog time.
	bare, err := svc.AddShape("Placeholder", nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, bare.Image)

	_, err = svc.AddShape("", nil, nil, nil)
	assert.ErrorIs(t, err, ErrShapeNameMissing)

	shapes, err := svc.ListShapes()
	require.NoError(t, err)
	assert.Len(t, shapes, 2)

	require.NoError(t, svc.DeleteShape(bare.ID))

	err = svc.DeleteShape(bare.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, OptionShape, notFound.Kind)
}
