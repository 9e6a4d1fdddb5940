package repository

import (
	"testing"

	"github.com/signstudio/signage-backend/internal/app/model"
	"github.com/signstudio/signage-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalogTest(t *testing.T) (*gorm.DB, CatalogRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewCatalogRepository(testDB)
	return testDB, repo
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestCatalogRepository_CreateColor(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	color := &model.AvailableColor{
		ColorName: "Midnight Blue",
		HexValue:  "#112233",
	}

	err := repo.CreateColor(color)
	assert.NoError(t, err)
	assert.NotZero(t, color.ID)
}

func TestCatalogRepository_CreateColor_DuplicateHex(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	err := repo.CreateColor(&model.AvailableColor{ColorName: "Red", HexValue: "#FF0000"})
	require.NoError(t, err)

	err = repo.CreateColor(&model.AvailableColor{ColorName: "Also Red", HexValue: "#FF0000"})
	assert.Error(t, err)
}

func TestCatalogRepository_FindColorByHex(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	err := repo.CreateColor(&model.AvailableColor{ColorName: "Green", HexValue: "#00FF00"})
	require.NoError(t, err)

	found, err := repo.FindColorByHex("#00FF00")
	assert.NoError(t, err)
	assert.Equal(t, "Green", found.ColorName)

	_, err = repo.FindColorByHex("#ABCDEF")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatalogRepository_FindAllColors(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	colors := []model.AvailableColor{
		{ColorName: "Black", HexValue: "#000000"},
		{ColorName: "White", HexValue: "#FFFFFF"},
	}
	for i := range colors {
		require.NoError(t, repo.CreateColor(&colors[i]))
	}

	found, err := repo.FindAllColors()
	assert.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestCatalogRepository_ImageLifecycle(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	image := &model.SignageImage{
		ImageURL:  "https://cdn.example.com/icons/wheelchair.svg",
		ImageName: strPtr("Wheelchair"),
	}
	require.NoError(t, repo.CreateImage(image))
	require.NotZero(t, image.ID)

	found, err := repo.FindImageByID(image.ID)
	assert.NoError(t, err)
	assert.Equal(t, image.ImageURL, found.ImageURL)

	all, err := repo.FindAllImages()
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	err = repo.DeleteImage(image.ID)
	assert.NoError(t, err)

	_, err = repo.FindImageByID(image.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatalogRepository_DeleteImage_NotFound(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	err := repo.DeleteImage(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatalogRepository_ShapeLifecycle(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	shape := &model.ShapeSize{
		ShapeName: "Rounded Rectangle",
		Image:     strPtr("https://cdn.example.com/shapes/rounded.svg"),
		Width:     floatPtr(30),
		Height:    floatPtr(20),
	}
	require.NoError(t, repo.CreateShape(shape))

	found, err := repo.FindShapeByID(shape.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Rounded Rectangle", found.ShapeName)
	require.NotNil(t, found.Width)
	assert.Equal(t, 30.0, *found.Width)

	err = repo.DeleteShape(shape.ID)
	assert.NoError(t, err)

	err = repo.DeleteShape(shape.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatalogRepository_ShapeWithoutArtwork(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	shape := &model.ShapeSize{ShapeName: "Placeholder"}
	require.NoError(t, repo.CreateShape(shape))

	found, err := repo.FindShapeByID(shape.ID)
	assert.NoError(t, err)
	assert.Nil(t, found.Image)
}
