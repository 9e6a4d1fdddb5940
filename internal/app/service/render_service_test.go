package service

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/signstudio/signage-backend/internal/app/model"
	"github.com/signstudio/signage-backend/internal/app/repository"
	"github.com/signstudio/signage-backend/internal/db"
	"github.com/signstudio/signage-backend/internal/render"
	"github.com/signstudio/signage-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testShapeSVG   = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"><rect width="100" height="100" fill="#000000"/></svg>`
	testOverlaySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="40" height="40"><circle cx="20" cy="20" r="18" fill="#000000"/></svg>`
)

type fakeObjectStore struct {
	lastExt         string
	lastContentType string
	lastBody        []byte
}

func (f *fakeObjectStore) StoreRender(_ context.Context, ext, contentType string, body []byte) (*storage.StoredObject, error) {
	f.lastExt = ext
	f.lastContentType = contentType
	f.lastBody = body
	return &storage.StoredObject{
		URL:      "https://cdn.example.com/renders/test." + ext,
		Key:      "renders/test." + ext,
		Filename: "test." + ext,
	}, nil
}

func (f *fakeObjectStore) PresignGet(_ context.Context, objectURLOrKey string, _ time.Duration) (string, error) {
	return objectURLOrKey + "?signature=test", nil
}

type renderFixture struct {
	db      *gorm.DB
	service RenderService
	assets  *httptest.Server
	store   *fakeObjectStore

	shapeID     uint
	bareShapeID uint
	imageID     uint
	textColorID uint
	bgColorID   uint
}

func setupRenderService(t *testing.T) *renderFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	assets := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/shape.svg":
			w.Header().Set("Content-Type", "image/svg+xml")
			w.Write([]byte(testShapeSVG))
		case "/overlay.svg":
			w.Header().Set("Content-Type", "image/svg+xml")
			w.Write([]byte(testOverlaySVG))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(assets.Close)

	shapeURL := assets.URL + "/shape.svg"
	shape := model.ShapeSize{ShapeName: "Square", Image: &shapeURL}
	require.NoError(t, testDB.Create(&shape).Error)

	bareShape := model.ShapeSize{ShapeName: "No Artwork"}
	require.NoError(t, testDB.Create(&bareShape).Error)

	image := model.SignageImage{ImageURL: assets.URL + "/overlay.svg"}
	require.NoError(t, testDB.Create(&image).Error)

	textColor := model.AvailableColor{ColorName: "Text", HexValue: "#112233"}
	require.NoError(t, testDB.Create(&textColor).Error)

	bgColor := model.AvailableColor{ColorName: "Plate", HexValue: "#445566"}
	require.NoError(t, testDB.Create(&bgColor).Error)

	compositor, err := render.NewCompositor(18, "")
	require.NoError(t, err)

	store := &fakeObjectStore{}
	svc := NewRenderService(
		repository.NewCatalogRepository(testDB),
		render.NewHTTPFetcher(),
		compositor,
		store,
		100,
		40,
	)

	return &renderFixture{
		db:          testDB,
		service:     svc,
		assets:      assets,
		store:       store,
		shapeID:     shape.ID,
		bareShapeID: bareShape.ID,
		imageID:     image.ID,
		textColorID: textColor.ID,
		bgColorID:   bgColor.ID,
	}
}

func TestRenderService_Resolve(t *testing.T) {
	f := setupRenderService(t)
	defer db.CleanupTestDB(f.db)

	assets, err := f.service.Resolve(f.shapeID, f.imageID, f.textColorID, f.bgColorID)
	require.NoError(t, err)

	assert.Equal(t, f.assets.URL+"/shape.svg", assets.ShapeURL)
	assert.Equal(t, f.assets.URL+"/overlay.svg", assets.OverlayURL)
	assert.Equal(t, "#112233", assets.TextHex)
	assert.Equal(t, "#445566", assets.BackgroundHex)
}

func TestRenderService_Resolve_MissingRows(t *testing.T) {
	f := setupRenderService(t)
	defer db.CleanupTestDB(f.db)

	tests := []struct {
		name        string
		shapeID     uint
		imageID     uint
		textColorID uint
		bgColorID   uint
		wantKind    OptionKind
		wantID      uint
	}{
		{"unknown shape", 999, f.imageID, f.textColorID, f.bgColorID, OptionShape, 999},
		{"unknown image", f.shapeID, 999, f.textColorID, f.bgColorID, OptionImage, 999},
		{"unknown text color", f.shapeID, f.imageID, 999, f.bgColorID, OptionTextColor, 999},
		{"unknown background color", f.shapeID, f.imageID, f.textColorID, 999, OptionBackgroundColor, 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Resolve(tt.shapeID, tt.imageID, tt.textColorID, tt.bgColorID)
			require.Error(t, err)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.wantKind, notFound.Kind)
			assert.Equal(t, tt.wantID, notFound.ID)
		})
	}
}

func TestRenderService_Resolve_ShapeWithoutArtwork(t *testing.T) {
	f := setupRenderService(t)
	defer db.CleanupTestDB(f.db)

	_, err := f.service.Resolve(f.bareShapeID, f.imageID, f.textColorID, f.bgColorID)
	require.Error(t, err)

	var artwork *ShapeArtworkError
	require.ErrorAs(t, err, &artwork)
	assert.Equal(t, f.bareShapeID, artwork.ID)
}

func TestRenderService_Render(t *testing.T) {
	f := setupRenderService(t)
	defer db.CleanupTestDB(f.db)

	result, err := f.service.Render(context.Background(), RenderRequest{
		ShapeID:           f.shapeID,
		ImageID:           f.imageID,
		TextColorID:       f.textColorID,
		BackgroundColorID: f.bgColorID,
		Text:              "EXIT",
		Format:            render.FormatPNG,
	})
	require.NoError(t, err)

	assert.Equal(t, "image/png", result.ContentType)
	require.NotEmpty(t, result.Data)

	img, err := png.Decode(bytes.NewReader(result.Data))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestRenderService_Render_FetchFailure(t *testing.T) {
	f := setupRenderService(t)
	defer db.CleanupTestDB(f.db)

	missing := f.assets.URL + "/gone.svg"
	require.NoError(t, f.db.Model(&model.ShapeSize{}).
		Where("id = ?", f.shapeID).
		Update("image", missing).Error)

	_, err := f.service.Render(context.Background(), RenderRequest{
		ShapeID:           f.shapeID,
		ImageID:           f.imageID,
		TextColorID:       f.textColorID,
		BackgroundColorID: f.bgColorID,
		Text:              "EXIT",
		Format:            render.FormatPNG,
	})
	require.Error(t, err)

	var fetchErr *AssetFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "shape", fetchErr.Asset)
	assert.Equal(t, missing, fetchErr.URL)
}

func TestRenderService_RenderAndStore(t *testing.T) {
	f := setupRenderService(t)
	defer db.CleanupTestDB(f.db)

	stored, err := f.service.RenderAndStore(context.Background(), RenderRequest{
		ShapeID:           f.shapeID,
		ImageID:           f.imageID,
		TextColorID:       f.textColorID,
		BackgroundColorID: f.bgColorID,
		Text:              "EXIT",
		Format:            render.FormatWEBP,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/renders/test.webp", stored.URL)
	assert.Equal(t, "test.webp", stored.Filename)
	assert.Equal(t, "webp", stored.Format)

	assert.Equal(t, "webp", f.store.lastExt)
	assert.Equal(t, "image/webp", f.store.lastContentType)
	assert.NotEmpty(t, f.store.lastBody)
}

func TestRenderService_SignDownloadURL(t *testing.T) {
	f := setupRenderService(t)
	defer db.CleanupTestDB(f.db)

	signed, err := f.service.SignDownloadURL(context.Background(), "https://cdn.example.com/renders/test.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/renders/test.png?signature=test", signed)
}
