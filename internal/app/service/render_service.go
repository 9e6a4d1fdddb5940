package service

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/signstudio/signage-backend/internal/app/repository"
	"github.com/signstudio/signage-backend/internal/render"
	"github.com/signstudio/signage-backend/internal/storage"
	"github.com/signstudio/signage-backend/pkg/braille"
	"github.com/signstudio/signage-backend/pkg/logger"
)

// signedURLExpiry bounds how long a presigned download link stays valid.
const signedURLExpiry = 15 * time.Minute

// ShapeArtworkError reports a shape that exists in the catalog but has no
// SVG artwork attached yet, so it cannot be rendered.
type ShapeArtworkError struct {
	ID uint
}

func (e *ShapeArtworkError) Error() string {
	return fmt.Sprintf("shape %d has no artwork", e.ID)
}

// AssetFetchError reports a failure downloading one of the render layers.
type AssetFetchError struct {
	Asset string
	URL   string
	Err   error
}

func (e *AssetFetchError) Error() string {
	return fmt.Sprintf("fetch %s from %s: %v", e.Asset, e.URL, e.Err)
}

func (e *AssetFetchError) Unwrap() error {
	return e.Err
}

// ObjectStore is the subset of the S3 layer the render flow needs. Tests
// substitute an in-memory double.
type ObjectStore interface {
	StoreRender(ctx context.Context, ext, contentType string, body []byte) (*storage.StoredObject, error)
	PresignGet(ctx context.Context, objectURLOrKey string, expiry time.Duration) (string, error)
}

// RenderRequest names the four catalog rows and the free text for one sign.
type RenderRequest struct {
	ShapeID           uint
	ImageID           uint
	TextColorID       uint
	BackgroundColorID uint
	Text              string
	Format            render.Format
}

// RenderAssets is the resolved input to the compositor: two asset URLs and
// two hex colors.
type RenderAssets struct {
	ShapeURL      string
	OverlayURL    string
	TextHex       string
	BackgroundHex string
}

// RenderResult is an encoded sign image.
type RenderResult struct {
	Data        []byte
	ContentType string
	Format      render.Format
}

// StoredRender is a persisted sign image addressable by URL.
type StoredRender struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Format   string `json:"format"`
}

type RenderService interface {
	// Resolve looks up all four catalog references. It fails closed: any
	// missing row, including a shape without artwork, aborts with an error
	// naming the offending reference.
	Resolve(shapeID, imageID, textColorID, backgroundColorID uint) (*RenderAssets, error)

	// Render produces the composed sign image. The shape SVG is recolored
	// with the background color and scaled to the full canvas; the overlay
	// is recolored with the text color and centered with a vertical bias;
	// the caption and its Braille transliteration are drawn on top.
	Render(ctx context.Context, req RenderRequest) (*RenderResult, error)

	// RenderAndStore renders and persists the result to object storage.
	RenderAndStore(ctx context.Context, req RenderRequest) (*StoredRender, error)

	// SignDownloadURL exchanges a stored object URL for a short-lived
	// presigned download link.
	SignDownloadURL(ctx context.Context, objectURL string) (string, error)
}

type renderService struct {
	catalogRepo repository.CatalogRepository
	fetcher     render.Fetcher
	compositor  *render.Compositor
	store       ObjectStore
	canvasSize  int
	overlaySize int
}

func NewRenderService(
	catalogRepo repository.CatalogRepository,
	fetcher render.Fetcher,
	compositor *render.Compositor,
	store ObjectStore,
	canvasSize, overlaySize int,
) RenderService {
	return &renderService{
		catalogRepo: catalogRepo,
		fetcher:     fetcher,
		compositor:  compositor,
		store:       store,
		canvasSize:  canvasSize,
		overlaySize: overlaySize,
	}
}

func (s *renderService) Resolve(shapeID, imageID, textColorID, backgroundColorID uint) (*RenderAssets, error) {
	shape, err := s.catalogRepo.FindShapeByID(shapeID)
	if err != nil {
		return nil, catalogLookupError(err, OptionShape, shapeID)
	}
	if shape.Image == nil || *shape.Image == "" {
		return nil, &ShapeArtworkError{ID: shapeID}
	}

	image, err := s.catalogRepo.FindImageByID(imageID)
	if err != nil {
		return nil, catalogLookupError(err, OptionImage, imageID)
	}

	textColor, err := s.catalogRepo.FindColorByID(textColorID)
	if err != nil {
		return nil, catalogLookupError(err, OptionTextColor, textColorID)
	}

	backgroundColor, err := s.catalogRepo.FindColorByID(backgroundColorID)
	if err != nil {
		return nil, catalogLookupError(err, OptionBackgroundColor, backgroundColorID)
	}

	return &RenderAssets{
		ShapeURL:      *shape.Image,
		OverlayURL:    image.ImageURL,
		TextHex:       textColor.HexValue,
		BackgroundHex: backgroundColor.HexValue,
	}, nil
}

func (s *renderService) Render(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	assets, err := s.Resolve(req.ShapeID, req.ImageID, req.TextColorID, req.BackgroundColorID)
	if err != nil {
		return nil, err
	}

	logger.Debug("Rendering sign", map[string]interface{}{
		"shape_id": req.ShapeID,
		"image_id": req.ImageID,
		"format":   string(req.Format),
	})

	background, err := s.fetchLayer(ctx, "shape", assets.ShapeURL, assets.BackgroundHex, s.canvasSize)
	if err != nil {
		return nil, err
	}
	overlay, err := s.fetchLayer(ctx, "overlay", assets.OverlayURL, assets.TextHex, s.overlaySize)
	if err != nil {
		return nil, err
	}

	layer := render.TextLayer{
		Text:    req.Text,
		Braille: braille.Transliterate(req.Text),
		Hex:     assets.TextHex,
	}
	data, err := s.compositor.Compose(background, overlay, layer, req.Format)
	if err != nil {
		return nil, fmt.Errorf("compose sign: %w", err)
	}

	return &RenderResult{
		Data:        data,
		ContentType: req.Format.ContentType(),
		Format:      req.Format,
	}, nil
}

func (s *renderService) RenderAndStore(ctx context.Context, req RenderRequest) (*StoredRender, error) {
	result, err := s.Render(ctx, req)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.StoreRender(ctx, result.Format.Ext(), result.ContentType, result.Data)
	if err != nil {
		return nil, fmt.Errorf("store render: %w", err)
	}

	logger.Info("Sign rendered and stored", map[string]interface{}{
		"filename": stored.Filename,
		"format":   string(result.Format),
	})
	return &StoredRender{
		URL:      stored.URL,
		Filename: stored.Filename,
		Format:   string(result.Format),
	}, nil
}

func (s *renderService) SignDownloadURL(ctx context.Context, objectURL string) (string, error) {
	return s.store.PresignGet(ctx, objectURL, signedURLExpiry)
}

// fetchLayer downloads one asset and turns it into a square raster of the
// requested size. SVG assets are recolored before rasterizing; raster
// assets are scaled as-is.
func (s *renderService) fetchLayer(ctx context.Context, name, url, hex string, size int) (image.Image, error) {
	data, contentType, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, &AssetFetchError{Asset: name, URL: url, Err: err}
	}
	if render.IsSVG(data, contentType) {
		data = []byte(render.Recolor(string(data), hex))
	}
	img, err := render.RasterizeLayer(data, contentType, size, size)
	if err != nil {
		return nil, fmt.Errorf("rasterize %s: %w", name, err)
	}
	return img, nil
}
