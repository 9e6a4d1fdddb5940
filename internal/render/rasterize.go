package render

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// IsSVG sniffs whether an asset is an SVG document, either from its content
// type or from the leading bytes of the payload.
func IsSVG(data []byte, contentType string) bool {
	if strings.Contains(contentType, "image/svg") {
		return true
	}
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	return bytes.Contains(head, []byte("<svg"))
}

// RasterizeSVG renders an SVG document into an RGBA raster of exactly
// width×height pixels, scaling the document's viewbox to fit.
func RasterizeSVG(data []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return rgba, nil
}

// ScaleRaster decodes a raster asset (PNG, JPEG, GIF, or WEBP) and scales it
// to exactly width×height.
func ScaleRaster(data []byte, width, height int) (image.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst, nil
}

// RasterizeLayer converts an asset of either kind into a raster of the
// requested size.
func RasterizeLayer(data []byte, contentType string, width, height int) (image.Image, error) {
	if IsSVG(data, contentType) {
		return RasterizeSVG(data, width, height)
	}
	return ScaleRaster(data, width, height)
}
