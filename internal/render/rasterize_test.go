package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rectSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
	`<rect x="0" y="0" width="100" height="100" fill="#ff0000"/></svg>`

func TestIsSVG(t *testing.T) {
	assert.True(t, IsSVG([]byte(rectSVG), ""))
	assert.True(t, IsSVG([]byte("<?xml version=\"1.0\"?>\n<svg/>"), ""))
	assert.True(t, IsSVG([]byte{0x89, 0x50}, "image/svg+xml"))
	assert.False(t, IsSVG([]byte{0x89, 0x50, 0x4e, 0x47}, "image/png"))
}

func TestRasterizeSVG_SizeAndColor(t *testing.T) {
	img, err := RasterizeSVG([]byte(rectSVG), 64, 64)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 64, bounds.Dx())
	assert.Equal(t, 64, bounds.Dy())

	// center pixel of a full-bleed red rect
	r, g, b, a := img.At(32, 32).RGBA()
	assert.EqualValues(t, 0xffff, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.EqualValues(t, 0xffff, a)
}

func TestScaleRaster(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := ScaleRaster(buf.Bytes(), 20, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	_, _, b, _ := img.At(10, 10).RGBA()
	assert.EqualValues(t, 0xffff, b)
}

func TestRasterizeLayer_Dispatch(t *testing.T) {
	// SVG path
	img, err := RasterizeLayer([]byte(rectSVG), "image/svg+xml", 32, 32)
	assert.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())

	// Raster path
	var buf bytes.Buffer
	png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)))
	img, err = RasterizeLayer(buf.Bytes(), "image/png", 32, 32)
	assert.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())

	// Garbage fails
	_, err = RasterizeLayer([]byte("not an image"), "application/octet-stream", 32, 32)
	assert.Error(t, err)
}
