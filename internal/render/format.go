package render

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Format is an output encoding for the composited image.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWEBP Format = "webp"
)

const jpegQuality = 90

// ParseFormat normalizes a caller-supplied format string. The empty string
// defaults to PNG; "jpg" is accepted as an alias for JPEG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "webp":
		return FormatWEBP, nil
	}
	return "", fmt.Errorf("unsupported output format %q", s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	return "image/" + string(f)
}

// Ext returns the file extension for the format, without a dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// Encode writes img to w in the given format. JPEG has no alpha channel, so
// transparent regions come out black; callers wanting a background should
// pick a shape that covers the canvas.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case FormatWEBP:
		return nativewebp.Encode(w, img, nil)
	}
	return fmt.Errorf("unsupported output format %q", f)
}
