package render

import (
	"bytes"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Geometry of the composite, relative to the background canvas.
const (
	textAnchorY    = 0.70 // custom text baseline anchor
	brailleAnchorY = 0.80 // Braille line anchor, directly beneath
	textPoints     = 48.0
	braillePoints  = 32.0

	// Braille cell geometry, in pixels, derived from the point size.
	brailleCellWidth  = braillePoints * 0.6
	brailleCellHeight = braillePoints
	brailleDotRadius  = braillePoints * 0.09
)

// TextLayer describes the two centered text lines stamped over the
// composite: the literal custom text and its Braille transliteration.
type TextLayer struct {
	Text    string
	Braille string
	Hex     string
}

// Compositor layers a background shape, a centered overlay, and a text layer
// into one raster image. Output is deterministic for identical inputs: no
// timestamps or randomness enter the pipeline, so composites can be cached
// and compared byte-for-byte.
type Compositor struct {
	overlayOffsetY int

	textFace ggtext.Face
}

// NewCompositor builds a compositor with the given extra vertical bias for
// the overlay. fontPath optionally overrides the built-in Go Regular face
// used for the custom text line; the Braille line is drawn as raw dot
// patterns and does not depend on the font.
func NewCompositor(overlayOffsetY int, fontPath string) (*Compositor, error) {
	var (
		source *ggtext.FontSource
		err    error
	)
	if fontPath != "" {
		source, err = ggtext.NewFontSourceFromFile(fontPath)
	} else {
		source, err = ggtext.NewFontSource(goregular.TTF)
	}
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	return &Compositor{
		overlayOffsetY: overlayOffsetY,
		textFace:       source.Face(textPoints),
	}, nil
}

// Compose layers the rasters in fixed z-order: background at the bottom, the
// overlay centered over it (with the configured vertical bias), and the text
// layer across the whole canvas on top. The order is part of the contract;
// reordering changes the visible output.
func (c *Compositor) Compose(background, overlay image.Image, layer TextLayer, format Format) ([]byte, error) {
	bg := background.Bounds()
	ov := overlay.Bounds()

	dc := gg.NewContext(bg.Dx(), bg.Dy())
	dc.DrawImage(gg.ImageBufFromImage(background), 0, 0)

	left := (bg.Dx() - ov.Dx()) / 2
	top := (bg.Dy()-ov.Dy())/2 + c.overlayOffsetY
	dc.DrawImage(gg.ImageBufFromImage(overlay), float64(left), float64(top))

	text, err := c.renderTextLayer(bg.Dx(), bg.Dy(), layer)
	if err != nil {
		return nil, err
	}
	dc.DrawImage(gg.ImageBufFromImage(text), 0, 0)

	var buf bytes.Buffer
	if err := Encode(&buf, dc.Image(), format); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// renderTextLayer draws the two text lines onto their own transparent canvas
// sized to exactly match the background raster.
func (c *Compositor) renderTextLayer(width, height int, layer TextLayer) (image.Image, error) {
	dc := gg.NewContext(width, height)
	if layer.Text == "" {
		return dc.Image(), nil
	}

	dc.SetHexColor(layer.Hex)

	cx := float64(width) / 2
	dc.SetFont(c.textFace)
	dc.DrawStringAnchored(layer.Text, cx, float64(height)*textAnchorY, 0.5, 0.5)

	if layer.Braille != "" {
		if err := drawBrailleLine(dc, layer.Braille, cx, float64(height)*brailleAnchorY); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

// brailleDotPos maps the bit index of a Braille pattern (rune offset from
// U+2800) to its column and row inside the 2x4 cell.
var brailleDotPos = [8][2]float64{
	{0, 0}, {0, 1}, {0, 2}, // dots 1-3, left column
	{1, 0}, {1, 1}, {1, 2}, // dots 4-6, right column
	{0, 3}, {1, 3}, // dots 7-8, bottom row
}

// drawBrailleLine stamps each Braille cell as filled dots, centered
// horizontally on cx and vertically on cy. Drawing the patterns directly
// keeps the line legible with any text font, since most faces carry no
// glyphs for the Braille block.
func drawBrailleLine(dc *gg.Context, line string, cx, cy float64) error {
	cells := []rune(line)
	lineWidth := float64(len(cells)) * brailleCellWidth
	originX := cx - lineWidth/2
	originY := cy - brailleCellHeight/2

	colStep := brailleCellWidth / 2
	rowStep := brailleCellHeight / 4

	for i, r := range cells {
		if r < 0x2800 || r > 0x28FF {
			continue // passthrough runes keep their cell slot blank
		}
		bits := uint8(r - 0x2800)
		cellX := originX + float64(i)*brailleCellWidth
		for bit, pos := range brailleDotPos {
			if bits&(1<<bit) == 0 {
				continue
			}
			x := cellX + (pos[0]+0.5)*colStep
			y := originY + (pos[1]+0.5)*rowStep
			dc.DrawCircle(x, y, brailleDotRadius)
		}
	}
	return dc.Fill()
}
