package render

import (
	"bytes"
	"context"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/tileboard/pkg/assets"
	"github.com/matzehuels/tileboard/pkg/board"
	"github.com/matzehuels/tileboard/pkg/errors"
	"github.com/matzehuels/tileboard/pkg/layout"
)

// Scene is everything the layers draw from. It is read-only during a render.
type Scene struct {
	Board    *board.Board
	Geometry layout.Geometry
	// Tiles holds the piece sprites. It may be nil when no Pieces layer is
	// drawn.
	Tiles *assets.Tileset
	// Face sets the border labels. Nil selects the built-in bitmap face.
	Face font.Face
}

// Measurer adapts a font face to the layout engine. A nil face yields a nil
// measurer, which makes the layout engine estimate label widths.
func Measurer(face font.Face) layout.TextMeasurer {
	if face == nil {
		return nil
	}
	return assets.Measurer{Face: face}
}

// Render draws layers in order onto a transparent canvas of the scene's
// geometry. It stops at the first layer that fails.
func Render(s *Scene, layers []Layer) (*image.RGBA, error) {
	return RenderContext(context.Background(), s, layers)
}

// RenderContext is like [Render] but checks ctx between layers.
func RenderContext(ctx context.Context, s *Scene, layers []Layer) (*image.RGBA, error) {
	if s == nil || s.Board == nil {
		return nil, errors.New(errors.ErrCodeInternal, "render: scene has no board")
	}
	g := s.Geometry
	if g.Width <= 0 || g.Height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "canvas size must be positive: %dx%d", g.Width, g.Height)
	}

	canvas := image.NewRGBA(g.Bounds())
	dc := gg.NewContextForRGBA(canvas)
	for _, l := range layers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := l.Draw(dc, s); err != nil {
			return nil, layerError(l, err)
		}
	}
	return canvas, nil
}

// EncodePNG returns img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	dc, ok := contextFor(img)
	if !ok {
		dc = gg.NewContextForImage(img)
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "unable to encode png")
	}
	return buf.Bytes(), nil
}

func contextFor(img image.Image) (*gg.Context, bool) {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return gg.NewContextForRGBA(rgba), true
	}
	return nil, false
}
