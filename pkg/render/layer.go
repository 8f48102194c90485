package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/tileboard/pkg/board"
	"github.com/matzehuels/tileboard/pkg/coord"
	"github.com/matzehuels/tileboard/pkg/errors"
)

// Layer is one step of the diagram. Layers draw in the order returned by
// [Layers]; each one paints over everything drawn before it.
type Layer interface {
	// Name identifies the layer in logs.
	Name() string
	// Draw paints the layer onto dc.
	Draw(dc *gg.Context, s *Scene) error
}

// Layers returns the enabled layers in drawing order.
func Layers(o Options) []Layer {
	var layers []Layer
	if o.OuterOutline {
		layers = append(layers, OuterOutline{Color: o.OuterOutlineColor})
	}
	if o.Border {
		layers = append(layers, Border{Color: o.BorderColor, FontColor: o.BorderFontColor, Uppercase: o.BorderUppercase})
	}
	if o.InnerOutline {
		layers = append(layers, InnerOutline{Color: o.InnerOutlineColor})
	}
	if o.Holes {
		layers = append(layers, Holes{Color: o.HoleColor})
	}
	if o.Checkerboard {
		layers = append(layers, Checkerboard{Light: o.LightColor, Dark: o.DarkColor})
	}
	if o.Pieces {
		layers = append(layers, Pieces{})
	}
	if len(o.Crosses) > 0 {
		layers = append(layers, Crosses{Positions: o.Crosses, Color: o.CrossColor})
	}
	if len(o.Dots) > 0 {
		layers = append(layers, Dots{Positions: o.Dots, Color: o.DotColor})
	}
	return layers
}

// OuterOutline frames the whole canvas.
type OuterOutline struct {
	Color color.Color
}

func (OuterOutline) Name() string { return "outer-outline" }

func (l OuterOutline) Draw(dc *gg.Context, s *Scene) error {
	Frame(dc, s.Geometry.OuterRect(), s.Geometry.OuterOutline, l.Color)
	return nil
}

// Border fills the coordinate band and labels every column and row on both
// sides of the board.
type Border struct {
	Color     color.Color
	FontColor color.Color
	Uppercase bool
}

func (Border) Name() string { return "border" }

func (l Border) Draw(dc *gg.Context, s *Scene) error {
	g := s.Geometry
	Frame(dc, g.BorderRect(), g.Border, l.Color)

	if s.Face != nil {
		dc.SetFontFace(s.Face)
	}
	dc.SetColor(l.FontColor)

	for col := range g.Columns {
		label := coord.Encode(col)
		if l.Uppercase {
			label = strings.ToUpper(label)
		}
		top, bottom := g.ColumnLabelCenters(col)
		dc.DrawStringAnchored(label, top[0], top[1], 0.5, 0.5)
		dc.DrawStringAnchored(label, bottom[0], bottom[1], 0.5, 0.5)
	}
	for row := range g.Rows {
		label := coord.RowLabel(row, g.Rows)
		left, right := g.RowLabelCenters(row)
		dc.DrawStringAnchored(label, left[0], left[1], 0.5, 0.5)
		dc.DrawStringAnchored(label, right[0], right[1], 0.5, 0.5)
	}
	return nil
}

// InnerOutline frames the board inside the border.
type InnerOutline struct {
	Color color.Color
}

func (InnerOutline) Name() string { return "inner-outline" }

func (l InnerOutline) Draw(dc *gg.Context, s *Scene) error {
	Frame(dc, s.Geometry.InnerRect(), s.Geometry.InnerOutline, l.Color)
	return nil
}

// Holes fills every hole cell.
type Holes struct {
	Color color.Color
}

func (Holes) Name() string { return "holes" }

func (l Holes) Draw(dc *gg.Context, s *Scene) error {
	dc.SetColor(l.Color)
	for cell := range s.Board.Cells() {
		if board.IsHole(cell.Symbol) {
			fillRect(dc, s.Geometry.CellRect(cell.Row, cell.Col))
		}
	}
	dc.Fill()
	return nil
}

// Checkerboard colors every non-hole cell, Light when row+col is even.
type Checkerboard struct {
	Light color.Color
	Dark  color.Color
}

func (Checkerboard) Name() string { return "checkerboard" }

func (l Checkerboard) Draw(dc *gg.Context, s *Scene) error {
	for cell := range s.Board.Squares() {
		if (cell.Row+cell.Col)%2 == 0 {
			dc.SetColor(l.Light)
		} else {
			dc.SetColor(l.Dark)
		}
		fillRect(dc, s.Geometry.CellRect(cell.Row, cell.Col))
		dc.Fill()
	}
	return nil
}

// Pieces composites the sprite of every piece onto its cell.
type Pieces struct{}

func (Pieces) Name() string { return "pieces" }

func (Pieces) Draw(dc *gg.Context, s *Scene) error {
	tile := s.Geometry.Tile
	scaled := make(map[rune]image.Image)

	for cell := range s.Board.Pieces() {
		img, ok := scaled[cell.Symbol]
		if !ok {
			sprite, found := s.Tiles.Sprite(cell.Symbol)
			if !found {
				return errors.New(errors.ErrCodeAssetLoad, "no sprite for: %c", cell.Symbol)
			}
			img = sprite.Image
			if b := img.Bounds(); b.Dx() != tile || b.Dy() != tile {
				img = imaging.Resize(img, tile, tile, imaging.Lanczos)
			}
			scaled[cell.Symbol] = img
		}
		r := s.Geometry.CellRect(cell.Row, cell.Col)
		dc.DrawImage(img, r.Min.X, r.Min.Y)
	}
	return nil
}

// Crosses draws an X over each listed square.
type Crosses struct {
	Positions []string
	Color     color.Color
}

func (Crosses) Name() string { return "crosses" }

func (l Crosses) Draw(dc *gg.Context, s *Scene) error {
	g := s.Geometry
	inset := float64(g.Tile) / 4

	dc.SetColor(l.Color)
	dc.SetLineWidth(float64(max(g.Tile/16, 1)))
	dc.SetLineCap(gg.LineCapRound)
	for _, pos := range l.Positions {
		row, col, err := coord.Resolve(pos, g.Columns, g.Rows)
		if err != nil {
			return err
		}
		r := g.CellRect(row, col)
		x0, y0 := float64(r.Min.X)+inset, float64(r.Min.Y)+inset
		x1, y1 := float64(r.Max.X)-inset, float64(r.Max.Y)-inset
		dc.DrawLine(x0, y0, x1, y1)
		dc.DrawLine(x0, y1, x1, y0)
		dc.Stroke()
	}
	return nil
}

// Dots draws a filled circle in the middle of each listed square.
type Dots struct {
	Positions []string
	Color     color.Color
}

func (Dots) Name() string { return "dots" }

func (l Dots) Draw(dc *gg.Context, s *Scene) error {
	g := s.Geometry
	radius := float64(max(g.Tile/6, 1))

	dc.SetColor(l.Color)
	for _, pos := range l.Positions {
		row, col, err := coord.Resolve(pos, g.Columns, g.Rows)
		if err != nil {
			return err
		}
		x, y := g.CellCenter(row, col)
		dc.DrawCircle(x, y, radius)
		dc.Fill()
	}
	return nil
}

// Frame draws a band of the given thickness just inside rect: four filled
// rectangles for the top, bottom, left and right sides. The corners are
// covered twice.
func Frame(dc *gg.Context, rect image.Rectangle, thickness int, c color.Color) {
	if thickness <= 0 || rect.Empty() {
		return
	}
	w, h := rect.Dx(), rect.Dy()
	x, y := rect.Min.X, rect.Min.Y

	dc.SetColor(c)
	for _, band := range []image.Rectangle{
		image.Rect(x, y, x+w, y+thickness),
		image.Rect(x, y+h-thickness, x+w, y+h),
		image.Rect(x, y, x+thickness, y+h),
		image.Rect(x+w-thickness, y, x+w, y+h),
	} {
		fillRect(dc, band)
		dc.Fill()
	}
}

func fillRect(dc *gg.Context, r image.Rectangle) {
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}

func layerError(l Layer, err error) error {
	return fmt.Errorf("%s: %w", l.Name(), err)
}
