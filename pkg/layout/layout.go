package layout

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/matzehuels/tileboard/pkg/board"
	"github.com/matzehuels/tileboard/pkg/coord"
	"github.com/matzehuels/tileboard/pkg/errors"
)

const (
	// MinBorderFontSize is the smallest font size used for border labels.
	MinBorderFontSize = 12

	// LabelPadding is added to the widest label when sizing the border.
	LabelPadding = 10

	// estimatedAdvance approximates a glyph's width as a fraction of the font
	// size when no measurer is available.
	estimatedAdvance = 0.6
)

// Layers selects the optional bands around the board.
type Layers struct {
	OuterOutline bool
	Border       bool
	InnerOutline bool
}

// AllLayers enables every band.
var AllLayers = Layers{OuterOutline: true, Border: true, InnerOutline: true}

// TextMeasurer reports the rendered width of a string in pixels.
type TextMeasurer interface {
	TextWidth(s string) int
}

// OutlineSize returns the outline thickness for a tile size.
// A 300px tile gets a 3px outline.
func OutlineSize(tile int) int {
	return max(tile/100, 1)
}

// BorderFontSize returns the label font size for a tile size.
func BorderFontSize(tile int) int {
	return max(tile/3, MinBorderFontSize)
}

// BorderSize returns the border thickness needed to fit the widest column
// and row labels of a cols×rows board. A nil measurer falls back to an
// estimate based on the font size.
func BorderSize(tile, cols, rows int, m TextMeasurer) int {
	colText := coord.Encode(cols - 1)
	rowText := strconv.Itoa(rows)

	width := func(s string) int {
		if m == nil {
			return int(math.Ceil(estimatedAdvance * float64(BorderFontSize(tile)) * float64(utf8.RuneCountInString(s))))
		}
		return m.TextWidth(s)
	}

	return max(tile/2, width(colText)+LabelPadding, width(rowText)+LabelPadding)
}

// Compute returns the geometry of a cols×rows board drawn with square tiles
// of the given size and the given bands enabled.
func Compute(cols, rows, tile int, layers Layers, m TextMeasurer) (Geometry, error) {
	if err := errors.ValidateTileSize(tile); err != nil {
		return Geometry{}, err
	}
	if cols <= 0 || rows <= 0 {
		return Geometry{}, errors.New(errors.ErrCodeInvalidSize, "board size must be positive, got %dx%d", cols, rows)
	}

	g := Geometry{
		Tile:    tile,
		Columns: cols,
		Rows:    rows,
	}

	if layers.OuterOutline {
		g.OuterOutline = OutlineSize(tile)
	}
	if layers.Border {
		g.BorderFontSize = BorderFontSize(tile)
		g.Border = BorderSize(tile, cols, rows, m)
	}
	if layers.InnerOutline {
		g.InnerOutline = OutlineSize(tile)
	}

	g.BorderOffset = offset(g.OuterOutline)
	g.InnerOffset = offset(g.OuterOutline + g.Border)
	g.BoardOffset = offset(g.OuterOutline + g.Border + g.InnerOutline)

	frame := 2 * (g.OuterOutline + g.Border + g.InnerOutline)
	g.Width = tile*cols + frame
	g.Height = tile*rows + frame

	return g, nil
}

// ForBoard computes the geometry for a parsed board.
func ForBoard(b *board.Board, tile int, layers Layers, m TextMeasurer) (Geometry, error) {
	return Compute(b.Width(), b.Height(), tile, layers, m)
}
