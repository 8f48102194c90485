package layout

import "image"

// Geometry is the pixel layout of a diagram. All bands are symmetric: a
// band's thickness applies to all four sides.
type Geometry struct {
	Tile    int `json:"tile"`
	Columns int `json:"columns"`
	Rows    int `json:"rows"`

	OuterOutline   int `json:"outer_outline"`
	Border         int `json:"border"`
	BorderFontSize int `json:"border_font_size,omitempty"`
	InnerOutline   int `json:"inner_outline"`

	OuterOffset  image.Point `json:"outer_offset"`
	BorderOffset image.Point `json:"border_offset"`
	InnerOffset  image.Point `json:"inner_offset"`
	BoardOffset  image.Point `json:"board_offset"`

	Width  int `json:"width"`
	Height int `json:"height"`
}

func offset(n int) image.Point { return image.Pt(n, n) }

// Bounds returns the whole canvas.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// OuterRect returns the outer edge of the outer outline.
func (g Geometry) OuterRect() image.Rectangle {
	return g.Bounds()
}

// BorderRect returns the outer edge of the coordinate border.
func (g Geometry) BorderRect() image.Rectangle {
	return g.Bounds().Inset(g.OuterOutline)
}

// InnerRect returns the outer edge of the inner outline.
func (g Geometry) InnerRect() image.Rectangle {
	return g.Bounds().Inset(g.OuterOutline + g.Border)
}

// BoardRect returns the area covered by tiles.
func (g Geometry) BoardRect() image.Rectangle {
	return image.Rectangle{
		Min: g.BoardOffset,
		Max: g.BoardOffset.Add(image.Pt(g.Tile*g.Columns, g.Tile*g.Rows)),
	}
}

// CellRect returns the tile at the given row and column.
func (g Geometry) CellRect(row, col int) image.Rectangle {
	origin := g.BoardOffset.Add(image.Pt(col*g.Tile, row*g.Tile))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(g.Tile, g.Tile))}
}

// CellCenter returns the center of a tile in canvas coordinates.
func (g Geometry) CellCenter(row, col int) (x, y float64) {
	r := g.CellRect(row, col)
	return float64(r.Min.X) + float64(g.Tile)/2, float64(r.Min.Y) + float64(g.Tile)/2
}

// ColumnLabelCenters returns the label anchor points for a column in the
// top and bottom border bands.
func (g Geometry) ColumnLabelCenters(col int) (top, bottom [2]float64) {
	x, _ := g.CellCenter(0, col)
	half := float64(g.Border) / 2
	top = [2]float64{x, float64(g.BorderOffset.Y) + half}
	bottom = [2]float64{x, float64(g.Height-g.OuterOutline-g.Border) + half}
	return top, bottom
}

// RowLabelCenters returns the label anchor points for a row in the left and
// right border bands.
func (g Geometry) RowLabelCenters(row int) (left, right [2]float64) {
	_, y := g.CellCenter(row, 0)
	half := float64(g.Border) / 2
	left = [2]float64{float64(g.BorderOffset.X) + half, y}
	right = [2]float64{float64(g.Width-g.OuterOutline-g.Border) + half, y}
	return left, right
}
