package pipeline

import (
	"golang.org/x/image/font"

	"github.com/matzehuels/tileboard/pkg/board"
	"github.com/matzehuels/tileboard/pkg/layout"
	"github.com/matzehuels/tileboard/pkg/render"
)

// ComputeLayout lays out b at the given tile size, measuring labels with
// face. A nil face falls back to estimated label widths.
func ComputeLayout(b *board.Board, tile int, opts Options, face font.Face) (layout.Geometry, error) {
	return layout.ForBoard(b, tile, opts.LayoutLayers(), render.Measurer(face))
}
