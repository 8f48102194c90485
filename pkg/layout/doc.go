// Package layout computes the pixel geometry of a board diagram.
//
// # Layers
//
// A diagram is a stack of nested rectangles. From the outside in:
//
//	┌──────────────────────────────┐ outer outline
//	│ ┌──────────────────────────┐ │ coordinate border (labels)
//	│ │ ┌──────────────────────┐ │ │ inner outline
//	│ │ │                      │ │ │
//	│ │ │      board area      │ │ │ tile × columns by tile × rows
//	│ │ │                      │ │ │
//	│ │ └──────────────────────┘ │ │
//	│ └──────────────────────────┘ │
//	└──────────────────────────────┘
//
// Each band is optional. A disabled band has zero thickness, so the bands
// inside it move outwards and no gap is left. Every band is added on both
// sides of both axes, which keeps the board area centered.
//
// # Sizes
//
// Outline thickness scales with the tile size (1px per 100px of tile, at
// least 1px). The border must fit the widest label plus 10px of padding and
// is never thinner than half a tile. Label widths come from a [TextMeasurer],
// normally a font face loaded at [BorderFontSize].
//
// [Compute] has no side effects and does not touch any imaging backend.
package layout
