// Package render draws board diagrams onto an RGBA canvas.
//
// # Overview
//
// A diagram is a stack of [Layer] values drawn in a fixed order onto a canvas
// sized by a [layout.Geometry]. The canvas starts fully transparent; anything
// no layer paints stays transparent in the output.
//
// [Layers] builds the stack from [Options]:
//
//  1. [OuterOutline]: frame around the whole canvas
//  2. [Border]: coordinate band with column and row labels
//  3. [InnerOutline]: frame between border and board
//  4. [Holes]: fill for hole cells
//  5. [Checkerboard]: alternating square colors
//  6. [Pieces]: sprites, alpha-composited over the squares
//  7. [Crosses] and [Dots]: markers at algebraic positions
//
// Disabled layers are simply absent from the stack; the geometry already
// closes up the space they would have taken.
//
// # Usage
//
//	opts := render.DefaultOptions()
//	geom, _ := layout.ForBoard(b, tiles.Size, opts.LayoutLayers(), render.Measurer(face))
//	img, err := render.Render(&render.Scene{
//	    Board:    b,
//	    Geometry: geom,
//	    Tiles:    tiles,
//	    Face:     face,
//	}, render.Layers(opts))
//
// Drawing uses [gg]. [EncodePNG] writes the finished canvas.
//
// [gg]: https://github.com/fogleman/gg
package render
