// Package io writes Tileboard output: PNG files and JSON layout documents.
//
// # Atomic Writes
//
// [WriteFileAtomic] writes to a uniquely named temporary file in the
// destination directory and renames it into place, so a failed or
// interrupted render never leaves a truncated PNG behind:
//
//	if err := io.WriteFileAtomic("board.png", pngBytes, 0644); err != nil {
//	    return err
//	}
//
// # Layout Documents
//
// A [Document] describes a computed diagram without its pixels: the board
// rows, the full [layout.Geometry], and the canvas rectangle of every piece.
// It is what `tileboard layout --json` prints, and is meant for tools that
// overlay their own drawing on a rendered board.
//
//	{
//	  "position": "k7/8/8/8/8/8/8/7K",
//	  "board": ["k       ", ...],
//	  "geometry": {"tile": 42, "columns": 8, "rows": 8, ...},
//	  "pieces": [
//	    {"symbol": "k", "square": "a8", "row": 0, "col": 0, "x": 23, "y": 23}
//	  ]
//	}
//
// Use [WriteJSON] / [ExportJSON] to write documents and [ReadJSON] /
// [ImportJSON] to read them back. Reading validates that the board rows agree
// with the geometry.
//
// [layout.Geometry]: github.com/matzehuels/tileboard/pkg/layout.Geometry
package io
