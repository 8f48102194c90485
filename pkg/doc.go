// Package pkg provides the libraries behind Tileboard board diagrams.
//
// # Overview
//
// Tileboard turns an extended FEN string into a PNG diagram: a grid of light
// and dark squares with holes, piece sprites, markers, and a coordinate
// border. The packages are layered bottom-up:
//
//  1. [errors] - Structured error codes shared by every stage
//  2. [coord] - Bijective base-26 column labels and algebraic squares
//  3. [board] - Notation parsing and board traversal
//  4. [fonts], [assets] - Sprite tilesets and the border font
//  5. [layout] - Pixel geometry of the bands around the board
//  6. [render] - Layered drawing onto an RGBA canvas
//  7. [cache], [io], [observability] - Caching, file output and hooks
//  8. [pipeline] - Orchestration (parse → assets → layout → render)
//
// # Architecture
//
//	Position string
//	     ↓
//	[board] (parse, walk cells)
//	     ↓
//	[assets] (sprites for the symbols on the board, border font)
//	     ↓
//	[layout] (bands, offsets, canvas size)
//	     ↓
//	[render] (layers drawn in order) → PNG
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Position: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
//	    Dots:     []string{"e4"},
//	})
//	if err != nil {
//	    return err
//	}
//	return io.WriteFileAtomic("board.png", result.PNG, 0o644)
//
// [errors]: github.com/matzehuels/tileboard/pkg/errors
// [coord]: github.com/matzehuels/tileboard/pkg/coord
// [board]: github.com/matzehuels/tileboard/pkg/board
// [fonts]: github.com/matzehuels/tileboard/pkg/fonts
// [assets]: github.com/matzehuels/tileboard/pkg/assets
// [layout]: github.com/matzehuels/tileboard/pkg/layout
// [render]: github.com/matzehuels/tileboard/pkg/render
// [cache]: github.com/matzehuels/tileboard/pkg/cache
// [io]: github.com/matzehuels/tileboard/pkg/io
// [observability]: github.com/matzehuels/tileboard/pkg/observability
// [pipeline]: github.com/matzehuels/tileboard/pkg/pipeline
package pkg
