package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ReadJSON decodes a layout document from r.
//
// ReadJSON returns an error if the JSON is malformed, or if the board rows
// disagree with the geometry's column and row counts. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := doc.Geometry
	if len(doc.Board) != g.Rows {
		return nil, fmt.Errorf("board has %d rows, geometry has %d", len(doc.Board), g.Rows)
	}
	for i, row := range doc.Board {
		if n := utf8.RuneCountInString(row); n != g.Columns {
			return nil, fmt.Errorf("row %d has %d cells, geometry has %d columns", i, n, g.Columns)
		}
	}
	for _, p := range doc.Pieces {
		if p.Row < 0 || p.Row >= g.Rows || p.Col < 0 || p.Col >= g.Columns {
			return nil, fmt.Errorf("piece %s at %s: outside the board", p.Symbol, p.Square)
		}
	}
	if doc.Pieces == nil {
		doc.Pieces = []Piece{}
	}
	return &doc, nil
}

// ImportJSON reads a layout document from the JSON file at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
