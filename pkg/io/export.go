package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/tileboard/pkg/board"
	"github.com/matzehuels/tileboard/pkg/coord"
	"github.com/matzehuels/tileboard/pkg/layout"
)

// Document is the JSON form of a laid-out diagram.
type Document struct {
	Position string          `json:"position"`
	Board    []string        `json:"board"`
	Geometry layout.Geometry `json:"geometry"`
	Pieces   []Piece         `json:"pieces"`
}

// Piece is a placed piece and the top-left corner of its tile on the canvas.
type Piece struct {
	Symbol string `json:"symbol"`
	Square string `json:"square"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// NewDocument describes b laid out with g.
func NewDocument(b *board.Board, g layout.Geometry) Document {
	doc := Document{
		Position: b.String(),
		Board:    b.Rows(),
		Geometry: g,
		Pieces:   []Piece{},
	}
	for cell := range b.Pieces() {
		r := g.CellRect(cell.Row, cell.Col)
		doc.Pieces = append(doc.Pieces, Piece{
			Symbol: string(cell.Symbol),
			Square: coord.Square(cell.Row, cell.Col, b.Height()),
			Row:    cell.Row,
			Col:    cell.Col,
			X:      r.Min.X,
			Y:      r.Min.Y,
		})
	}
	return doc
}

// WriteJSON encodes a document as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a document to a JSON file at path, atomically.
func ExportJSON(doc Document, path string) error {
	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		return err
	}
	return WriteFileAtomic(path, buf.Bytes(), 0644)
}
