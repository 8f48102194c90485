package board

import "iter"

// Cell is one square of a board, addressed from the top-left corner.
type Cell struct {
	Symbol rune
	Row    int
	Col    int
}

// Filter selects which cells a walk skips.
type Filter struct {
	SkipHoles  bool
	SkipBlanks bool
}

// Walk yields the cells of b in row-major order, top row first, skipping the
// cells excluded by f. It never modifies the board.
func Walk(b *Board, f Filter) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for row := 0; row < b.height; row++ {
			for col := 0; col < b.width; col++ {
				s := b.cells[row][col]
				if f.SkipHoles && IsHole(s) {
					continue
				}
				if f.SkipBlanks && IsBlank(s) {
					continue
				}
				if !yield(Cell{Symbol: s, Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// Cells yields every cell of the board.
func (b *Board) Cells() iter.Seq[Cell] { return Walk(b, Filter{}) }

// Squares yields every cell that is part of the board (no holes).
func (b *Board) Squares() iter.Seq[Cell] { return Walk(b, Filter{SkipHoles: true}) }

// Pieces yields every cell holding a piece.
func (b *Board) Pieces() iter.Seq[Cell] {
	return Walk(b, Filter{SkipHoles: true, SkipBlanks: true})
}

// Symbols returns the distinct piece mnemonics on the board in the order
// they first appear.
func (b *Board) Symbols() []rune {
	var out []rune
	seen := make(map[rune]bool)
	for c := range b.Pieces() {
		if !seen[c.Symbol] {
			seen[c.Symbol] = true
			out = append(out, c.Symbol)
		}
	}
	return out
}
