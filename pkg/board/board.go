package board

import (
	"strings"

	"github.com/corentings/chess/v2"

	"github.com/matzehuels/tileboard/pkg/errors"
)

// Cell symbols with a fixed meaning. Any other character is a piece mnemonic.
const (
	Hole  rune = '0'
	Blank rune = ' '

	// RowSeparator separates rows in the notation.
	RowSeparator = '/'
)

// Board is a rectangular grid of cells. It is immutable once parsed.
type Board struct {
	cells  [][]rune
	width  int
	height int
}

// Parse builds a Board from an extended-FEN position.
// It fails with ErrCodeInvalidNotation when the position has no row content.
func Parse(position string) (*Board, error) {
	if strings.Trim(position, string(RowSeparator)) == "" {
		return nil, errors.New(errors.ErrCodeInvalidNotation, "empty FEN position")
	}

	rows := strings.Split(expandBlanks(position), string(RowSeparator))
	cells := make([][]rune, len(rows))

	width := 0
	for i, row := range rows {
		cells[i] = []rune(row)
		width = max(width, len(cells[i]))
	}
	for i, row := range cells {
		for len(row) < width {
			row = append(row, Hole)
		}
		cells[i] = row
	}

	return &Board{cells: cells, width: width, height: len(cells)}, nil
}

// ParseFEN builds a Board from a complete chess FEN such as
// "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1".
// The position is validated as legal chess notation before its piece
// placement is parsed.
func ParseFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNotation, err, "invalid chess FEN %q", fen)
	}
	game := chess.NewGame(opt)
	return Parse(game.Position().Board().String())
}

// expandBlanks replaces each digit 1-9 with that many blank cells.
// '0' is a hole marker and is left untouched.
func expandBlanks(position string) string {
	var sb strings.Builder
	sb.Grow(len(position))
	for _, r := range position {
		if r >= '1' && r <= '9' {
			sb.WriteString(strings.Repeat(string(Blank), int(r-'0')))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Rows returns the board rows, top to bottom.
func (b *Board) Rows() []string {
	out := make([]string, len(b.cells))
	for i, row := range b.cells {
		out[i] = string(row)
	}
	return out
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// At returns the symbol at the given row and column.
// It panics if the cell is outside the board.
func (b *Board) At(row, col int) rune { return b.cells[row][col] }

// IsHole reports whether a symbol marks a hole.
func IsHole(symbol rune) bool { return symbol == Hole }

// IsBlank reports whether a symbol marks an empty playable square.
func IsBlank(symbol rune) bool { return symbol == Blank }

// IsPiece reports whether a symbol is a piece mnemonic.
func IsPiece(symbol rune) bool { return !IsHole(symbol) && !IsBlank(symbol) }

// String returns the board in compact notation. Padding holes are written
// out, so parsing the result yields an equal board.
func (b *Board) String() string {
	var sb strings.Builder
	for i, row := range b.cells {
		if i > 0 {
			sb.WriteRune(RowSeparator)
		}
		run := 0
		for _, r := range row {
			if r == Blank {
				run++
				if run == 9 {
					sb.WriteByte('9')
					run = 0
				}
				continue
			}
			if run > 0 {
				sb.WriteByte(byte('0' + run))
				run = 0
			}
			sb.WriteRune(r)
		}
		if run > 0 {
			sb.WriteByte(byte('0' + run))
		}
	}
	return sb.String()
}
