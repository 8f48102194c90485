// Package board holds the board model parsed from extended-FEN notation.
//
// # Notation
//
// A position lists rows from top to bottom, separated by '/'. Within a row:
//
//   - digits 1-9 stand for that many blank squares,
//   - '0' is a hole (a cell that is not part of the board),
//   - any other character is a piece mnemonic, case-sensitive.
//
// Rows may have different lengths; shorter rows are padded on the right with
// holes so the board is always a rectangle:
//
//	b, _ := board.Parse("3/5/3")
//	b.Width()  // 5
//	b.Height() // 3
//	b.Rows()   // ["   00", "     ", "   00"]
//
// A full chess FEN (with side to move, castling and clocks) can be parsed
// with [ParseFEN], which validates it as a chess position first.
//
// # Walking
//
// [Walk] yields cells in row-major order with optional filters for holes and
// blanks. The sequence is lazy and can be ranged over any number of times.
package board
