// Package coord converts between board grid indexes and the labels printed
// around a diagram.
//
// # Column Labels
//
// Columns are labelled with a bijective base-26 numeral over the letters
// a-z. Every non-negative integer has exactly one label, so boards wider than
// 26 columns keep unique, ordered labels:
//
//	0 → "a", 25 → "z", 26 → "aa", 51 → "az", 52 → "ba", 702 → "aaa"
//
// Plain positional base-26 cannot do this: with a = 0, "a" and "aa" would
// both mean zero. [Encode] and [Decode] are exact inverses.
//
// # Algebraic Positions
//
// A square is addressed by its column label followed by a 1-based row number
// counted from the bottom of the board, e.g. "a1" or "AB12". [Resolve] turns
// such a string into grid indexes (row 0 is the top row) and [Square] does
// the reverse.
package coord
