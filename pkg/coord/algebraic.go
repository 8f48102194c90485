package coord

import (
	"regexp"
	"strconv"

	"github.com/matzehuels/tileboard/pkg/errors"
)

// algebraicRegex matches a column label followed by a row number.
var algebraicRegex = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// Resolve maps an algebraic position such as "a1" to grid indexes on a board
// of the given size. Row 0 is the top row, so "a1" on an 8-row board is
// (7, 0) and "a8" is (0, 0).
func Resolve(pos string, cols, rows int) (row, col int, err error) {
	m := algebraicRegex.FindStringSubmatch(pos)
	if m == nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidPosition, "malformed position %q (want letters then digits, e.g. a1)", pos)
	}

	col, err = Decode(m[1])
	if err != nil {
		return 0, 0, err
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidPosition, err, "invalid row number in %q", pos)
	}
	row = rows - number

	if col >= cols || row < 0 || row >= rows {
		return 0, 0, errors.New(errors.ErrCodeInvalidPosition, "position %q is outside the %dx%d board", pos, cols, rows)
	}
	return row, col, nil
}

// Square is the inverse of [Resolve]: it returns the lowercase algebraic
// position of a grid cell on a board with the given number of rows.
func Square(row, col, rows int) string {
	return Encode(col) + strconv.Itoa(rows-row)
}

// RowLabel returns the border label of a grid row. The top row is labelled
// with the board height and labels count down to 1 at the bottom.
func RowLabel(row, rows int) string {
	return strconv.Itoa(rows - row)
}
