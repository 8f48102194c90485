package pipeline

import (
	"strings"

	"github.com/matzehuels/tileboard/pkg/board"
)

// chessFENFields is the field count of a complete chess FEN record.
const chessFENFields = 6

// ParseBoard reads a position. A position shaped like a complete chess FEN
// record (six space-separated fields, side to move "w" or "b") is read with
// the chess parser; when that parser rejects it, or for any other input, the
// string is extended FEN as given. Spaces are blank squares there, so the
// position is never trimmed.
func ParseBoard(position string) (*board.Board, error) {
	if looksLikeChessFEN(position) {
		if b, err := board.ParseFEN(position); err == nil {
			return b, nil
		}
	}
	return board.Parse(position)
}

func looksLikeChessFEN(position string) bool {
	fields := strings.Split(position, " ")
	if len(fields) != chessFENFields {
		return false
	}
	for _, f := range fields {
		if f == "" {
			return false
		}
	}
	return fields[1] == "w" || fields[1] == "b"
}
