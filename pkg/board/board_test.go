package board

import (
	"strings"
	"testing"

	"github.com/matzehuels/tileboard/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		position   string
		wantWidth  int
		wantHeight int
		wantRows   []string
	}{
		{
			name:       "empty chess board",
			position:   "8/8/8/8/8/8/8/8",
			wantWidth:  8,
			wantHeight: 8,
			wantRows:   []string{"        ", "        ", "        ", "        ", "        ", "        ", "        ", "        "},
		},
		{
			name:       "kings",
			position:   "k7/8/7K",
			wantWidth:  8,
			wantHeight: 3,
			wantRows:   []string{"k       ", "        ", "       K"},
		},
		{
			name:       "ragged rows padded with holes",
			position:   "3/5/3",
			wantWidth:  5,
			wantHeight: 3,
			wantRows:   []string{"   00", "     ", "   00"},
		},
		{
			name:       "explicit holes",
			position:   "0p0/1P1",
			wantWidth:  3,
			wantHeight: 2,
			wantRows:   []string{"0p0", " P "},
		},
		{
			name:       "consecutive digits",
			position:   "99",
			wantWidth:  18,
			wantHeight: 1,
			wantRows:   []string{strings.Repeat(" ", 18)},
		},
		{
			name:       "empty rows become holes",
			position:   "2//2",
			wantWidth:  2,
			wantHeight: 3,
			wantRows:   []string{"  ", "00", "  "},
		},
		{
			name:       "unknown symbols kept",
			position:   "x?*",
			wantWidth:  3,
			wantHeight: 1,
			wantRows:   []string{"x?*"},
		},
		{
			name:       "multibyte symbol is one cell",
			position:   "♔1/2",
			wantWidth:  2,
			wantHeight: 2,
			wantRows:   []string{"♔ ", "  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.position)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.position, err)
			}
			if b.Width() != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", b.Width(), tt.wantWidth)
			}
			if b.Height() != tt.wantHeight {
				t.Errorf("Height() = %d, want %d", b.Height(), tt.wantHeight)
			}
			rows := b.Rows()
			if len(rows) != len(tt.wantRows) {
				t.Fatalf("Rows() = %q, want %q", rows, tt.wantRows)
			}
			for i := range rows {
				if rows[i] != tt.wantRows[i] {
					t.Errorf("Rows()[%d] = %q, want %q", i, rows[i], tt.wantRows[i])
				}
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, position := range []string{"", "/", "///"} {
		_, err := Parse(position)
		if err == nil {
			t.Errorf("Parse(%q) expected error", position)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidNotation) {
			t.Errorf("Parse(%q) code = %v, want %v", position, errors.GetCode(err), errors.ErrCodeInvalidNotation)
		}
	}
}

func TestParseRowsEqualWidth(t *testing.T) {
	positions := []string{
		"a", "1", "0", "/a", "a/", "a//", "k7/8/8/8/8/8/8/7K",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"3/12/1/0/x", "00/9a9/b",
	}
	for _, position := range positions {
		b, err := Parse(position)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", position, err)
		}
		for i, row := range b.Rows() {
			if n := len([]rune(row)); n != b.Width() {
				t.Errorf("Parse(%q) row %d has %d cells, want %d", position, i, n, b.Width())
			}
		}
		if b.Width() < 1 || b.Height() < 1 {
			t.Errorf("Parse(%q) = %dx%d, want non-empty", position, b.Width(), b.Height())
		}
	}
}

func TestAt(t *testing.T) {
	b, err := Parse("k7/8/8/8/8/8/8/7K")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.At(0, 0); got != 'k' {
		t.Errorf("At(0, 0) = %q, want 'k'", got)
	}
	if got := b.At(7, 7); got != 'K' {
		t.Errorf("At(7, 7) = %q, want 'K'", got)
	}
	if got := b.At(3, 4); got != Blank {
		t.Errorf("At(3, 4) = %q, want blank", got)
	}
}

func TestRowsIsACopy(t *testing.T) {
	b, _ := Parse("k1")
	rows := b.Rows()
	rows[0] = "xx"
	if got := b.Rows()[0]; got != "k " {
		t.Errorf("board mutated through Rows(): %q", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		position string
		want     string
	}{
		{"8/8", "8/8"},
		{"k7/8/7K", "k7/8/7K"},
		{"3/5/3", "300/5/300"},
		{"99", "99"},
	}
	for _, tt := range tests {
		b, err := Parse(tt.position)
		if err != nil {
			t.Fatal(err)
		}
		if got := b.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.position, got, tt.want)
		}
		again, err := Parse(b.String())
		if err != nil {
			t.Fatal(err)
		}
		if strings.Join(again.Rows(), "/") != strings.Join(b.Rows(), "/") {
			t.Errorf("reparsing %q changed the board", b.String())
		}
	}
}

func TestParseFEN(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if b.Width() != 8 || b.Height() != 8 {
		t.Fatalf("ParseFEN size = %dx%d, want 8x8", b.Width(), b.Height())
	}
	if got := b.At(4, 4); got != 'P' {
		t.Errorf("At(4, 4) = %q, want 'P'", got)
	}
	if got := b.At(6, 4); got != Blank {
		t.Errorf("At(6, 4) = %q, want blank", got)
	}
	if got := b.At(0, 4); got != 'k' {
		t.Errorf("At(0, 4) = %q, want 'k'", got)
	}
}

func TestParseFENInvalid(t *testing.T) {
	for _, fen := range []string{"not a fen", "8/8 w - - 0 1", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"} {
		_, err := ParseFEN(fen)
		if err == nil {
			t.Errorf("ParseFEN(%q) expected error", fen)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidNotation) {
			t.Errorf("ParseFEN(%q) code = %v, want %v", fen, errors.GetCode(err), errors.ErrCodeInvalidNotation)
		}
	}
}
