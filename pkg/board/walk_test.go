package board

import (
	"slices"
	"testing"
)

func collect(b *Board, f Filter) []Cell {
	var out []Cell
	for c := range Walk(b, f) {
		out = append(out, c)
	}
	return out
}

func TestWalk(t *testing.T) {
	b, err := Parse("k0/1K")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		filter Filter
		want   []Cell
	}{
		{
			name:   "all cells",
			filter: Filter{},
			want:   []Cell{{'k', 0, 0}, {'0', 0, 1}, {' ', 1, 0}, {'K', 1, 1}},
		},
		{
			name:   "skip holes",
			filter: Filter{SkipHoles: true},
			want:   []Cell{{'k', 0, 0}, {' ', 1, 0}, {'K', 1, 1}},
		},
		{
			name:   "skip blanks",
			filter: Filter{SkipBlanks: true},
			want:   []Cell{{'k', 0, 0}, {'0', 0, 1}, {'K', 1, 1}},
		},
		{
			name:   "pieces only",
			filter: Filter{SkipHoles: true, SkipBlanks: true},
			want:   []Cell{{'k', 0, 0}, {'K', 1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(b, tt.filter)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Walk() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalkRestartable(t *testing.T) {
	b, _ := Parse("k7/8/8/8/8/8/8/7K")
	seq := b.Pieces()

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second walk = %v, want %v", second, first)
	}
	want := []Cell{{'k', 0, 0}, {'K', 7, 7}}
	if !slices.Equal(first, want) {
		t.Errorf("Pieces() = %v, want %v", first, want)
	}
}

func TestWalkEarlyStop(t *testing.T) {
	b, _ := Parse("8/8")
	n := 0
	for range b.Cells() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("visited %d cells, want 3", n)
	}
}

func TestSquaresCount(t *testing.T) {
	b, _ := Parse("3/5/3")
	n := 0
	for c := range b.Squares() {
		if IsHole(c.Symbol) {
			t.Fatalf("Squares() yielded hole at (%d, %d)", c.Row, c.Col)
		}
		n++
	}
	if n != 11 {
		t.Errorf("Squares() yielded %d cells, want 11", n)
	}
}

func TestSymbols(t *testing.T) {
	b, _ := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	want := []rune("rnbqkpPRNBQK")
	if got := b.Symbols(); !slices.Equal(got, want) {
		t.Errorf("Symbols() = %q, want %q", string(got), string(want))
	}

	empty, _ := Parse("8/8")
	if got := empty.Symbols(); len(got) != 0 {
		t.Errorf("Symbols() on empty board = %q, want none", string(got))
	}
}
