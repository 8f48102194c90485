package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"slices"
	"testing"

	"github.com/fogleman/gg"

	"github.com/matzehuels/tileboard/pkg/assets"
	"github.com/matzehuels/tileboard/pkg/board"
	"github.com/matzehuels/tileboard/pkg/errors"
	"github.com/matzehuels/tileboard/pkg/layout"
)

var (
	magenta = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	green   = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
)

// solidSprite returns a size×size sprite, fully c.
func solidSprite(symbol rune, size int, c color.Color) assets.Sprite {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return assets.Sprite{Symbol: symbol, Image: img}
}

// spotSprite returns a transparent size×size sprite with an opaque c square
// in the middle third.
func spotSprite(symbol rune, size int, c color.Color) assets.Sprite {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := size / 3; y < 2*size/3; y++ {
		for x := size / 3; x < 2*size/3; x++ {
			img.Set(x, y, c)
		}
	}
	return assets.Sprite{Symbol: symbol, Image: img}
}

func newScene(t *testing.T, position string, tile int, opts Options, sprites ...assets.Sprite) *Scene {
	t.Helper()
	b, err := board.Parse(position)
	if err != nil {
		t.Fatalf("Parse(%q): %v", position, err)
	}
	tiles, err := assets.NewTileset(sprites...)
	if err != nil {
		t.Fatalf("NewTileset: %v", err)
	}
	geom, err := layout.ForBoard(b, tile, opts.LayoutLayers(), nil)
	if err != nil {
		t.Fatalf("ForBoard: %v", err)
	}
	return &Scene{Board: b, Geometry: geom, Tiles: tiles}
}

func pixel(img *image.RGBA, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func cellPixel(img *image.RGBA, g layout.Geometry, row, col, dx, dy int) color.NRGBA {
	r := g.CellRect(row, col)
	return pixel(img, r.Min.X+dx, r.Min.Y+dy)
}

func TestRenderChessDiagram(t *testing.T) {
	opts := DefaultOptions()
	s := newScene(t, "k7/8/8/8/8/8/8/7K", 42, opts,
		solidSprite('k', 42, magenta),
		spotSprite('K', 42, green),
	)
	img, err := Render(s, Layers(opts))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	g := s.Geometry
	wantWidth := 42*8 + 2*g.OuterOutline + 2*g.Border + 2*g.InnerOutline
	if img.Bounds().Dx() != wantWidth || img.Bounds().Dy() != wantWidth {
		t.Fatalf("canvas = %v, want %dx%d", img.Bounds(), wantWidth, wantWidth)
	}

	var drawn []board.Cell
	for cell := range s.Board.Cells() {
		c := cellPixel(img, g, cell.Row, cell.Col, 21, 21)
		if c == magenta || c == green {
			drawn = append(drawn, cell)
		}
	}
	want := []board.Cell{{Symbol: 'k', Row: 0, Col: 0}, {Symbol: 'K', Row: 7, Col: 7}}
	if !slices.Equal(drawn, want) {
		t.Errorf("pieces drawn at %v, want %v", drawn, want)
	}

	// The transparent part of K's sprite shows the square beneath.
	if got := cellPixel(img, g, 7, 7, 2, 2); got != DefaultLightSquareColor {
		t.Errorf("under K sprite = %v, want light square %v", got, DefaultLightSquareColor)
	}
}

func TestRenderBands(t *testing.T) {
	opts := DefaultOptions()
	s := newScene(t, "8/8/8/8/8/8/8/8", 42, opts)
	img, err := Render(s, Layers(opts))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	g := s.Geometry

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"outer outline corner", 0, 0, DefaultOutlineColor},
		{"outer outline far corner", g.Width - 1, g.Height - 1, DefaultOutlineColor},
		{"border corner", g.BorderOffset.X + 1, g.BorderOffset.Y + 1, DefaultBorderColor},
		{"inner outline", g.InnerOffset.X, g.InnerOffset.Y, DefaultOutlineColor},
		{"a8 square", g.BoardOffset.X + 21, g.BoardOffset.Y + 21, DefaultLightSquareColor},
		{"b8 square", g.BoardOffset.X + 42 + 21, g.BoardOffset.Y + 21, DefaultDarkSquareColor},
		{"a7 square", g.BoardOffset.X + 21, g.BoardOffset.Y + 42 + 21, DefaultDarkSquareColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pixel(img, tt.x, tt.y); got != tt.want {
				t.Errorf("pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRenderBorderLabels(t *testing.T) {
	opts := DefaultOptions()
	s := newScene(t, "8/8/8/8/8/8/8/8", 42, opts)
	img, err := Render(s, Layers(opts))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	g := s.Geometry

	// Somewhere in the top band above column a there is label ink.
	cell := g.CellRect(0, 0)
	inked := false
	for y := g.BorderOffset.Y; y < g.BorderOffset.Y+g.Border && !inked; y++ {
		for x := cell.Min.X; x < cell.Max.X; x++ {
			if pixel(img, x, y).R < 0x80 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("no label drawn above column a")
	}
}

func TestRenderHoles(t *testing.T) {
	tests := []struct {
		name  string
		holes bool
		want  color.NRGBA
	}{
		{"filled", true, DefaultHoleColor},
		{"transparent", false, color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Holes = tt.holes
			s := newScene(t, "10/01", 20, opts)
			img, err := Render(s, Layers(opts))
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			if got := cellPixel(img, s.Geometry, 0, 1, 10, 10); got != tt.want {
				t.Errorf("hole pixel = %v, want %v", got, tt.want)
			}
			if got := cellPixel(img, s.Geometry, 0, 0, 10, 10); got != DefaultLightSquareColor {
				t.Errorf("square pixel = %v, want %v", got, DefaultLightSquareColor)
			}
		})
	}
}

func TestRenderNoLayers(t *testing.T) {
	opts := Options{}
	s := newScene(t, "2/2", 10, opts)
	img, err := Render(s, Layers(opts))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 20 {
		t.Fatalf("canvas = %v, want 20x20", img.Bounds())
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if img.RGBAAt(x, y).A != 0 {
				t.Fatalf("pixel(%d, %d) is not transparent", x, y)
			}
		}
	}
}

func TestRenderMarkers(t *testing.T) {
	opts := DefaultOptions()
	opts.Crosses = []string{"b2"}
	opts.Dots = []string{"A1", "b2"}
	s := newScene(t, "3/3/3", 42, opts)
	img, err := Render(s, Layers(opts))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	g := s.Geometry

	if got := cellPixel(img, g, 2, 0, 21, 21); got != DefaultDotColor {
		t.Errorf("a1 center = %v, want dot %v", got, DefaultDotColor)
	}
	// Dots draw after crosses.
	if got := cellPixel(img, g, 1, 1, 21, 21); got != DefaultDotColor {
		t.Errorf("b2 center = %v, want dot %v", got, DefaultDotColor)
	}
	// Away from the dot, the cross arm is visible.
	if got := cellPixel(img, g, 1, 1, 12, 12); got != DefaultCrossColor {
		t.Errorf("b2 cross arm = %v, want cross %v", got, DefaultCrossColor)
	}
	if got := cellPixel(img, g, 0, 0, 21, 21); got != DefaultLightSquareColor {
		t.Errorf("a3 center = %v, want unmarked square", got)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name     string
		position string
		opts     func(*Options)
		code     errors.Code
	}{
		{
			name:     "cross outside board",
			position: "2/2",
			opts:     func(o *Options) { o.Crosses = []string{"z1"} },
			code:     errors.ErrCodeInvalidPosition,
		},
		{
			name:     "malformed dot",
			position: "2/2",
			opts:     func(o *Options) { o.Dots = []string{"1a"} },
			code:     errors.ErrCodeInvalidPosition,
		},
		{
			name:     "missing sprite",
			position: "p1/2",
			opts:     func(o *Options) {},
			code:     errors.ErrCodeAssetLoad,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.opts(&opts)
			s := newScene(t, tt.position, 10, opts)
			_, err := Render(s, Layers(opts))
			if !errors.Is(err, tt.code) {
				t.Errorf("Render error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestRenderInvalidScene(t *testing.T) {
	if _, err := Render(&Scene{}, nil); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("empty scene error = %v, want %v", err, errors.ErrCodeInternal)
	}
}

func TestLayersOrder(t *testing.T) {
	names := func(layers []Layer) []string {
		var out []string
		for _, l := range layers {
			out = append(out, l.Name())
		}
		return out
	}

	all := DefaultOptions()
	all.Crosses = []string{"a1"}
	all.Dots = []string{"a1"}

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "all",
			opts: all,
			want: []string{"outer-outline", "border", "inner-outline", "holes", "checkerboard", "pieces", "crosses", "dots"},
		},
		{
			name: "defaults",
			opts: DefaultOptions(),
			want: []string{"outer-outline", "border", "inner-outline", "holes", "checkerboard", "pieces"},
		},
		{
			name: "none",
			opts: Options{},
			want: nil,
		},
		{
			name: "markers only",
			opts: Options{Dots: []string{"a1"}, Crosses: []string{"a1"}},
			want: []string{"crosses", "dots"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := names(Layers(tt.opts)); !slices.Equal(got, tt.want) {
				t.Errorf("Layers() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrame(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 10, 10))
	dc := gg.NewContextForRGBA(canvas)
	Frame(dc, image.Rect(0, 0, 10, 10), 2, green)

	tests := []struct {
		x, y   int
		filled bool
	}{
		{0, 0, true},
		{1, 5, true},
		{9, 9, true},
		{5, 8, true},
		{8, 1, true},
		{2, 2, false},
		{5, 5, false},
		{7, 7, false},
	}
	for _, tt := range tests {
		got := pixel(canvas, tt.x, tt.y)
		if tt.filled && got != green {
			t.Errorf("pixel(%d, %d) = %v, want frame", tt.x, tt.y, got)
		}
		if !tt.filled && got.A != 0 {
			t.Errorf("pixel(%d, %d) = %v, want transparent", tt.x, tt.y, got)
		}
	}

	// Zero thickness draws nothing.
	Frame(dc, image.Rect(0, 0, 10, 10), 0, magenta)
	if got := pixel(canvas, 5, 5); got.A != 0 {
		t.Errorf("zero-thickness frame painted %v", got)
	}
}

func TestEncodePNG(t *testing.T) {
	opts := DefaultOptions()
	s := newScene(t, "2/2", 16, opts)
	img, err := Render(s, Layers(opts))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG error: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode error: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
