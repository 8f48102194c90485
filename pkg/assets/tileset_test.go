package assets

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/tileboard/pkg/errors"
)

// writeSprite writes a w×h PNG filled with c.
func writeSprite(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		symbol rune
		want   string
	}{
		{'K', "uk"},
		{'k', "lk"},
		{'Q', "uq"},
		{'p', "lp"},
		{'*', "*"},
		{'1', "1"},
		{'É', "é"},
	}
	for _, tt := range tests {
		if got := Filename(tt.symbol); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.symbol, got, tt.want)
		}
	}
}

func TestLoadTileset(t *testing.T) {
	dir := t.TempDir()
	writeSprite(t, filepath.Join(dir, "uk"), 42, 42, color.White)
	writeSprite(t, filepath.Join(dir, "lk.png"), 42, 42, color.Black)

	ts, err := LoadTileset(context.Background(), dir, []rune("Kk"))
	if err != nil {
		t.Fatalf("LoadTileset error: %v", err)
	}
	if ts.Size != 42 {
		t.Errorf("Size = %d, want 42", ts.Size)
	}
	if ts.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ts.Len())
	}

	s, ok := ts.Sprite('k')
	if !ok {
		t.Fatal("missing sprite for 'k'")
	}
	if !strings.HasSuffix(s.Path, "lk.png") {
		t.Errorf("sprite path = %q, want the .png fallback", s.Path)
	}
	if _, ok := ts.Sprite('q'); ok {
		t.Error("unexpected sprite for 'q'")
	}

	fp := ts.Fingerprint()
	if len(fp) != 2 || !strings.HasPrefix(fp[0], "K=") || !strings.HasPrefix(fp[1], "k=") {
		t.Errorf("Fingerprint() = %q", fp)
	}
}

func TestLoadTilesetEmpty(t *testing.T) {
	ts, err := LoadTileset(context.Background(), t.TempDir(), nil)
	if err != nil {
		t.Fatalf("LoadTileset error: %v", err)
	}
	if ts.Size != 0 || ts.Len() != 0 {
		t.Errorf("empty tileset = size %d, len %d", ts.Size, ts.Len())
	}
}

func TestLoadTilesetErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string)
		symbols string
		code    errors.Code
		mention string
	}{
		{
			name:    "missing sprite",
			setup:   func(t *testing.T, dir string) {},
			symbols: "K",
			code:    errors.ErrCodeAssetLoad,
			mention: "uk",
		},
		{
			name: "corrupt sprite",
			setup: func(t *testing.T, dir string) {
				if err := os.WriteFile(filepath.Join(dir, "lp"), []byte("not an image"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			symbols: "p",
			code:    errors.ErrCodeAssetLoad,
			mention: "lp",
		},
		{
			name: "not square",
			setup: func(t *testing.T, dir string) {
				writeSprite(t, filepath.Join(dir, "lp"), 42, 40, color.Black)
			},
			symbols: "p",
			code:    errors.ErrCodeSizeMismatch,
			mention: "differ",
		},
		{
			name: "different sizes",
			setup: func(t *testing.T, dir string) {
				writeSprite(t, filepath.Join(dir, "uk"), 42, 42, color.White)
				writeSprite(t, filepath.Join(dir, "lk"), 64, 64, color.Black)
			},
			symbols: "Kk",
			code:    errors.ErrCodeSizeMismatch,
			mention: "do not match",
		},
		{
			name: "directory instead of file",
			setup: func(t *testing.T, dir string) {
				if err := os.Mkdir(filepath.Join(dir, "lr"), 0755); err != nil {
					t.Fatal(err)
				}
			},
			symbols: "r",
			code:    errors.ErrCodeAssetLoad,
			mention: "lr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			_, err := LoadTileset(context.Background(), dir, []rune(tt.symbols))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
			if !strings.Contains(err.Error(), tt.mention) {
				t.Errorf("error %q should mention %q", err, tt.mention)
			}
		})
	}
}

func TestLoadTilesetCancelled(t *testing.T) {
	dir := t.TempDir()
	writeSprite(t, filepath.Join(dir, "uk"), 8, 8, color.White)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := LoadTileset(ctx, dir, []rune("K")); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestNewTileset(t *testing.T) {
	square := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	ts, err := NewTileset(
		Sprite{Symbol: 'a', Image: square},
		Sprite{Symbol: 'b', Image: square},
		Sprite{Symbol: 'a', Image: square},
	)
	if err != nil {
		t.Fatalf("NewTileset error: %v", err)
	}
	if ts.Size != 16 || ts.Len() != 2 {
		t.Errorf("tileset = size %d, len %d, want 16, 2", ts.Size, ts.Len())
	}

	var nilSet *Tileset
	if nilSet.Len() != 0 {
		t.Error("nil tileset should be empty")
	}
	if _, ok := nilSet.Sprite('a'); ok {
		t.Error("nil tileset should have no sprites")
	}
}
