package assets

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
	"unicode"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tileboard/pkg/errors"
)

// Sprite is a decoded piece image and the file it came from.
type Sprite struct {
	Symbol  rune
	Path    string
	Image   image.Image
	ModTime time.Time
}

// Tileset holds the sprites for one render, keyed by piece mnemonic.
type Tileset struct {
	// Size is the common side length of all sprites, 0 when empty.
	Size    int
	sprites map[rune]Sprite
	order   []rune
}

// Filename returns the file name used for a piece mnemonic.
func Filename(symbol rune) string {
	lower := string(unicode.ToLower(symbol))
	switch {
	case symbol >= 'A' && symbol <= 'Z':
		return "u" + lower
	case symbol >= 'a' && symbol <= 'z':
		return "l" + lower
	}
	return lower
}

// LoadTileset loads one sprite per symbol from dir. Files are read in
// parallel. It fails with ErrCodeAssetLoad if any sprite is missing or cannot
// be decoded, and with ErrCodeSizeMismatch if the sprites are not equal-size
// squares.
func LoadTileset(ctx context.Context, dir string, symbols []rune) (*Tileset, error) {
	loaded := make([]Sprite, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, symbol := range symbols {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sprite, err := loadSprite(dir, symbol)
			if err != nil {
				return err
			}
			loaded[i] = sprite
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewTileset(loaded...)
}

// NewTileset builds a tileset from already decoded sprites, checking that
// they are equal-size squares.
func NewTileset(sprites ...Sprite) (*Tileset, error) {
	ts := &Tileset{sprites: make(map[rune]Sprite, len(sprites))}

	var last *Sprite
	for i := range sprites {
		s := &sprites[i]
		b := s.Image.Bounds()
		if b.Dx() != b.Dy() {
			return nil, errors.New(errors.ErrCodeSizeMismatch, "image width and height differ: %s (%dx%d)", s.name(), b.Dx(), b.Dy())
		}
		if last != nil && b.Dx() != ts.Size {
			return nil, errors.New(errors.ErrCodeSizeMismatch, "image sizes do not match each other: %s (%dpx) - %s (%dpx)", last.name(), ts.Size, s.name(), b.Dx())
		}
		ts.Size = b.Dx()
		last = s

		if _, dup := ts.sprites[s.Symbol]; !dup {
			ts.order = append(ts.order, s.Symbol)
		}
		ts.sprites[s.Symbol] = *s
	}
	return ts, nil
}

// Sprite returns the sprite for a piece mnemonic.
func (ts *Tileset) Sprite(symbol rune) (Sprite, bool) {
	if ts == nil {
		return Sprite{}, false
	}
	s, ok := ts.sprites[symbol]
	return s, ok
}

// Len returns the number of sprites.
func (ts *Tileset) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.order)
}

// Fingerprint identifies the sprite files by path, size and modification
// time, for use in cache keys.
func (ts *Tileset) Fingerprint() []string {
	if ts == nil {
		return nil
	}
	out := make([]string, 0, len(ts.order))
	for _, symbol := range ts.order {
		s := ts.sprites[symbol]
		out = append(out, fmt.Sprintf("%c=%s:%d:%d", symbol, s.Path, ts.Size, s.ModTime.UnixNano()))
	}
	return out
}

func (s *Sprite) name() string {
	if s.Path != "" {
		return s.Path
	}
	return string(s.Symbol)
}

// spritePath returns the file for a symbol, preferring the bare name and
// falling back to a .png extension.
func spritePath(dir string, symbol rune) string {
	path := filepath.Join(dir, Filename(symbol))
	if _, err := os.Stat(path); err != nil && !strings.HasSuffix(path, ".png") {
		if _, err := os.Stat(path + ".png"); err == nil {
			return path + ".png"
		}
	}
	return path
}

func loadSprite(dir string, symbol rune) (Sprite, error) {
	path := spritePath(dir, symbol)

	info, err := os.Stat(path)
	if err != nil {
		return Sprite{}, errors.Wrap(errors.ErrCodeAssetLoad, err, "unable to load image: %s for: %c", path, symbol)
	}
	if info.IsDir() {
		return Sprite{}, errors.New(errors.ErrCodeAssetLoad, "unable to load image: %s for: %c: is a directory", path, symbol)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return Sprite{}, errors.Wrap(errors.ErrCodeAssetLoad, err, "unable to load image: %s for: %c", path, symbol)
	}

	return Sprite{Symbol: symbol, Path: path, Image: img, ModTime: info.ModTime()}, nil
}
