package pipeline

import (
	"context"

	"golang.org/x/image/font"

	"github.com/matzehuels/tileboard/pkg/assets"
	"github.com/matzehuels/tileboard/pkg/board"
	"github.com/matzehuels/tileboard/pkg/layout"
)

// Assets are the files a render reads besides the position.
type Assets struct {
	// Tiles is nil when the tileset is disabled.
	Tiles *assets.Tileset
	// Tile is the tile size: the sprite size, or the configured fallback.
	Tile int
	// Font is nil when the border is disabled.
	Font *assets.Font
	// Face sets the border labels at the border font size.
	Face font.Face
}

// Close releases the font face.
func (a *Assets) Close() error {
	if a.Face != nil {
		return a.Face.Close()
	}
	return nil
}

// Fingerprint identifies every asset file for cache keys.
func (a *Assets) Fingerprint() []string {
	fp := a.Tiles.Fingerprint()
	if a.Font != nil {
		fp = append(fp, a.Font.Fingerprint())
	}
	return fp
}

// LoadTiles loads the sprites b needs and settles the tile size.
func LoadTiles(ctx context.Context, b *board.Board, opts Options) (*assets.Tileset, int, error) {
	if opts.TilesetDisable {
		return nil, opts.TilesetSize, nil
	}
	tiles, err := assets.LoadTileset(ctx, opts.TilesetFolder, b.Symbols())
	if err != nil {
		return nil, 0, err
	}
	if tiles.Size == 0 {
		return tiles, opts.TilesetSize, nil
	}
	return tiles, tiles.Size, nil
}

// LoadBorderFont loads the border font sized for tile.
func LoadBorderFont(opts Options, tile int) (*assets.Font, font.Face, error) {
	if opts.BorderDisable {
		return nil, nil, nil
	}
	f, err := assets.LoadFont(opts.BorderFont)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Face(layout.BorderFontSize(tile)), nil
}
