package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tileboard/pkg/board"
	"github.com/matzehuels/tileboard/pkg/cache"
	"github.com/matzehuels/tileboard/pkg/layout"
	"github.com/matzehuels/tileboard/pkg/observability"
	"github.com/matzehuels/tileboard/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache, logger and hooks - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Hooks receive pipeline, cache and asset events. Nil members are
	// no-ops. Set before the first call; the runner never changes them.
	Hooks observability.Hooks
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Hooks:  observability.Noop(),
	}
}

func (r *Runner) hooks() observability.Hooks {
	return r.Hooks.WithDefaults()
}

// Execute runs the complete parse → assets → layout → render pipeline with
// caching. Nothing is cached when any stage fails.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, a, err := r.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer a.Close()
	result.CacheHit = false

	// Cache lookup: the key covers the position, options and asset files.
	cacheKey := r.Keyer.RenderKey(result.Board.String(), cache.RenderKeyOpts{
		Options: opts.keyOptions(),
		Assets:  a.Fingerprint(),
	})
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err != nil {
			opts.Logger.Warn("cache read failed", "error", err)
		} else if hit {
			r.hooks().Cache.OnCacheHit(ctx, "render")
			opts.Logger.Debug("render cache hit", "bytes", len(data))
			result.PNG = data
			result.CacheHit = true
			return result, nil
		}
		r.hooks().Cache.OnCacheMiss(ctx, "render")
	}

	// Stage 4: Render
	layers := layerNames(opts)
	r.hooks().Pipeline.OnRenderStart(ctx, layers)
	renderStart := time.Now()
	png, err := Render(ctx, &render.Scene{
		Board:    result.Board,
		Geometry: result.Geometry,
		Tiles:    a.Tiles,
		Face:     a.Face,
	}, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	r.hooks().Pipeline.OnRenderComplete(ctx, layers, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.PNG = png

	opts.Logger.Info("rendered diagram",
		"layers", len(layers),
		"bytes", len(png),
		"duration", result.Stats.RenderTime)

	if err := r.Cache.Set(ctx, cacheKey, png, cache.TTLRender); err != nil {
		opts.Logger.Warn("cache write failed", "error", err)
	} else {
		r.hooks().Cache.OnCacheSet(ctx, "render", len(png))
	}

	return result, nil
}

// Layout runs the pipeline up to the layout stage. Geometries are cached
// under their own key.
func (r *Runner) Layout(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, a, err := r.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}
	return result, a.Close()
}

// prepare runs parse, assets and layout, returning the partial result and
// the loaded assets. The caller closes the assets.
func (r *Runner) prepare(ctx context.Context, opts Options) (*Result, *Assets, error) {
	result := &Result{}

	// Stage 1: Parse
	r.hooks().Pipeline.OnParseStart(ctx, opts.Position)
	parseStart := time.Now()
	b, err := ParseBoard(opts.Position)
	if err == nil {
		err = opts.ValidateMarkers(b)
	}
	result.Stats.ParseTime = time.Since(parseStart)
	cols, rows := 0, 0
	if b != nil {
		cols, rows = b.Width(), b.Height()
	}
	r.hooks().Pipeline.OnParseComplete(ctx, opts.Position, cols, rows, result.Stats.ParseTime, err)
	if err != nil {
		return nil, nil, fmt.Errorf("parse: %w", err)
	}
	result.Board = b
	result.Stats.Columns, result.Stats.Rows = cols, rows
	for range b.Pieces() {
		result.Stats.Pieces++
	}

	opts.Logger.Info("parsed position",
		"columns", cols,
		"rows", rows,
		"pieces", result.Stats.Pieces,
		"duration", result.Stats.ParseTime)

	// Stage 2: Assets
	assetStart := time.Now()
	a, err := r.loadAssets(ctx, b, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("assets: %w", err)
	}
	result.Stats.AssetTime = time.Since(assetStart)
	result.Stats.Tile = a.Tile
	result.Stats.Sprites = a.Tiles.Len()
	if a.Font != nil {
		result.Stats.Font = a.Font.Name
	}

	// Stage 3: Layout
	geom, hit, err := r.computeLayout(ctx, b, a, opts)
	if err != nil {
		a.Close()
		return nil, nil, fmt.Errorf("layout: %w", err)
	}
	result.Geometry = geom
	result.CacheHit = hit

	return result, a, nil
}

func (r *Runner) loadAssets(ctx context.Context, b *board.Board, opts Options) (*Assets, error) {
	start := time.Now()
	tiles, tile, err := LoadTiles(ctx, b, opts)
	if !opts.TilesetDisable {
		r.hooks().Assets.OnTilesetLoaded(ctx, opts.TilesetFolder, tiles.Len(), time.Since(start), err)
	}
	if err != nil {
		return nil, err
	}
	if tiles != nil {
		opts.Logger.Debug("loaded tileset",
			"folder", opts.TilesetFolder,
			"sprites", tiles.Len(),
			"tile", tile)
	}

	start = time.Now()
	f, face, err := LoadBorderFont(opts, tile)
	name := opts.BorderFont
	if f != nil {
		name = f.Name
	}
	if !opts.BorderDisable {
		r.hooks().Assets.OnFontLoaded(ctx, name, time.Since(start), err)
	}
	if err != nil {
		return nil, err
	}
	if f != nil {
		opts.Logger.Debug("loaded border font", "font", f.Name, "size", layout.BorderFontSize(tile))
	}

	return &Assets{Tiles: tiles, Tile: tile, Font: f, Face: face}, nil
}

func (r *Runner) computeLayout(ctx context.Context, b *board.Board, a *Assets, opts Options) (layout.Geometry, bool, error) {
	layers := opts.LayoutLayers()
	fontID := ""
	if a.Font != nil {
		fontID = a.Font.Fingerprint()
	}
	cacheKey := r.Keyer.LayoutKey(b.String(), cache.LayoutKeyOpts{
		Tile:         a.Tile,
		OuterOutline: layers.OuterOutline,
		Border:       layers.Border,
		InnerOutline: layers.InnerOutline,
		Font:         fontID,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.Geometry
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}

	r.hooks().Pipeline.OnLayoutStart(ctx, b.Width(), b.Height(), a.Tile)
	start := time.Now()
	geom, err := ComputeLayout(b, a.Tile, opts, a.Face)
	r.hooks().Pipeline.OnLayoutComplete(ctx, geom.Width, geom.Height, time.Since(start), err)
	if err != nil {
		return layout.Geometry{}, false, err
	}

	opts.Logger.Info("computed layout",
		"width", geom.Width,
		"height", geom.Height,
		"tile", geom.Tile,
		"border", geom.Border)

	if data, err := json.Marshal(geom); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
	}
	return geom, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
