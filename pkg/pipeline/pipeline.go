// Package pipeline provides the render pipeline for Tileboard.
//
// This package implements the complete parse → assets → layout → render
// pipeline shared by the render and layout commands. By centralizing this
// logic, every entry point applies the same defaults, the same validation and
// the same caching.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Parse: Read the position into a [board.Board]
//  2. Assets: Load the sprites the board needs and the border font
//  3. Layout: Compute the pixel geometry of every band and tile
//  4. Render: Draw the layers and encode the PNG
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Position:      "k7/8/8/8/8/8/8/7K",
//	    TilesetFolder: "Tiles/merida/42",
//	    Crosses:       []string{"e4"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = io.WriteFileAtomic("board.png", result.PNG, 0644)
//
// Compute the geometry only:
//
//	result, err := runner.Layout(ctx, opts)
//	fmt.Println(result.Geometry.Width, result.Geometry.Height)
//
// [board.Board]: github.com/matzehuels/tileboard/pkg/board.Board
package pipeline

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tileboard/pkg/board"
	"github.com/matzehuels/tileboard/pkg/coord"
	"github.com/matzehuels/tileboard/pkg/errors"
	"github.com/matzehuels/tileboard/pkg/layout"
	"github.com/matzehuels/tileboard/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI and config files
// =============================================================================

const (
	// DefaultTilesetFolder is where sprites are looked up.
	DefaultTilesetFolder = "Tiles/merida/42"

	// DefaultTileSize is the tile size used when no sprite sets it: the board
	// has no pieces, or the tileset is disabled.
	DefaultTileSize = 42

	// DefaultOutlineColor is the color of both outlines.
	DefaultOutlineColor = "#000000"

	// DefaultBorderColor is the background of the coordinate border.
	DefaultBorderColor = "#FFFFFF"

	// DefaultBorderFontColor is the color of the coordinate labels.
	DefaultBorderFontColor = "#000000"

	// DefaultHoleColor fills the holes in the board.
	DefaultHoleColor = "#EEEEEE"

	// DefaultLightColor and DefaultDarkColor are the checkerboard squares.
	DefaultLightColor = "#FFCE9E"
	DefaultDarkColor  = "#D18B47"

	// DefaultCrossColor and DefaultDotColor are the marker colors.
	DefaultCrossColor = "#FF0000"
	DefaultDotColor   = "#0000FF"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the render pipeline.
//
// The toml keys are the CLI flag names, so a config file reads like a list of
// flags. Colors are kept as strings until validation.
type Options struct {
	Position string `toml:"-" json:"position,omitempty"`

	// Outer outline
	OuterOutlineDisable bool   `toml:"outer-outline-disable" json:"outer_outline_disable,omitempty"`
	OuterOutlineColor   string `toml:"outer-outline-color" json:"outer_outline_color,omitempty"`

	// Coordinate border
	BorderDisable   bool   `toml:"border-disable" json:"border_disable,omitempty"`
	BorderColor     string `toml:"border-color" json:"border_color,omitempty"`
	BorderFont      string `toml:"border-font" json:"border_font,omitempty"`
	BorderFontColor string `toml:"border-font-color" json:"border_font_color,omitempty"`
	BorderUppercase bool   `toml:"border-uppercase" json:"border_uppercase,omitempty"`

	// Inner outline
	InnerOutlineDisable bool   `toml:"inner-outline-disable" json:"inner_outline_disable,omitempty"`
	InnerOutlineColor   string `toml:"inner-outline-color" json:"inner_outline_color,omitempty"`

	// Checkerboard
	CheckerboardDisable      bool   `toml:"checkerboard-disable" json:"checkerboard_disable,omitempty"`
	CheckerboardHolesDisable bool   `toml:"checkerboard-holes-disable" json:"checkerboard_holes_disable,omitempty"`
	CheckerboardColor0       string `toml:"checkerboard-color0" json:"checkerboard_color0,omitempty"` // holes
	CheckerboardColor1       string `toml:"checkerboard-color1" json:"checkerboard_color1,omitempty"` // light squares
	CheckerboardColor2       string `toml:"checkerboard-color2" json:"checkerboard_color2,omitempty"` // dark squares

	// Tileset
	TilesetDisable bool   `toml:"tileset-disable" json:"tileset_disable,omitempty"`
	TilesetFolder  string `toml:"tileset-folder" json:"tileset_folder,omitempty"`
	TilesetSize    int    `toml:"tileset-size" json:"tileset_size,omitempty"`

	// Markers
	Crosses    []string `toml:"cross" json:"crosses,omitempty"`
	CrossColor string   `toml:"cross-color" json:"cross_color,omitempty"`
	Dots       []string `toml:"dot" json:"dots,omitempty"`
	DotColor   string   `toml:"dot-color" json:"dot_color,omitempty"`

	// Runtime options (not serialized)
	Refresh bool        `toml:"-" json:"-"` // skip cache reads, still write
	Logger  *log.Logger `toml:"-" json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
	colors    palette
}

type palette struct {
	outer, inner, border, font, hole, light, dark, cross, dot color.NRGBA
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Board is the parsed position.
	Board *board.Board

	// Geometry is the computed layout.
	Geometry layout.Geometry

	// PNG is the encoded image. It is nil for layout-only runs.
	PNG []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether PNG (or Geometry for layout-only runs) came
	// from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Columns    int
	Rows       int
	Pieces     int
	Sprites    int
	Tile       int
	Font       string
	ParseTime  time.Duration
	AssetTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults, then checks every value that can
// be checked without the board. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetRenderDefaults()

	if err := errors.ValidateTileSize(o.TilesetSize); err != nil {
		return err
	}

	var err error
	parse := func(dst *color.NRGBA, name, value string) {
		if err != nil {
			return
		}
		var c color.NRGBA
		if c, err = render.ParseColor(value); err != nil {
			err = errors.New(errors.ErrCodeInvalidOption, "%s: %s", name, errors.UserMessage(err))
			return
		}
		*dst = c
	}
	parse(&o.colors.outer, "outer-outline-color", o.OuterOutlineColor)
	parse(&o.colors.border, "border-color", o.BorderColor)
	parse(&o.colors.font, "border-font-color", o.BorderFontColor)
	parse(&o.colors.inner, "inner-outline-color", o.InnerOutlineColor)
	parse(&o.colors.hole, "checkerboard-color0", o.CheckerboardColor0)
	parse(&o.colors.light, "checkerboard-color1", o.CheckerboardColor1)
	parse(&o.colors.dark, "checkerboard-color2", o.CheckerboardColor2)
	parse(&o.colors.cross, "cross-color", o.CrossColor)
	parse(&o.colors.dot, "dot-color", o.DotColor)
	if err != nil {
		return err
	}

	o.validated = true
	return nil
}

// SetRenderDefaults fills every unset value with its default.
func (o *Options) SetRenderDefaults() {
	setDefault(&o.OuterOutlineColor, DefaultOutlineColor)
	setDefault(&o.BorderColor, DefaultBorderColor)
	setDefault(&o.BorderFontColor, DefaultBorderFontColor)
	setDefault(&o.InnerOutlineColor, DefaultOutlineColor)
	setDefault(&o.CheckerboardColor0, DefaultHoleColor)
	setDefault(&o.CheckerboardColor1, DefaultLightColor)
	setDefault(&o.CheckerboardColor2, DefaultDarkColor)
	setDefault(&o.CrossColor, DefaultCrossColor)
	setDefault(&o.DotColor, DefaultDotColor)
	setDefault(&o.TilesetFolder, DefaultTilesetFolder)
	if o.TilesetSize == 0 {
		o.TilesetSize = DefaultTileSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// ValidateMarkers checks that every cross and dot names a square of b.
func (o *Options) ValidateMarkers(b *board.Board) error {
	for _, group := range [][]string{o.Crosses, o.Dots} {
		for _, pos := range group {
			if _, _, err := coord.Resolve(pos, b.Width(), b.Height()); err != nil {
				return err
			}
		}
	}
	return nil
}

// LayoutLayers returns the bands that take up space around the board.
func (o *Options) LayoutLayers() layout.Layers {
	return layout.Layers{
		OuterOutline: !o.OuterOutlineDisable,
		Border:       !o.BorderDisable,
		InnerOutline: !o.InnerOutlineDisable,
	}
}

// RenderOptions converts validated options to renderer options.
// ValidateAndSetDefaults must have succeeded first.
func (o *Options) RenderOptions() render.Options {
	return render.Options{
		OuterOutline:      !o.OuterOutlineDisable,
		OuterOutlineColor: o.colors.outer,
		Border:            !o.BorderDisable,
		BorderColor:       o.colors.border,
		BorderFontColor:   o.colors.font,
		BorderUppercase:   o.BorderUppercase,
		InnerOutline:      !o.InnerOutlineDisable,
		InnerOutlineColor: o.colors.inner,
		Checkerboard:      !o.CheckerboardDisable,
		Holes:             !o.CheckerboardHolesDisable,
		HoleColor:         o.colors.hole,
		LightColor:        o.colors.light,
		DarkColor:         o.colors.dark,
		Pieces:            !o.TilesetDisable,
		Crosses:           o.Crosses,
		CrossColor:        o.colors.cross,
		Dots:              o.Dots,
		DotColor:          o.colors.dot,
	}
}

// keyOptions returns the options as they affect the output image, for
// hashing into cache keys.
func (o *Options) keyOptions() Options {
	k := *o
	k.Position = ""
	k.Refresh = false
	k.Logger = nil
	return k
}
