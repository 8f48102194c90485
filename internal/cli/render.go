package cli

import (
	"context"
	"fmt"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tileboard/pkg/errors"
	tbio "github.com/matzehuels/tileboard/pkg/io"
	"github.com/matzehuels/tileboard/pkg/pipeline"
)

// runFlags holds the flags that control a run rather than the image.
type runFlags struct {
	output  string // output file path
	config  string // TOML preset
	noCache bool
	refresh bool // skip cache reads
}

// renderCommand creates the render command for drawing a board to PNG.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts  pipeline.Options
		flags runFlags
	)

	cmd := &cobra.Command{
		Use:   "render <position>",
		Short: "Render a board position to a PNG image",
		Long: `Render a board position to a PNG image.

The position is an extended FEN string: digits are runs of empty squares,
a space is one empty square, '0' is a hole, '/' separates rows, and any other
character is a piece drawn with the sprite of the same name from the tileset
folder. Short rows are padded with holes. A full six-field chess FEN (with
side to move and castling fields) is accepted as well.

Every flag can also be set in a TOML file passed with --config, using the
flag name as key. Flags given on the command line win over the file.

Rendered images are cached locally for faster subsequent runs.`,
		Example: `  tileboard render rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR -o start.png
  tileboard render 3/1N0/3 --cross a1 --cross c3 --dot b3
  tileboard render k7/8/8/8/8/8/8/7K --config diagram.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.config != "" {
				if err := loadConfig(flags.config, &opts, cmd.Flags().Changed); err != nil {
					return err
				}
			}
			opts.Position = args[0]
			return c.runRender(cmd.Context(), opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultOutput, "output PNG file")
	addRunFlags(cmd, &flags)
	addOptionFlags(cmd, &opts)

	return cmd
}

// runRender executes the pipeline and writes the image. Nothing is written
// when any stage fails.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, flags runFlags) error {
	if err := errors.ValidateOutputPath(flags.output); err != nil {
		return err
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = loggerFromContext(ctx)
	opts.Refresh = flags.refresh
	prog := newProgress(opts.Logger)

	spinner := newSpinnerWithContext(ctx, "Rendering board...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := tbio.WriteFileAtomic(flags.output, result.PNG, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", flags.output, err)
	}
	prog.done("wrote " + flags.output)

	printSuccess("Board rendered")
	printFile(flags.output)
	printStats(result.Stats, result.CacheHit)

	return nil
}

// addRunFlags registers the flags shared by render and layout that do not
// change the image.
func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVar(&flags.config, "config", "", "TOML file with default flag values")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "ignore cached results (still updates the cache)")
}

// addOptionFlags registers one flag per pipeline option. Flag names match
// the toml keys of pipeline.Options.
func addOptionFlags(cmd *cobra.Command, opts *pipeline.Options) {
	f := cmd.Flags()

	// Outer outline
	f.BoolVar(&opts.OuterOutlineDisable, "outer-outline-disable", false, "do not draw the outer outline")
	f.StringVar(&opts.OuterOutlineColor, "outer-outline-color", pipeline.DefaultOutlineColor, "outer outline color")

	// Border
	f.BoolVar(&opts.BorderDisable, "border-disable", false, "do not draw the coordinate border")
	f.StringVar(&opts.BorderColor, "border-color", pipeline.DefaultBorderColor, "border background color")
	f.StringVar(&opts.BorderFont, "border-font", "", "border font file or system font name (default: embedded Go Mono)")
	f.StringVar(&opts.BorderFontColor, "border-font-color", pipeline.DefaultBorderFontColor, "border label color")
	f.BoolVar(&opts.BorderUppercase, "border-uppercase", false, "use uppercase column labels")

	// Inner outline
	f.BoolVar(&opts.InnerOutlineDisable, "inner-outline-disable", false, "do not draw the inner outline")
	f.StringVar(&opts.InnerOutlineColor, "inner-outline-color", pipeline.DefaultOutlineColor, "inner outline color")

	// Checkerboard
	f.BoolVar(&opts.CheckerboardDisable, "checkerboard-disable", false, "do not draw the square colors")
	f.BoolVar(&opts.CheckerboardHolesDisable, "checkerboard-holes-disable", false, "leave holes transparent")
	f.StringVar(&opts.CheckerboardColor0, "checkerboard-color0", pipeline.DefaultHoleColor, "hole color")
	f.StringVar(&opts.CheckerboardColor1, "checkerboard-color1", pipeline.DefaultLightColor, "light square color")
	f.StringVar(&opts.CheckerboardColor2, "checkerboard-color2", pipeline.DefaultDarkColor, "dark square color")

	// Tileset
	f.BoolVar(&opts.TilesetDisable, "tileset-disable", false, "do not draw pieces")
	f.StringVar(&opts.TilesetFolder, "tileset-folder", pipeline.DefaultTilesetFolder, "folder with one sprite per piece symbol")
	f.IntVar(&opts.TilesetSize, "tileset-size", pipeline.DefaultTileSize, "tile size in pixels when no sprite sets it")

	// Markers
	f.StringSliceVar(&opts.Crosses, "cross", nil, "mark a square with a cross (repeatable, e.g. e4)")
	f.StringVar(&opts.CrossColor, "cross-color", pipeline.DefaultCrossColor, "cross color")
	f.StringSliceVar(&opts.Dots, "dot", nil, "mark a square with a dot (repeatable, e.g. e4)")
	f.StringVar(&opts.DotColor, "dot-color", pipeline.DefaultDotColor, "dot color")
}

// loadConfig decodes a TOML preset into opts. Keys whose flag was set on the
// command line keep the flag value.
func loadConfig(path string, opts *pipeline.Options, changed func(name string) bool) error {
	var file pipeline.Options
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOption, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidOption, "unknown keys in config %s: %v", path, undecoded)
	}

	dst := reflect.ValueOf(opts).Elem()
	src := reflect.ValueOf(file)
	t := dst.Type()
	for i := range t.NumField() {
		key := t.Field(i).Tag.Get("toml")
		if key == "" || key == "-" || !md.IsDefined(key) || changed(key) {
			continue
		}
		dst.Field(i).Set(src.Field(i))
	}
	return nil
}
