package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	tbio "github.com/matzehuels/tileboard/pkg/io"
	"github.com/matzehuels/tileboard/pkg/layout"
	"github.com/matzehuels/tileboard/pkg/pipeline"
)

// layoutCommand creates the layout command for inspecting diagram geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		opts   pipeline.Options
		flags  runFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "layout <position>",
		Short: "Show the pixel geometry of a board diagram",
		Long: `Show the pixel geometry of a board diagram without drawing it.

Prints the thickness and offset of every band around the board and the
canvas size. With --json the geometry is printed together with the board
and the pixel position of every piece; with --output it is written to a file.

Takes the same options as 'render'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.config != "" {
				if err := loadConfig(flags.config, &opts, cmd.Flags().Changed); err != nil {
					return err
				}
			}
			opts.Position = args[0]
			return c.runLayout(cmd.Context(), opts, flags, asJSON)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the geometry as JSON to this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the geometry as JSON")
	addRunFlags(cmd, &flags)
	addOptionFlags(cmd, &opts)

	return cmd
}

// runLayout computes the geometry and prints or writes it.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, flags runFlags, asJSON bool) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = loggerFromContext(ctx)
	opts.Refresh = flags.refresh

	result, err := runner.Layout(ctx, opts)
	if err != nil {
		return err
	}
	doc := tbio.NewDocument(result.Board, result.Geometry)

	switch {
	case flags.output != "":
		if err := tbio.ExportJSON(doc, flags.output); err != nil {
			return fmt.Errorf("write output %s: %w", flags.output, err)
		}
		printSuccess("Layout complete")
		printFile(flags.output)
		printStats(result.Stats, result.CacheHit)
		printNewline()
		printNextStep("Render", appName+" render "+opts.Position)
	case asJSON:
		return tbio.WriteJSON(doc, os.Stdout)
	default:
		fmt.Println(geometryTable(result.Geometry))
		printStats(result.Stats, result.CacheHit)
	}
	return nil
}

// geometryTable renders the bands of g from the outside in.
func geometryTable(g layout.Geometry) *table.Table {
	px := func(n int) string { return strconv.Itoa(n) + "px" }
	at := func(n int) string { return strconv.Itoa(n) }

	rows := [][]string{
		{"outer outline", px(g.OuterOutline), at(g.OuterOffset.X)},
		{"border", px(g.Border), at(g.BorderOffset.X)},
		{"inner outline", px(g.InnerOutline), at(g.InnerOffset.X)},
		{"board", fmt.Sprintf("%d×%d × %s", g.Columns, g.Rows, px(g.Tile)), at(g.BoardOffset.X)},
		{"canvas", fmt.Sprintf("%d×%d", g.Width, g.Height), "0"},
	}
	if g.BorderFontSize > 0 {
		rows[1][1] += fmt.Sprintf(" (font %s)", px(g.BorderFontSize))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Band", "Size", "Offset").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return cell.Foreground(colorGray)
			}
			return cell.Foreground(colorWhite)
		})
}
