package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tileboard/pkg/coord"
	"github.com/matzehuels/tileboard/pkg/errors"
)

// coordCommand creates the coord command for converting column labels.
func (c *CLI) coordCommand() *cobra.Command {
	var (
		cols, rows int
		uppercase  bool
	)

	cmd := &cobra.Command{
		Use:   "coord <label|index|square>...",
		Short: "Convert between column labels, indices and squares",
		Long: `Convert between column labels, indices and squares.

Numbers are zero-based column indices and print their label (26 → aa).
Letters are column labels and print their index (aa → 26). With --columns
and --rows, algebraic squares such as e4 print their zero-based row and
column, counting rows from the top.`,
		Example: `  tileboard coord 0 25 26 701
  tileboard coord aa zz
  tileboard coord --columns 8 --rows 8 a1 h8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				key, value, err := convertCoord(arg, cols, rows, uppercase)
				if err != nil {
					return err
				}
				printKeyValue(key, value)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cols, "columns", 0, "board width for resolving squares")
	cmd.Flags().IntVar(&rows, "rows", 0, "board height for resolving squares")
	cmd.Flags().BoolVar(&uppercase, "uppercase", false, "print labels in uppercase")

	return cmd
}

// convertCoord converts one argument. Squares need a board size.
func convertCoord(arg string, cols, rows int, uppercase bool) (key, value string, err error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 0 {
			return "", "", errors.New(errors.ErrCodeInvalidPosition, "negative column index: %d", n)
		}
		label := coord.Encode(n)
		if uppercase {
			label = strings.ToUpper(label)
		}
		return arg, label, nil
	}

	if strings.IndexFunc(arg, isDigit) < 0 {
		n, err := coord.Decode(arg)
		if err != nil {
			return "", "", err
		}
		return arg, strconv.Itoa(n), nil
	}

	if cols <= 0 || rows <= 0 {
		return "", "", errors.New(errors.ErrCodeInvalidSize, "square %q needs --columns and --rows", arg)
	}
	row, col, err := coord.Resolve(arg, cols, rows)
	if err != nil {
		return "", "", err
	}
	return arg, fmt.Sprintf("row %d, col %d", row, col), nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
