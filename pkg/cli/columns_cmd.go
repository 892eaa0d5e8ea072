package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var errNoColumnData = errors.New("Please paste some column data.") //nolint:staticcheck // user-facing message

func newColumnsCmd(opts *rootOptions) *cobra.Command {
	var (
		text   string
		quoted bool
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "columns [FILE]",
		Short: "Join a one-per-line column list with commas",
		Example: `  pbpaste | insertkit columns
  insertkit columns names.txt --quoted`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quoted && plain {
				return fmt.Errorf("--quoted and --plain are mutually exclusive")
			}
			input, err := resolveInput(cmd, text, cmd.Flags().Changed("text"), args)
			if err != nil {
				return err
			}
			res, err := opts.backend().Convert(cmd.Context(), input)
			if err != nil {
				return err
			}
			if res.LineCount == 0 {
				return errNoColumnData
			}

			switch {
			case getOutputFormat(cmd) == "json":
				return PrintJSON(os.Stdout, res)
			case quoted:
				_, _ = fmt.Fprintln(os.Stdout, res.QuotedCommaJoined)
			case plain:
				_, _ = fmt.Fprintln(os.Stdout, res.CommaJoined)
			default:
				PrintTable(os.Stdout, []string{"form", "output"}, [][]string{
					{"plain", res.CommaJoined},
					{"quoted", res.QuotedCommaJoined},
				})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Column list to convert instead of reading a file or stdin")
	cmd.Flags().BoolVar(&quoted, "quoted", false, "Print only the quoted form")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print only the plain comma-joined form")

	return cmd
}
