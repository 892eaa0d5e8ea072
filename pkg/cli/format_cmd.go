package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type formattedValue struct {
	Value   string `json:"value"`
	Literal string `json:"literal"`
}

func newFormatCmd(opts *rootOptions) *cobra.Command {
	var bare bool

	cmd := &cobra.Command{
		Use:   "format VALUE...",
		Short: "Show the SQL literal generated for each value",
		Example: `  insertkit format 42 NULL "O'Brien" seq.NEXTVAL
  insertkit format --bare abc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			literals, err := opts.backend().Format(cmd.Context(), args)
			if err != nil {
				return err
			}
			if len(literals) != len(args) {
				return fmt.Errorf("expected %d literals, got %d", len(args), len(literals))
			}

			out := make([]formattedValue, len(args))
			for i := range args {
				out[i] = formattedValue{Value: args[i], Literal: literals[i]}
			}

			switch {
			case getOutputFormat(cmd) == "json":
				return PrintJSON(os.Stdout, out)
			case bare:
				for _, v := range out {
					_, _ = fmt.Fprintln(os.Stdout, v.Literal)
				}
			default:
				rows := make([][]string, len(out))
				for i, v := range out {
					rows[i] = []string{v.Value, v.Literal}
				}
				PrintTable(os.Stdout, []string{"value", "literal"}, rows)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, "Print only the literals, one per line")

	return cmd
}
