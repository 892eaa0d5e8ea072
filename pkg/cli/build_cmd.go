package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"insertkit/internal/sqlinsert"
)

func newBuildCmd(opts *rootOptions) *cobra.Command {
	var (
		table string
		pairs []string
	)

	cmd := &cobra.Command{
		Use:     "build",
		Short:   "Generate an INSERT statement from column=value pairs",
		Example: `  insertkit build --table users --pair id=7 --pair "name=O'Brien" --pair created=SYSDATE`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := make([]sqlinsert.Pair, 0, len(pairs))
			for _, kv := range pairs {
				col, val, err := parseAssignment(kv)
				if err != nil {
					return fmt.Errorf("--pair: %w", err)
				}
				rows = append(rows, sqlinsert.Pair{Column: col, Value: val})
			}

			out, err := opts.backend().Build(cmd.Context(), table, rows)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"sql": out})
			}
			_, _ = fmt.Fprintln(os.Stdout, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "Target table name (required)")
	cmd.Flags().StringArrayVar(&pairs, "pair", nil, "column=value, in output order (repeatable)")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}
