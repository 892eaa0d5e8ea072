package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"insertkit/internal/editor"
	"insertkit/internal/sqlinsert"
)

type editResult struct {
	SQL       string           `json:"sql"`
	TableName string           `json:"table_name"`
	Pairs     []sqlinsert.Pair `json:"pairs"`
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	var (
		sql   string
		table string
		sets  []string
		adds  []string
		drops []string
	)

	cmd := &cobra.Command{
		Use:   "edit [FILE]",
		Short: "Change columns of an INSERT statement and regenerate it",
		Long: `Parse an INSERT statement, apply the edits and print the regenerated
statement. Edits apply in this order: --drop, then --set, then --add.`,
		Example: `  insertkit edit query.sql --set status=ACTIVE --drop created_at
  insertkit edit --sql "INSERT INTO t (a) VALUES (1)" --add b=NULL --table t2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := opts.backend()
			ctx := cmd.Context()

			text, err := resolveInput(cmd, sql, cmd.Flags().Changed("sql"), args)
			if err != nil {
				return err
			}
			parsed, err := b.Parse(ctx, text)
			if err != nil {
				return err
			}

			s := editor.New(parsed.TableName, parsed.Pairs)
			if cmd.Flags().Changed("table") {
				s.TableName = strings.TrimSpace(table)
			}
			if err := applyEdits(s, drops, sets, adds); err != nil {
				return err
			}

			out, err := b.Build(ctx, s.TableName, s.Rows)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, editResult{SQL: out, TableName: s.TableName, Pairs: s.Rows})
			}
			_, _ = fmt.Fprintln(os.Stdout, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&sql, "sql", "", "INSERT statement to edit instead of reading a file or stdin")
	cmd.Flags().StringVar(&table, "table", "", "Rename the target table")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set column=value, appending the column if absent (repeatable)")
	cmd.Flags().StringArrayVar(&adds, "add", nil, "Append column=value (repeatable)")
	cmd.Flags().StringArrayVar(&drops, "drop", nil, "Remove a column (repeatable)")

	return cmd
}

func applyEdits(s *editor.Session, drops, sets, adds []string) error {
	for _, col := range drops {
		if !s.Drop(col) {
			return fmt.Errorf("column %q not found", strings.TrimSpace(col))
		}
	}
	for _, kv := range sets {
		col, val, err := parseAssignment(kv)
		if err != nil {
			return fmt.Errorf("--set: %w", err)
		}
		s.Set(col, val)
	}
	for _, kv := range adds {
		col, val, err := parseAssignment(kv)
		if err != nil {
			return fmt.Errorf("--add: %w", err)
		}
		s.AddRow(col, val)
	}
	return nil
}

// parseAssignment splits "column=value" at the first '='. The value may be
// empty or contain further '=' characters.
func parseAssignment(kv string) (string, string, error) {
	col, val, ok := strings.Cut(kv, "=")
	col = strings.TrimSpace(col)
	if !ok || col == "" {
		return "", "", fmt.Errorf("expected column=value, got %q", kv)
	}
	return col, val, nil
}
