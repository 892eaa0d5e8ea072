package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"insertkit/internal/sqlinsert"
)

// fileResult is the outcome of parsing one file.
type fileResult struct {
	File      string           `json:"file"`
	TableName string           `json:"table_name,omitempty"`
	Pairs     []sqlinsert.Pair `json:"pairs,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func newParseCmd(opts *rootOptions) *cobra.Command {
	var sql string

	cmd := &cobra.Command{
		Use:   "parse [FILE...]",
		Short: "Parse INSERT statements into column/value pairs",
		Long: `Parse one INSERT statement per input. With several files they are parsed
concurrently and reported in argument order. Without files the statement is
read from --sql or stdin.`,
		Example: `  insertkit parse --sql "INSERT INTO t (a, b) VALUES (1, 'x')"
  insertkit parse a.sql b.sql -o json
  pbpaste | insertkit parse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := opts.backend()
			ctx := cmd.Context()

			if cmd.Flags().Changed("sql") || len(args) <= 1 {
				text, err := resolveInput(cmd, sql, cmd.Flags().Changed("sql"), args)
				if err != nil {
					return err
				}
				parsed, err := b.Parse(ctx, text)
				if err != nil {
					return err
				}
				return printParsed(cmd, parsed)
			}

			results, err := parseFiles(ctx, b, args, runtime.NumCPU())
			if err != nil {
				return err
			}
			return printFileResults(cmd, results)
		},
	}

	cmd.Flags().StringVar(&sql, "sql", "", "INSERT statement to parse instead of reading a file or stdin")

	return cmd
}

// parseFiles parses every file with at most limit in flight. Parse failures
// are recorded per file; read failures abort the run.
func parseFiles(ctx context.Context, b backend, files []string, limit int) ([]fileResult, error) {
	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range files {
		g.Go(func() error {
			text, err := readFile(path)
			if err != nil {
				return err
			}
			res := fileResult{File: path}
			parsed, err := b.Parse(gctx, text)
			switch {
			case err == nil:
				res.TableName = parsed.TableName
				res.Pairs = parsed.Pairs
			case isParseError(err):
				res.Error = err.Error()
			default:
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// isParseError reports whether err is a rejection of the input rather than
// a transport or I/O failure.
func isParseError(err error) bool {
	var parseErr *sqlinsert.ParseError
	var apiErr *APIError
	if errors.As(err, &parseErr) {
		return true
	}
	return errors.As(err, &apiErr) && apiErr.HTTPStatus == 422
}

func printParsed(cmd *cobra.Command, parsed *sqlinsert.ParsedInsert) error {
	if getOutputFormat(cmd) == "json" {
		return PrintJSON(os.Stdout, parsed)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Table: %s\n", parsed.TableName)
	PrintTable(os.Stdout, []string{"#", "column", "value"}, pairRows(parsed.Pairs))
	return nil
}

func printFileResults(cmd *cobra.Command, results []fileResult) error {
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	if getOutputFormat(cmd) == "json" {
		if err := PrintJSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		for i, r := range results {
			if i > 0 {
				_, _ = fmt.Fprintln(os.Stdout)
			}
			_, _ = fmt.Fprintf(os.Stdout, "==> %s <==\n", r.File)
			if r.Error != "" {
				_, _ = fmt.Fprintf(os.Stdout, "Error: %s\n", r.Error)
				continue
			}
			_, _ = fmt.Fprintf(os.Stdout, "Table: %s\n", r.TableName)
			PrintTable(os.Stdout, []string{"#", "column", "value"}, pairRows(r.Pairs))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(results))
	}
	return nil
}

func pairRows(pairs []sqlinsert.Pair) [][]string {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{strconv.Itoa(i), p.Column, p.Value}
	}
	return rows
}
