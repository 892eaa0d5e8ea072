package cli

import (
	"context"

	"insertkit/internal/columnlist"
	"insertkit/internal/sqlinsert"
)

// backend is what the commands need from the core, either in-process or
// over HTTP.
type backend interface {
	Parse(ctx context.Context, sql string) (*sqlinsert.ParsedInsert, error)
	Build(ctx context.Context, table string, pairs []sqlinsert.Pair) (string, error)
	Format(ctx context.Context, values []string) ([]string, error)
	Convert(ctx context.Context, text string) (columnlist.Result, error)
}

type localBackend struct{}

func (localBackend) Parse(_ context.Context, sql string) (*sqlinsert.ParsedInsert, error) {
	return sqlinsert.Parse(sql)
}

func (localBackend) Build(_ context.Context, table string, pairs []sqlinsert.Pair) (string, error) {
	return sqlinsert.Build(table, pairs)
}

func (localBackend) Format(_ context.Context, values []string) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = sqlinsert.FormatValue(v)
	}
	return out, nil
}

func (localBackend) Convert(_ context.Context, text string) (columnlist.Result, error) {
	return columnlist.Convert(text), nil
}
