package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/hbnb/internal/logger"
)

// Finder runs read queries against one table and scans rows into T.
// Every read goes to the store; nothing is cached.
type Finder[T any] struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
	table   string
	columns []any
	order   []exp.OrderedExpression
}

// NewFinder creates a Finder for the table T is stored in. Rows are
// ordered by the given columns, ascending.
func NewFinder[T any](db *sqlx.DB, dialect, table string, orderBy ...string) *Finder[T] {
	names := ColumnNames[T]()
	columns := make([]any, len(names))
	for i, n := range names {
		columns[i] = n
	}
	order := make([]exp.OrderedExpression, len(orderBy))
	for i, c := range orderBy {
		order[i] = goqu.C(c).Asc()
	}
	return &Finder[T]{
		db:      db,
		dialect: goqu.Dialect(dialect),
		table:   table,
		columns: columns,
		order:   order,
	}
}

// Get returns the first row matching the expressions, or nil when none does.
func (f *Finder[T]) Get(ctx context.Context, where ...exp.Expression) (*T, error) {
	query, args, err := f.dataset(where).Limit(1).ToSQL()
	if err != nil {
		return nil, err
	}

	var row T
	err = sqlx.GetContext(ctx, f.db, &row, query, args...)

	// Log with query in single line
	logger.Log.Infow("get row",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Select returns every row matching the expressions.
func (f *Finder[T]) Select(ctx context.Context, where ...exp.Expression) ([]T, error) {
	query, args, err := f.dataset(where).ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []T
	err = sqlx.SelectContext(ctx, f.db, &rows, query, args...)

	// Log with query in single line
	logger.Log.Infow("select rows",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

func (f *Finder[T]) dataset(where []exp.Expression) *goqu.SelectDataset {
	ds := f.dialect.From(f.table).Select(f.columns...).Prepared(true)
	if len(where) > 0 {
		ds = ds.Where(where...)
	}
	if len(f.order) > 0 {
		ds = ds.Order(f.order...)
	}
	return ds
}
