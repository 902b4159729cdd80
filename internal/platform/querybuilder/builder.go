// Package querybuilder assembles the small set of postgres statements the
// worldcup tables need, with $n placeholders.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// sqlWriter accumulates statement text and its bound arguments. Placeholders
// are numbered in bind order.
type sqlWriter struct {
	strings.Builder
	args []any
}

func (w *sqlWriter) bind(v any) {
	w.args = append(w.args, v)
	w.WriteByte('$')
	w.WriteString(strconv.Itoa(len(w.args)))
}

// bindExpr copies expr, binding one arg for each '?'. Extra '?' are kept
// literally.
func (w *sqlWriter) bindExpr(expr string, args []any) {
	for expr != "" {
		i := strings.IndexByte(expr, '?')
		if i < 0 || len(args) == 0 {
			w.WriteString(expr)
			return
		}
		w.WriteString(expr[:i])
		w.bind(args[0])
		args = args[1:]
		expr = expr[i+1:]
	}
}

func (w *sqlWriter) list(items []string) {
	w.WriteString(strings.Join(items, ", "))
}

// Condition is one WHERE predicate; predicates are joined with AND.
type Condition interface {
	writeTo(w *sqlWriter)
}

type condFunc func(w *sqlWriter)

func (f condFunc) writeTo(w *sqlWriter) { f(w) }

// In renders "1=0" for an empty value list so the query stays valid.
func In(column string, values []any) Condition {
	return condFunc(func(w *sqlWriter) {
		if len(values) == 0 {
			w.WriteString("1=0")
			return
		}
		w.WriteString(column)
		w.WriteString(" IN (")
		for i, v := range values {
			if i > 0 {
				w.WriteString(", ")
			}
			w.bind(v)
		}
		w.WriteByte(')')
	})
}

// Expr binds each ? in expr to the next $n placeholder.
func Expr(expr string, args ...any) Condition {
	return condFunc(func(w *sqlWriter) {
		w.bindExpr(expr, args)
	})
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = strings.TrimSpace(table)
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("select columns are required")
	case b.table == "":
		return "", nil, fmt.Errorf("select table is required")
	}

	var w sqlWriter
	w.WriteString("SELECT ")
	w.list(b.columns)
	w.WriteString(" FROM ")
	w.WriteString(b.table)

	for i, c := range b.where {
		if i == 0 {
			w.WriteString(" WHERE ")
		} else {
			w.WriteString(" AND ")
		}
		c.writeTo(&w)
	}
	if len(b.orderBy) > 0 {
		w.WriteString(" ORDER BY ")
		w.list(b.orderBy)
	}
	return w.String(), w.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: strings.TrimSpace(table)}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

// Values appends one row; its width must match Columns.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix is appended verbatim after VALUES, typically an ON CONFLICT clause.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case b.table == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(b.rows) == 0:
		return "", nil, fmt.Errorf("insert values are required")
	}

	w := sqlWriter{args: make([]any, 0, len(b.rows)*len(b.columns))}
	w.WriteString("INSERT INTO ")
	w.WriteString(b.table)
	w.WriteString(" (")
	w.list(b.columns)
	w.WriteString(") VALUES ")

	for r, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", r, len(row), len(b.columns))
		}
		if r > 0 {
			w.WriteString(", ")
		}
		w.WriteByte('(')
		for c, v := range row {
			if c > 0 {
				w.WriteString(", ")
			}
			w.bind(v)
		}
		w.WriteByte(')')
	}

	if b.suffix != "" {
		w.WriteByte(' ')
		w.WriteString(b.suffix)
	}
	return w.String(), w.args, nil
}
