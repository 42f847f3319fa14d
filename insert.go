package exprql

import (
	"fmt"

	"github.com/zoobzio/exprql/internal/render"
	"github.com/zoobzio/exprql/internal/types"
)

// InsertQuery builds an INSERT statement.
//
// Builder methods modify and return the receiver; Into is the exception and
// returns a new query. Arity and the target table are checked when the
// statement is rendered, so columns and values may be added in any order.
type InsertQuery struct {
	with      *WithQuery
	returning Expr
	conflict  *conflictClause
	table     Table
	cols      []Column
	values    []Expr
}

// conflictClause is ON CONFLICT [(cols)] DO NOTHING.
type conflictClause struct {
	cols []Column
}

// Insert creates an empty INSERT query. Call Into to set its target.
func Insert() *InsertQuery {
	return &InsertQuery{}
}

// InsertInto is shorthand for Insert().Into(t).
func InsertInto(t Table) *InsertQuery {
	return Insert().Into(t)
}

// Into sets the target table. Only the WITH prefix carries over: columns,
// values, returning and conflict clauses belong to the previous table and
// are dropped.
func (q *InsertQuery) Into(t Table) *InsertQuery {
	return &InsertQuery{
		with:  q.with,
		table: t,
	}
}

// Cols appends target columns. Only their bare names are rendered.
func (q *InsertQuery) Cols(cols ...Column) *InsertQuery {
	q.cols = append(q.cols, cols...)
	return q
}

// Values appends value expressions. A nil expression panics.
func (q *InsertQuery) Values(exprs ...Expr) *InsertQuery {
	for i, e := range exprs {
		if e == nil {
			panic(fmt.Sprintf("exprql: Values: nil expression at index %d", i))
		}
	}
	q.values = append(q.values, exprs...)
	return q
}

// Value appends a single value expression.
func (q *InsertQuery) Value(expr Expr) *InsertQuery {
	if expr == nil {
		panic("exprql: Value: nil expression")
	}
	q.values = append(q.values, expr)
	return q
}

// Returning sets the RETURNING expression, replacing any previous one.
func (q *InsertQuery) Returning(expr Expr) *InsertQuery {
	if expr == nil {
		panic("exprql: Returning: nil expression")
	}
	q.returning = expr
	return q
}

// OnConflictDoNothing adds ON CONFLICT [(cols)] DO NOTHING.
func (q *InsertQuery) OnConflictDoNothing(cols ...Column) *InsertQuery {
	q.conflict = &conflictClause{cols: cols}
	return q
}

// NeedsWrapping implements Expr. An INSERT nested in another statement is
// always parenthesized.
func (*InsertQuery) NeedsWrapping() bool { return true }

// Collect implements Expr.
func (q *InsertQuery) Collect(w Writer, c *Collector) error {
	if q.table.Name == "" {
		panic(&render.MissingTableError{Statement: "INSERT"})
	}

	if q.with != nil {
		if err := q.with.Collect(w, c); err != nil {
			return err
		}
		if _, err := w.WriteString(" "); err != nil {
			return err
		}
	}

	if _, err := w.WriteString("INSERT INTO "); err != nil {
		return err
	}
	if err := q.table.Collect(w, c); err != nil {
		return err
	}

	if len(q.cols) > 0 {
		if _, err := w.WriteString(" "); err != nil {
			return err
		}
		if err := writeColumnNames(w, q.cols); err != nil {
			return err
		}
	}

	if len(q.values) == 0 {
		c.Use(render.FeatureDefaultValues)
		if _, err := w.WriteString(" DEFAULT VALUES"); err != nil {
			return err
		}
	} else {
		if len(q.cols) > 0 && len(q.cols) != len(q.values) {
			panic(&render.ShapeError{Statement: "INSERT", Columns: len(q.cols), Values: len(q.values)})
		}
		if _, err := w.WriteString(" VALUES "); err != nil {
			return err
		}
		if err := types.CollectDelimited(q.values, true, ", ", w, c); err != nil {
			return err
		}
	}

	if q.conflict != nil {
		c.Use(render.FeatureUpsert)
		if _, err := w.WriteString(" ON CONFLICT"); err != nil {
			return err
		}
		if len(q.conflict.cols) > 0 {
			if _, err := w.WriteString(" "); err != nil {
				return err
			}
			if err := writeColumnNames(w, q.conflict.cols); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(" DO NOTHING"); err != nil {
			return err
		}
	}

	if q.returning != nil {
		c.Use(render.FeatureReturning)
		if _, err := w.WriteString(" RETURNING "); err != nil {
			return err
		}
		if err := types.Collect(q.returning, w, c); err != nil {
			return err
		}
	}

	return nil
}

// writeColumnNames writes ("a", "b") using bare, unqualified names.
func writeColumnNames(w Writer, cols []Column) error {
	if _, err := w.WriteString("("); err != nil {
		return err
	}
	for i, col := range cols {
		if i > 0 {
			if _, err := w.WriteString(", "); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(types.QuoteIdentifier(col.GetName())); err != nil {
			return err
		}
	}
	_, err := w.WriteString(")")
	return err
}
