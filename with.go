package exprql

import (
	"fmt"

	"github.com/zoobzio/exprql/internal/types"
)

// WithQuery is a common-table-expression prefix: WITH "name" AS (query), ...
type WithQuery struct {
	ctes      []cte
	recursive bool
}

type cte struct {
	query Expr
	name  string
}

// With starts a WITH prefix defining name as query. A nil query panics.
func With(name string, query Expr) *WithQuery {
	return (&WithQuery{}).With(name, query)
}

// With adds another common table expression. A nil query panics.
func (wq *WithQuery) With(name string, query Expr) *WithQuery {
	if query == nil {
		panic(fmt.Sprintf("exprql: With: nil query for %q", name))
	}
	wq.ctes = append(wq.ctes, cte{name: name, query: query})
	return wq
}

// Recursive marks the prefix WITH RECURSIVE.
func (wq *WithQuery) Recursive() *WithQuery {
	wq.recursive = true
	return wq
}

// Insert starts an INSERT statement carrying a copy of this prefix. CTEs
// added to wq afterwards do not reach the returned query.
func (wq *WithQuery) Insert() *InsertQuery {
	snapshot := &WithQuery{
		ctes:      append([]cte(nil), wq.ctes...),
		recursive: wq.recursive,
	}
	return &InsertQuery{with: snapshot}
}

// NeedsWrapping implements Expr.
func (*WithQuery) NeedsWrapping() bool { return true }

// Collect implements Expr. Each body is parenthesized exactly once, whether
// or not it is a compound node.
func (wq *WithQuery) Collect(w Writer, c *Collector) error {
	if _, err := w.WriteString("WITH "); err != nil {
		return err
	}
	if wq.recursive {
		if _, err := w.WriteString("RECURSIVE "); err != nil {
			return err
		}
	}
	for i, def := range wq.ctes {
		if i > 0 {
			if _, err := w.WriteString(", "); err != nil {
				return err
			}
		}
		if err := types.WriteAll(w, types.QuoteIdentifier(def.name), " AS ("); err != nil {
			return err
		}
		if err := def.query.Collect(w, c); err != nil {
			return err
		}
		if _, err := w.WriteString(")"); err != nil {
			return err
		}
	}
	return nil
}
