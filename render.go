package exprql

import (
	"strings"

	"github.com/zoobzio/exprql/internal/render"
	"github.com/zoobzio/exprql/internal/types"
)

// featureHints suggest a portable rewrite when a dialect rejects a feature.
var featureHints = map[render.Feature]string{
	render.FeatureReturning:     "select the inserted row in a separate query",
	render.FeatureDefaultValues: "list the columns and insert DEFAULT for each",
	render.FeatureDistinctFrom:  "compare with = and IS NULL explicitly",
	render.FeatureUpsert:        "check for the row before inserting",
}

// NewCollector creates a render context for one walk in dialect d.
func NewCollector(d Dialect) *Collector {
	return types.NewCollector(d.Placeholder)
}

// CollectExpr renders e into w, parenthesized iff e.NeedsWrapping().
// Custom Expr implementations render their children through it.
func CollectExpr(e Expr, w Writer, c *Collector) error {
	return types.Collect(e, w, c)
}

// CollectDelimited renders exprs separated by delim, each through CollectExpr,
// optionally enclosing the whole list in one pair of parentheses.
func CollectDelimited(exprs []Expr, wrap bool, delim string, w Writer, c *Collector) error {
	return types.CollectDelimited(exprs, wrap, delim, w, c)
}

// Render renders e as a top-level statement or expression for dialect d.
// The outermost node is never parenthesized.
//
// After the walk every feature the tree used is checked against the dialect;
// the first unsupported one is returned as an UnsupportedFeatureError.
// A statement whose clauses disagree in arity panics with *ShapeError, and an
// INSERT without a target table panics with *MissingTableError.
func Render(e Expr, d Dialect) (*QueryResult, error) {
	var sql strings.Builder
	c := NewCollector(d)

	if err := e.Collect(&sql, c); err != nil {
		return nil, err
	}

	caps := d.Capabilities()
	for _, f := range c.Features() {
		if !caps.Supports(f) {
			return nil, render.NewUnsupportedFeatureError(d.Name(), string(f), featureHints[f])
		}
	}

	return &QueryResult{
		SQL:            sql.String(),
		Args:           c.Args(),
		RequiredParams: c.RequiredParams(),
	}, nil
}

// MustRender renders e or panics on error.
func MustRender(e Expr, d Dialect) *QueryResult {
	result, err := Render(e, d)
	if err != nil {
		panic(err)
	}
	return result
}

// String renders e with $n placeholders and no feature checks.
// It is meant for logging and debugging.
func String(e Expr) string {
	var sql strings.Builder
	_ = e.Collect(&sql, types.NewCollector(render.DollarPlaceholder)) //nolint:errcheck // strings.Builder never fails
	return sql.String()
}
