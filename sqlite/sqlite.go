// Package sqlite provides the SQLite dialect for exprql.
//
// Capabilities assume SQLite 3.39 or newer (RETURNING arrived in 3.35,
// IS [NOT] DISTINCT FROM in 3.39).
package sqlite

import "github.com/zoobzio/exprql/internal/render"

// Dialect implements the SQLite dialect. Parameters are ?1, ?2, ...
type Dialect struct{}

// New creates a new SQLite dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name implements exprql.Dialect.
func (*Dialect) Name() string { return "sqlite" }

// Placeholder implements exprql.Dialect.
func (*Dialect) Placeholder(n int) string { return render.NumberedQuestionPlaceholder(n) }

// Capabilities implements exprql.Dialect.
func (*Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Returning:     true,
		DefaultValues: true,
		DistinctFrom:  true,
		Upsert:        true,
	}
}
