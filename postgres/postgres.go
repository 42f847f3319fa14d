// Package postgres provides the PostgreSQL dialect for exprql.
package postgres

import "github.com/zoobzio/exprql/internal/render"

// Dialect implements the PostgreSQL dialect. Parameters are $1, $2, ...
type Dialect struct{}

// New creates a new PostgreSQL dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name implements exprql.Dialect.
func (*Dialect) Name() string { return "postgres" }

// Placeholder implements exprql.Dialect.
func (*Dialect) Placeholder(n int) string { return render.DollarPlaceholder(n) }

// Capabilities implements exprql.Dialect.
func (*Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Returning:     true,
		DefaultValues: true,
		DistinctFrom:  true,
		Upsert:        true,
	}
}
