// Package mssql provides the SQL Server dialect for exprql.
package mssql

import "github.com/zoobzio/exprql/internal/render"

// Dialect implements the SQL Server dialect. Parameters are @p1, @p2, ...
// as expected by github.com/microsoft/go-mssqldb.
type Dialect struct{}

// New creates a new SQL Server dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name implements exprql.Dialect.
func (*Dialect) Name() string { return "mssql" }

// Placeholder implements exprql.Dialect.
func (*Dialect) Placeholder(n int) string { return render.AtPlaceholder(n) }

// Capabilities implements exprql.Dialect.
// SQL Server reports inserted rows through OUTPUT rather than RETURNING and
// has no ON CONFLICT. IS DISTINCT FROM needs SQL Server 2022.
func (*Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		DefaultValues: true,
		DistinctFrom:  true,
	}
}
