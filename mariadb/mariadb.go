// Package mariadb provides the MariaDB dialect for exprql.
//
// Identifiers are double-quoted, so connections must run with
// sql_mode including ANSI_QUOTES.
package mariadb

import "github.com/zoobzio/exprql/internal/render"

// Dialect implements the MariaDB dialect. Every parameter is ?.
type Dialect struct{}

// New creates a new MariaDB dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name implements exprql.Dialect.
func (*Dialect) Name() string { return "mariadb" }

// Placeholder implements exprql.Dialect.
func (*Dialect) Placeholder(n int) string { return render.QuestionPlaceholder(n) }

// Capabilities implements exprql.Dialect.
// MariaDB has INSERT ... RETURNING since 10.5 but no DEFAULT VALUES,
// IS DISTINCT FROM (it uses <=>) or ON CONFLICT.
func (*Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Returning: true,
	}
}
