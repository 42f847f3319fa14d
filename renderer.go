package exprql

import "github.com/zoobzio/exprql/internal/render"

// Dialect supplies the database-specific parts of a render.
// Implementations live in the postgres, sqlite, mariadb and mssql packages.
type Dialect interface {
	// Name identifies the dialect in errors.
	Name() string

	// Placeholder formats the n-th (1-based) positional parameter.
	Placeholder(n int) string

	// Capabilities reports which gated features the dialect accepts.
	Capabilities() render.Capabilities
}
