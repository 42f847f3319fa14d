package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/mariadb"
	"github.com/zoobzio/exprql/mssql"
	"github.com/zoobzio/exprql/postgres"
	"github.com/zoobzio/exprql/sqlite"
)

var dialects = map[string]func() exprql.Dialect{
	"postgres": func() exprql.Dialect { return postgres.New() },
	"sqlite":   func() exprql.Dialect { return sqlite.New() },
	"mariadb":  func() exprql.Dialect { return mariadb.New() },
	"mssql":    func() exprql.Dialect { return mssql.New() },
}

// DialectNames lists the known dialects in sorted order.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DialectByName returns the named dialect. Names are case-insensitive.
func DialectByName(name string) (exprql.Dialect, error) {
	newDialect, ok := dialects[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (want one of %s)", name, strings.Join(DialectNames(), ", "))
	}
	return newDialect(), nil
}
