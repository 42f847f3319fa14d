package exprql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/exprql/internal/types"
)

// Arg creates a bound value. It renders as the dialect's positional
// placeholder and its value is returned in QueryResult.Args.
func Arg(v any) Expr {
	return types.Bound{Value: v}
}

// TryP creates a named parameter reference, returning an error if the name
// is invalid.
func TryP(name string) (Param, error) {
	if !isValidParamName(name) {
		return Param{}, fmt.Errorf("invalid parameter name '%s': must be alphanumeric with underscores, starting with letter", name)
	}
	return Param{Name: name}, nil
}

// P creates a named parameter reference (":name").
func P(name string) Param {
	p, err := TryP(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Only allows alphanumeric characters and underscores, must start with letter.
func isValidParamName(name string) bool {
	if name == "" {
		return false
	}

	first := name[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z')) {
		return false
	}

	for i := 1; i < len(name); i++ {
		ch := name[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	// Reject SQL keywords that could be confusing
	lower := strings.ToLower(name)
	sqlKeywords := []string{
		"select", "insert", "update", "delete", "drop",
		"create", "alter", "table", "from", "where",
		"and", "or", "not", "null", "true", "false",
		"union", "join", "having", "group", "order",
		"values", "default", "returning", "into", "conflict", "with",
	}
	for _, keyword := range sqlKeywords {
		if lower == keyword {
			return false
		}
	}

	return true
}
