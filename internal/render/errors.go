package render

import "fmt"

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// ShapeError reports a statement whose clauses disagree in arity, such as an
// INSERT listing three columns but two values. It is raised with panic at
// render time: the statement was built wrong and no output can be correct.
type ShapeError struct {
	Statement string
	Columns   int
	Values    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: columns and values must be equal length (%d columns, %d values)",
		e.Statement, e.Columns, e.Values)
}

// MissingTableError reports a statement rendered without a target table.
// Like ShapeError it is raised with panic, before any of the statement is
// written.
type MissingTableError struct {
	Statement string
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("%s: no target table (use Into)", e.Statement)
}
