package render

import (
	"fmt"
	"strconv"
)

// Feature names a statement feature whose availability varies by dialect.
// Operator tokens never change per dialect; features only gate whether a
// rendered statement is accepted by Render.
type Feature string

const (
	FeatureReturning     Feature = "RETURNING"
	FeatureDefaultValues Feature = "DEFAULT VALUES"
	FeatureDistinctFrom  Feature = "IS DISTINCT FROM"
	FeatureUpsert        Feature = "ON CONFLICT"
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	Returning     bool // INSERT ... RETURNING
	DefaultValues bool // INSERT ... DEFAULT VALUES
	DistinctFrom  bool // IS [NOT] DISTINCT FROM
	Upsert        bool // ON CONFLICT ... DO NOTHING
}

// Supports reports whether the feature is available.
func (c Capabilities) Supports(f Feature) bool {
	switch f {
	case FeatureReturning:
		return c.Returning
	case FeatureDefaultValues:
		return c.DefaultValues
	case FeatureDistinctFrom:
		return c.DistinctFrom
	case FeatureUpsert:
		return c.Upsert
	default:
		return false
	}
}

// Placeholder formats the n-th (1-based) positional parameter.
type Placeholder func(n int) string

// DollarPlaceholder renders $1, $2, ... (PostgreSQL).
func DollarPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// NumberedQuestionPlaceholder renders ?1, ?2, ... (SQLite).
func NumberedQuestionPlaceholder(n int) string {
	return "?" + strconv.Itoa(n)
}

// QuestionPlaceholder renders ? for every parameter (MySQL, MariaDB).
func QuestionPlaceholder(int) string {
	return "?"
}

// AtPlaceholder renders @p1, @p2, ... (SQL Server).
func AtPlaceholder(n int) string {
	return fmt.Sprintf("@p%d", n)
}
