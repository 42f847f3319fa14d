package types

import (
	"strconv"
	"strings"
)

// Int is an integer literal.
type Int int64

// NeedsWrapping implements Expr.
func (Int) NeedsWrapping() bool { return false }

// Collect implements Expr.
func (i Int) Collect(w Writer, _ *Collector) error {
	_, err := w.WriteString(strconv.FormatInt(int64(i), 10))
	return err
}

// Float is a floating point literal.
type Float float64

// NeedsWrapping implements Expr.
func (Float) NeedsWrapping() bool { return false }

// Collect implements Expr.
func (f Float) Collect(w Writer, _ *Collector) error {
	_, err := w.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 64))
	return err
}

// Text is a string literal, single-quoted with embedded quotes doubled.
type Text string

// NeedsWrapping implements Expr.
func (Text) NeedsWrapping() bool { return false }

// Collect implements Expr.
func (t Text) Collect(w Writer, _ *Collector) error {
	_, err := w.WriteString("'" + strings.ReplaceAll(string(t), "'", "''") + "'")
	return err
}

// Bool is a boolean literal.
type Bool bool

// NeedsWrapping implements Expr.
func (Bool) NeedsWrapping() bool { return false }

// Collect implements Expr.
func (b Bool) Collect(w Writer, _ *Collector) error {
	s := "FALSE"
	if b {
		s = "TRUE"
	}
	_, err := w.WriteString(s)
	return err
}

// Null is the SQL NULL literal.
type Null struct{ Leaf }

// Collect implements Expr.
func (Null) Collect(w Writer, _ *Collector) error {
	_, err := w.WriteString("NULL")
	return err
}

// Default is the DEFAULT keyword, valid inside an INSERT value list.
type Default struct{ Leaf }

// Collect implements Expr.
func (Default) Collect(w Writer, _ *Collector) error {
	_, err := w.WriteString("DEFAULT")
	return err
}

// Raw is an escape hatch for a trusted SQL fragment, written verbatim and
// treated as a leaf.
type Raw string

// NeedsWrapping implements Expr.
func (Raw) NeedsWrapping() bool { return false }

// Collect implements Expr.
func (r Raw) Collect(w Writer, _ *Collector) error {
	_, err := w.WriteString(string(r))
	return err
}
