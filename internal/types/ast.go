package types

import "io"

// Writer is the append-only sink rendered SQL is written to.
// *strings.Builder and *bufio.Writer both satisfy it.
type Writer = io.StringWriter

// Expr is any node that can appear where a SQL expression is expected.
// This is exported from the internal package so the base package can use it,
// but external users cannot import this package.
type Expr interface {
	// Collect writes the node's SQL into w, rendering children through
	// Collect. It fails only when w fails.
	Collect(w Writer, c *Collector) error

	// NeedsWrapping reports whether the node must be parenthesized when it
	// is rendered as a child of another node.
	NeedsWrapping() bool
}

// Leaf is embedded by nodes that never need parentheses.
type Leaf struct{}

// NeedsWrapping implements Expr.
func (Leaf) NeedsWrapping() bool { return false }

// Compound is embedded by composite nodes. Every composite node is wrapped
// when nested, whatever its operator: precedence is never consulted.
type Compound struct{}

// NeedsWrapping implements Expr.
func (Compound) NeedsWrapping() bool { return true }

// Collect renders e, surrounded by parentheses iff e.NeedsWrapping().
// Parents render every child through this function.
func Collect(e Expr, w Writer, c *Collector) error {
	if !e.NeedsWrapping() {
		return e.Collect(w, c)
	}
	if _, err := w.WriteString("("); err != nil {
		return err
	}
	if err := e.Collect(w, c); err != nil {
		return err
	}
	_, err := w.WriteString(")")
	return err
}

// CollectDelimited renders exprs through Collect separated by delim. When wrap
// is set the whole list is enclosed in a single pair of parentheses.
func CollectDelimited(exprs []Expr, wrap bool, delim string, w Writer, c *Collector) error {
	if wrap {
		if _, err := w.WriteString("("); err != nil {
			return err
		}
	}
	for i, e := range exprs {
		if i > 0 {
			if _, err := w.WriteString(delim); err != nil {
				return err
			}
		}
		if err := Collect(e, w, c); err != nil {
			return err
		}
	}
	if wrap {
		if _, err := w.WriteString(")"); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll writes each string in order, stopping at the first failure.
func WriteAll(w Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := w.WriteString(p); err != nil {
			return err
		}
	}
	return nil
}
