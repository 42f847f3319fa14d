package types

import "github.com/zoobzio/exprql/internal/render"

// BinaryExpr renders "lhs op rhs". Children are wrapped by Collect.
type BinaryExpr struct {
	Compound
	lhs Expr
	rhs Expr
	op  BinaryOp
}

// NewBinary creates a binary node. It never fails.
func NewBinary(lhs Expr, op BinaryOp, rhs Expr) BinaryExpr {
	return BinaryExpr{lhs: lhs, rhs: rhs, op: op}
}

// Op returns the node's operator.
func (b BinaryExpr) Op() BinaryOp { return b.op }

// Collect implements Expr.
func (b BinaryExpr) Collect(w Writer, c *Collector) error {
	if b.op == OpIsDistinctFrom || b.op == OpIsNotDistinctFrom {
		c.Use(render.FeatureDistinctFrom)
	}
	if err := Collect(b.lhs, w, c); err != nil {
		return err
	}
	if err := WriteAll(w, " ", b.op.String(), " "); err != nil {
		return err
	}
	return Collect(b.rhs, w, c)
}

// UnaryExpr renders its prefix token directly followed by its operand.
type UnaryExpr struct {
	Compound
	value Expr
	op    UnaryOp
}

// NewUnary creates a unary node. It never fails.
func NewUnary(op UnaryOp, value Expr) UnaryExpr {
	return UnaryExpr{value: value, op: op}
}

// Op returns the node's operator.
func (u UnaryExpr) Op() UnaryOp { return u.op }

// Collect implements Expr.
func (u UnaryExpr) Collect(w Writer, c *Collector) error {
	if _, err := w.WriteString(u.op.String()); err != nil {
		return err
	}
	return Collect(u.value, w, c)
}
