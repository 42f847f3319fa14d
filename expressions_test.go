package exprql_test

import (
	"strings"
	"testing"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/postgres"
)

func TestBinaryOperators(t *testing.T) {
	a, b := opaque("a"), opaque("b")

	tests := []struct {
		name string
		expr exprql.BinaryExpr
		want string
	}{
		{"Add", exprql.Add(a, b), "a + b"},
		{"Sub", exprql.Sub(a, b), "a - b"},
		{"Mul", exprql.Mul(a, b), "a * b"},
		{"Div", exprql.Div(a, b), "a / b"},
		{"Rem", exprql.Rem(a, b), "a % b"},
		{"Power", exprql.Power(a, b), "a ^ b"},
		{"BitAnd", exprql.BitAnd(a, b), "a & b"},
		{"BitOr", exprql.BitOr(a, b), "a | b"},
		{"BitXor", exprql.BitXor(a, b), "a # b"},
		{"ShiftLeft", exprql.ShiftLeft(a, b), "a << b"},
		{"ShiftRight", exprql.ShiftRight(a, b), "a >> b"},
		{"IsDistinctFrom", exprql.IsDistinctFrom(a, b), "a IS DISTINCT FROM b"},
		{"IsNotDistinctFrom", exprql.IsNotDistinctFrom(a, b), "a IS NOT DISTINCT FROM b"},
		{"Concat", exprql.Concat(a, b), "a || b"},
		{"And", exprql.And(a, b), "a AND b"},
		{"Or", exprql.Or(a, b), "a OR b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exprql.String(tt.expr); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if !tt.expr.NeedsWrapping() {
				t.Error("binary expression should need wrapping")
			}
		})
	}
}

func TestUnaryOperators(t *testing.T) {
	a := opaque("a")

	tests := []struct {
		name string
		expr exprql.UnaryExpr
		want string
	}{
		{"Not", exprql.Not(a), "!a"},
		{"Neg", exprql.Neg(a), "0 - a"},
		{"BitNot", exprql.BitNot(a), "~a"},
		{"Abs", exprql.Abs(a), "@a"},
		{"Sqrt", exprql.Sqrt(a), "|/a"},
		{"Cbrt", exprql.Cbrt(a), "||/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exprql.String(tt.expr); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if !tt.expr.NeedsWrapping() {
				t.Error("unary expression should need wrapping")
			}
		})
	}
}

func TestOperatorAccessors(t *testing.T) {
	if op := exprql.Mul(opaque("a"), opaque("b")).Op(); op != exprql.OpMul {
		t.Errorf("Op() = %v, want %v", op, exprql.OpMul)
	}
	if op := exprql.Neg(opaque("a")).Op(); op != exprql.OpNeg {
		t.Errorf("Op() = %v, want %v", op, exprql.OpNeg)
	}
}

func TestNesting(t *testing.T) {
	a, b, c, d := opaque("a"), opaque("b"), opaque("c"), opaque("d")

	tests := []struct {
		name string
		expr exprql.Expr
		want string
	}{
		{"left child wrapped", exprql.Mul(exprql.Add(a, b), c), "(a + b) * c"},
		{"right child wrapped", exprql.Sub(a, exprql.Sub(b, c)), "a - (b - c)"},
		{"higher precedence still wrapped", exprql.Add(exprql.Mul(a, b), c), "(a * b) + c"},
		{"both children wrapped", exprql.Or(exprql.And(a, b), exprql.And(c, d)), "(a AND b) OR (c AND d)"},
		{"unary operand wrapped", exprql.Neg(exprql.Add(a, b)), "0 - (a + b)"},
		{"unary inside binary", exprql.Sub(a, exprql.Neg(b)), "a - (0 - b)"},
		{"unary of unary", exprql.Not(exprql.Not(a)), "!(!a)"},
		{"triple nesting", exprql.Mul(exprql.Add(exprql.Sub(a, b), c), d), "((a - b) + c) * d"},
		{"leaves never wrapped", exprql.Add(exprql.Int(1), exprql.Text("x")), "1 + 'x'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exprql.String(tt.expr); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNegationNeverFusesWithMinus(t *testing.T) {
	got := exprql.String(exprql.Sub(exprql.Int(5), exprql.Neg(exprql.Int(3))))
	if got != "5 - (0 - 3)" {
		t.Errorf("String() = %q, want %q", got, "5 - (0 - 3)")
	}
}

func TestCollectExpr_Wrapping(t *testing.T) {
	d := exprql.Add(opaque("a"), opaque("b"))

	var sb strings.Builder
	if err := exprql.CollectExpr(d, &sb, exprql.NewCollector(postgres.New())); err != nil {
		t.Fatalf("CollectExpr() error = %v", err)
	}
	if got := sb.String(); got != "(a + b)" {
		t.Errorf("CollectExpr() = %q, want %q", got, "(a + b)")
	}
}

func TestCollectDelimited(t *testing.T) {
	exprs := []exprql.Expr{opaque("a"), exprql.Add(opaque("b"), opaque("c")), opaque("d")}

	tests := []struct {
		name string
		wrap bool
		want string
	}{
		{"wrapped", true, "(a, (b + c), d)"},
		{"unwrapped", false, "a, (b + c), d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := exprql.CollectDelimited(exprs, tt.wrap, ", ", &sb, exprql.NewCollector(postgres.New())); err != nil {
				t.Fatalf("CollectDelimited() error = %v", err)
			}
			if got := sb.String(); got != tt.want {
				t.Errorf("CollectDelimited() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		name string
		expr exprql.Expr
		want string
	}{
		{"Int", exprql.Int(-42), "-42"},
		{"Float", exprql.Float(1.5), "1.5"},
		{"Text", exprql.Text("it's"), "'it''s'"},
		{"Bool true", exprql.Bool(true), "TRUE"},
		{"Bool false", exprql.Bool(false), "FALSE"},
		{"Null", exprql.Null{}, "NULL"},
		{"Default", exprql.Default{}, "DEFAULT"},
		{"Raw", exprql.Raw("now()"), "now()"},
		{"Param", exprql.P("user_id"), ":user_id"},
		{"Arg", exprql.Arg(7), "$1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exprql.String(tt.expr); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if tt.expr.NeedsWrapping() {
				t.Error("leaf should not need wrapping")
			}
		})
	}
}

func TestRuntimeOperators(t *testing.T) {
	if got := exprql.String(exprql.Binary(opaque("a"), exprql.OpShiftLeft, opaque("b"))); got != "a << b" {
		t.Errorf("Binary() = %q, want %q", got, "a << b")
	}
	if got := exprql.String(exprql.Unary(exprql.OpCbrt, opaque("a"))); got != "||/a" {
		t.Errorf("Unary() = %q, want %q", got, "||/a")
	}
}
