package exprql

import "github.com/zoobzio/exprql/internal/types"

// Arithmetic operators.

// Add creates lhs + rhs.
func Add(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpAdd, rhs) }

// Sub creates lhs - rhs.
func Sub(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpSub, rhs) }

// Mul creates lhs * rhs.
func Mul(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpMul, rhs) }

// Div creates lhs / rhs.
func Div(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpDiv, rhs) }

// Rem creates lhs % rhs.
func Rem(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpRem, rhs) }

// Power creates lhs ^ rhs.
func Power(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpPower, rhs) }

// Bitwise operators.

// BitAnd creates lhs & rhs.
func BitAnd(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpBitAnd, rhs) }

// BitOr creates lhs | rhs.
func BitOr(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpBitOr, rhs) }

// BitXor creates lhs # rhs.
func BitXor(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpBitXor, rhs) }

// ShiftLeft creates lhs << rhs.
func ShiftLeft(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpShiftLeft, rhs) }

// ShiftRight creates lhs >> rhs.
func ShiftRight(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpShiftRight, rhs) }

// Comparison, string and logical operators.

// IsDistinctFrom creates lhs IS DISTINCT FROM rhs.
func IsDistinctFrom(lhs, rhs Expr) BinaryExpr {
	return types.NewBinary(lhs, types.OpIsDistinctFrom, rhs)
}

// IsNotDistinctFrom creates lhs IS NOT DISTINCT FROM rhs.
func IsNotDistinctFrom(lhs, rhs Expr) BinaryExpr {
	return types.NewBinary(lhs, types.OpIsNotDistinctFrom, rhs)
}

// Concat creates lhs || rhs.
func Concat(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpConcat, rhs) }

// And creates lhs AND rhs.
func And(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpAnd, rhs) }

// Or creates lhs OR rhs.
func Or(lhs, rhs Expr) BinaryExpr { return types.NewBinary(lhs, types.OpOr, rhs) }

// Unary operators.

// Not creates !v.
func Not(v Expr) UnaryExpr { return types.NewUnary(types.OpNot, v) }

// Neg creates a numeric negation, rendered as 0 - v.
func Neg(v Expr) UnaryExpr { return types.NewUnary(types.OpNeg, v) }

// BitNot creates ~v.
func BitNot(v Expr) UnaryExpr { return types.NewUnary(types.OpBitNot, v) }

// Abs creates @v.
func Abs(v Expr) UnaryExpr { return types.NewUnary(types.OpAbs, v) }

// Sqrt creates |/v.
func Sqrt(v Expr) UnaryExpr { return types.NewUnary(types.OpSqrt, v) }

// Cbrt creates ||/v.
func Cbrt(v Expr) UnaryExpr { return types.NewUnary(types.OpCbrt, v) }

// Operators chosen at runtime.

// Binary creates lhs op rhs.
func Binary(lhs Expr, op BinaryOp, rhs Expr) BinaryExpr { return types.NewBinary(lhs, op, rhs) }

// Unary creates op v.
func Unary(op UnaryOp, v Expr) UnaryExpr { return types.NewUnary(op, v) }
