package types

import "strconv"

// BinaryOp identifies a binary operator.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpPower
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShiftLeft
	OpShiftRight
	OpIsDistinctFrom
	OpIsNotDistinctFrom
	OpConcat
	OpAnd
	OpOr
)

var binaryTokens = [...]string{
	OpAdd:               "+",
	OpSub:               "-",
	OpMul:               "*",
	OpDiv:               "/",
	OpRem:               "%",
	OpPower:             "^",
	OpBitAnd:            "&",
	OpBitOr:             "|",
	OpBitXor:            "#",
	OpShiftLeft:         "<<",
	OpShiftRight:        ">>",
	OpIsDistinctFrom:    "IS DISTINCT FROM",
	OpIsNotDistinctFrom: "IS NOT DISTINCT FROM",
	OpConcat:            "||",
	OpAnd:               "AND",
	OpOr:                "OR",
}

// String returns the SQL token for the operator.
func (op BinaryOp) String() string {
	if op >= 0 && int(op) < len(binaryTokens) {
		return binaryTokens[op]
	}
	return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
}

// UnaryOp identifies a prefix operator.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNeg
	OpBitNot
	OpAbs
	OpSqrt
	OpCbrt
)

// Negation is written as a subtraction from zero so it never fuses with a
// following minus sign or comment marker.
var unaryTokens = [...]string{
	OpNot:    "!",
	OpNeg:    "0 - ",
	OpBitNot: "~",
	OpAbs:    "@",
	OpSqrt:   "|/",
	OpCbrt:   "||/",
}

// String returns the SQL prefix token for the operator.
func (op UnaryOp) String() string {
	if op >= 0 && int(op) < len(unaryTokens) {
		return unaryTokens[op]
	}
	return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
}
