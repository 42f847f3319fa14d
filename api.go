// Package exprql builds SQL expression trees and INSERT statements and
// renders them to SQL text.
//
// Trees are composed bottom-up from leaves (literals, bound arguments,
// named parameters, columns) and operator nodes, then rendered in a single
// depth-first walk that writes straight into an io.StringWriter.
//
// # Basic Usage
//
//	users := exprql.T("users")
//	name, visits := exprql.C(users, "name"), exprql.C(users, "visits")
//
//	query := exprql.Insert().
//		Into(users).
//		Cols(name, visits).
//		Values(exprql.Arg("alice"), exprql.Add(exprql.Arg(1), exprql.Int(1))).
//		Returning(exprql.C(users, "id"))
//
//	result, err := exprql.Render(query, postgres.New())
//	// result.SQL: INSERT INTO "users" ("name", "visits") VALUES ($1, ($2 + 1)) RETURNING "users"."id"
//	// result.Args: []any{"alice", 1}
//
// # Parenthesization
//
// Every operator node is parenthesized whenever it is nested inside another
// node; leaves never are. Operator precedence is never consulted, so a
// rendered tree always means exactly what it was built as, at the price of
// some redundant parentheses:
//
//	exprql.Mul(exprql.Add(a, b), c) // ("a" + "b") * "c"
//	exprql.Add(exprql.Mul(a, b), c) // ("a" * "b") + "c"
//
// # Dialects
//
// Dialects (postgres, sqlite, mariadb, mssql) decide how positional
// parameters are written and which statement features are accepted.
// Operator tokens and keywords are identical in every dialect.
//
// # Schema-Validated Usage
//
// For validated table and column references, create a Schema from a DBML
// project:
//
//	schema, err := exprql.NewFromDBML(project)
//	if err != nil {
//		return err
//	}
//
//	// These panic if the table/column doesn't exist in the schema
//	users := schema.T("users")
//	email := schema.C(users, "email")
package exprql

import (
	"github.com/zoobzio/exprql/internal/render"
	"github.com/zoobzio/exprql/internal/types"
)

// Expr is any node that can appear where a SQL expression is expected.
type Expr = types.Expr

// Writer is the sink rendered SQL is written to.
type Writer = types.Writer

// Collector is the per-render state threaded through a tree.
type Collector = types.Collector

// QueryResult contains the rendered SQL and its parameters.
type QueryResult = types.QueryResult

// Table and Column are validated identifiers.
type (
	Table  = types.Table
	Column = types.Column
)

// Leaf nodes.
type (
	Int     = types.Int
	Float   = types.Float
	Text    = types.Text
	Bool    = types.Bool
	Null    = types.Null
	Default = types.Default
	Raw     = types.Raw
	Param   = types.Param
)

// Operator nodes.
type (
	BinaryExpr = types.BinaryExpr
	UnaryExpr  = types.UnaryExpr
	BinaryOp   = types.BinaryOp
	UnaryOp    = types.UnaryOp
)

// Re-export binary operator constants for public API.
const (
	OpAdd               = types.OpAdd
	OpSub               = types.OpSub
	OpMul               = types.OpMul
	OpDiv               = types.OpDiv
	OpRem               = types.OpRem
	OpPower             = types.OpPower
	OpBitAnd            = types.OpBitAnd
	OpBitOr             = types.OpBitOr
	OpBitXor            = types.OpBitXor
	OpShiftLeft         = types.OpShiftLeft
	OpShiftRight        = types.OpShiftRight
	OpIsDistinctFrom    = types.OpIsDistinctFrom
	OpIsNotDistinctFrom = types.OpIsNotDistinctFrom
	OpConcat            = types.OpConcat
	OpAnd               = types.OpAnd
	OpOr                = types.OpOr
)

// Re-export unary operator constants for public API.
const (
	OpNot    = types.OpNot
	OpNeg    = types.OpNeg
	OpBitNot = types.OpBitNot
	OpAbs    = types.OpAbs
	OpSqrt   = types.OpSqrt
	OpCbrt   = types.OpCbrt
)

// Feature names a dialect-gated statement feature.
type Feature = render.Feature

// Re-export feature constants for public API.
const (
	FeatureReturning     = render.FeatureReturning
	FeatureDefaultValues = render.FeatureDefaultValues
	FeatureDistinctFrom  = render.FeatureDistinctFrom
	FeatureUpsert        = render.FeatureUpsert
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities = render.Capabilities

// ShapeError is the panic value raised when a statement's clauses disagree
// in arity.
type ShapeError = render.ShapeError

// MissingTableError is the panic value raised when an INSERT is rendered
// before Into set its target.
type MissingTableError = render.MissingTableError

// UnsupportedFeatureError is returned by Render when a statement uses a
// feature its dialect lacks.
type UnsupportedFeatureError = render.UnsupportedFeatureError
