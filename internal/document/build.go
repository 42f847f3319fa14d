package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zoobzio/exprql"
)

var binaryOps = map[string]exprql.BinaryOp{
	"add":                  exprql.OpAdd,
	"sub":                  exprql.OpSub,
	"mul":                  exprql.OpMul,
	"div":                  exprql.OpDiv,
	"rem":                  exprql.OpRem,
	"power":                exprql.OpPower,
	"bit_and":              exprql.OpBitAnd,
	"bit_or":               exprql.OpBitOr,
	"bit_xor":              exprql.OpBitXor,
	"shift_left":           exprql.OpShiftLeft,
	"shift_right":          exprql.OpShiftRight,
	"is_distinct_from":     exprql.OpIsDistinctFrom,
	"is_not_distinct_from": exprql.OpIsNotDistinctFrom,
	"concat":               exprql.OpConcat,
	"and":                  exprql.OpAnd,
	"or":                   exprql.OpOr,
}

var unaryOps = map[string]exprql.UnaryOp{
	"not":     exprql.OpNot,
	"neg":     exprql.OpNeg,
	"bit_not": exprql.OpBitNot,
	"abs":     exprql.OpAbs,
	"sqrt":    exprql.OpSqrt,
	"cbrt":    exprql.OpCbrt,
}

// builder resolves names while a document is turned into a query.
// A nil schema accepts any well-formed identifier.
type builder struct {
	schema *exprql.Schema
}

// Build turns the document into an INSERT query. When schema is non-nil every
// table and column must exist in it.
//
// Unlike the query builder, Build reports a column/value count mismatch as an
// error: a document is input, not code.
func (s *Statement) Build(schema *exprql.Schema) (*exprql.InsertQuery, error) {
	b := &builder{schema: schema}
	return b.insert(s)
}

func (b *builder) insert(s *Statement) (*exprql.InsertQuery, error) {
	if s.Table == "" {
		return nil, fmt.Errorf("table is required")
	}
	if len(s.Columns) > 0 && len(s.Values) > 0 && len(s.Columns) != len(s.Values) {
		return nil, fmt.Errorf("table %s: %d columns but %d values", s.Table, len(s.Columns), len(s.Values))
	}

	t, err := b.table(s.Table, s.Schema)
	if err != nil {
		return nil, err
	}

	q := exprql.Insert()
	if s.With != nil {
		w, err := b.with(s.With, t)
		if err != nil {
			return nil, fmt.Errorf("with: %w", err)
		}
		q = w.Insert()
	}
	q = q.Into(t)

	cols, err := b.columns(t, s.Columns)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	q.Cols(cols...)

	for i := range s.Values {
		e, err := b.node(&s.Values[i], t)
		if err != nil {
			return nil, fmt.Errorf("values[%d]: %w", i, err)
		}
		q.Value(e)
	}

	if s.OnConflict != nil {
		target, err := b.columns(t, s.OnConflict.Columns)
		if err != nil {
			return nil, fmt.Errorf("on_conflict: %w", err)
		}
		q.OnConflictDoNothing(target...)
	}

	if s.Returning != nil {
		e, err := b.node(s.Returning, t)
		if err != nil {
			return nil, fmt.Errorf("returning: %w", err)
		}
		q.Returning(e)
	}

	return q, nil
}

func (b *builder) with(w *With, t exprql.Table) (*exprql.WithQuery, error) {
	if len(w.CTEs) == 0 {
		return nil, fmt.Errorf("at least one cte is required")
	}

	var wq *exprql.WithQuery
	for i := range w.CTEs {
		def := &w.CTEs[i]
		if def.Name == "" {
			return nil, fmt.Errorf("ctes[%d]: name is required", i)
		}
		query, err := b.node(&def.Query, t)
		if err != nil {
			return nil, fmt.Errorf("ctes[%d]: %w", i, err)
		}
		if wq == nil {
			wq = exprql.With(def.Name, query)
		} else {
			wq.With(def.Name, query)
		}
	}

	if w.Recursive {
		wq.Recursive()
	}
	return wq, nil
}

// node converts n. Bare column names resolve against t.
func (b *builder) node(n *Node, t exprql.Table) (exprql.Expr, error) {
	kinds := n.kinds()
	switch len(kinds) {
	case 0:
		return nil, fmt.Errorf("empty expression")
	case 1:
	default:
		return nil, fmt.Errorf("expression sets %s, want exactly one", strings.Join(kinds, ", "))
	}

	switch kinds[0] {
	case "int":
		return exprql.Int(*n.Int), nil
	case "float":
		return exprql.Float(*n.Float), nil
	case "text":
		return exprql.Text(*n.Text), nil
	case "bool":
		return exprql.Bool(*n.Bool), nil
	case "null":
		return exprql.Null{}, nil
	case "default":
		return exprql.Default{}, nil
	case "raw":
		return exprql.Raw(*n.Raw), nil
	case "arg":
		v, err := decodeArg(n.Arg)
		if err != nil {
			return nil, fmt.Errorf("arg: %w", err)
		}
		return exprql.Arg(v), nil
	case "param":
		return exprql.TryP(n.Param)
	case "column":
		return b.columnRef(n.Column, t)
	case "binary":
		op, ok := binaryOps[n.Binary.Op]
		if !ok {
			return nil, fmt.Errorf("unknown binary operator %q", n.Binary.Op)
		}
		lhs, err := b.node(&n.Binary.Left, t)
		if err != nil {
			return nil, fmt.Errorf("%s.left: %w", n.Binary.Op, err)
		}
		rhs, err := b.node(&n.Binary.Right, t)
		if err != nil {
			return nil, fmt.Errorf("%s.right: %w", n.Binary.Op, err)
		}
		return exprql.Binary(lhs, op, rhs), nil
	case "unary":
		op, ok := unaryOps[n.Unary.Op]
		if !ok {
			return nil, fmt.Errorf("unknown unary operator %q", n.Unary.Op)
		}
		v, err := b.node(&n.Unary.Value, t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n.Unary.Op, err)
		}
		return exprql.Unary(op, v), nil
	default: // insert
		q, err := b.insert(n.Insert)
		if err != nil {
			return nil, fmt.Errorf("insert: %w", err)
		}
		return q, nil
	}
}

func (b *builder) table(name, qualifier string) (exprql.Table, error) {
	var quals []string
	if qualifier != "" {
		quals = append(quals, qualifier)
	}
	t, err := exprql.TryT(name, quals...)
	if err != nil {
		return exprql.Table{}, err
	}
	if b.schema != nil {
		if _, err := b.schema.TryT(name); err != nil {
			return exprql.Table{}, err
		}
	}
	return t, nil
}

func (b *builder) column(t exprql.Table, name string) (exprql.Column, error) {
	if b.schema != nil {
		return b.schema.TryC(t, name)
	}
	return exprql.TryC(t, name)
}

func (b *builder) columns(t exprql.Table, names []string) ([]exprql.Column, error) {
	cols := make([]exprql.Column, 0, len(names))
	for _, name := range names {
		col, err := b.column(t, name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// columnRef resolves "col" against t and "table.col" against table.
func (b *builder) columnRef(ref string, t exprql.Table) (exprql.Column, error) {
	tableName, colName, qualified := strings.Cut(ref, ".")
	if !qualified {
		return b.column(t, ref)
	}
	if tableName == t.Name {
		return b.column(t, colName)
	}
	other, err := b.table(tableName, "")
	if err != nil {
		return exprql.Column{}, err
	}
	return b.column(other, colName)
}

// decodeArg decodes a bound value. Integral numbers become int64, other
// numbers float64.
func decodeArg(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if num, ok := v.(json.Number); ok {
		if i, err := num.Int64(); err == nil {
			return i, nil
		}
		return num.Float64()
	}
	return v, nil
}
