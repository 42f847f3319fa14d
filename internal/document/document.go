// Package document decodes YAML statement documents into INSERT queries.
//
// A document names the target table, its columns and the value expressions
// to insert. Expressions are trees of nodes, each setting exactly one kind:
//
//	table: users
//	columns: [name, visits]
//	values:
//	  - arg: alice
//	  - binary: {op: add, left: {column: visits}, right: {int: 1}}
//	returning: {column: id}
//
// Bare column names belong to the statement's table; "posts.id" names a
// column of another table. The null kind must be written with a quoted key,
// `"null": true`, since a bare null key decodes as a YAML null.
package document

import (
	"encoding/json"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Statement is the document form of an INSERT.
type Statement struct {
	With       *With       `json:"with,omitempty"`
	Returning  *Node       `json:"returning,omitempty"`
	OnConflict *OnConflict `json:"on_conflict,omitempty"`
	Table      string      `json:"table"`
	Schema     string      `json:"schema,omitempty"`
	Columns    []string    `json:"columns,omitempty"`
	Values     []Node      `json:"values,omitempty"`
}

// With is a common-table-expression prefix.
type With struct {
	CTEs      []CTE `json:"ctes"`
	Recursive bool  `json:"recursive,omitempty"`
}

// CTE defines one named query of a WITH prefix.
type CTE struct {
	Query Node   `json:"query"`
	Name  string `json:"name"`
}

// OnConflict renders ON CONFLICT [(columns)] DO NOTHING.
type OnConflict struct {
	Columns []string `json:"columns,omitempty"`
}

// Node is one expression. Exactly one field may be set.
type Node struct {
	Int     *int64          `json:"int,omitempty"`
	Float   *float64        `json:"float,omitempty"`
	Text    *string         `json:"text,omitempty"`
	Bool    *bool           `json:"bool,omitempty"`
	Raw     *string         `json:"raw,omitempty"`
	Binary  *Binary         `json:"binary,omitempty"`
	Unary   *Unary          `json:"unary,omitempty"`
	Insert  *Statement      `json:"insert,omitempty"`
	Arg     json.RawMessage `json:"arg,omitempty"`
	Param   string          `json:"param,omitempty"`
	Column  string          `json:"column,omitempty"`
	Null    bool            `json:"null,omitempty"`
	Default bool            `json:"default,omitempty"`
}

// Binary is "left op right".
type Binary struct {
	Left  Node   `json:"left"`
	Right Node   `json:"right"`
	Op    string `json:"op"`
}

// Unary is "op value".
type Unary struct {
	Value Node   `json:"value"`
	Op    string `json:"op"`
}

// Parse decodes a statement document. Unknown fields are rejected.
func Parse(data []byte) (*Statement, error) {
	var s Statement
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("parsing statement: %w", err)
	}
	return &s, nil
}

// Load reads and decodes the statement document at path.
func Load(path string) (*Statement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}
	return Parse(data)
}

// kinds lists the node kinds that are set.
func (n *Node) kinds() []string {
	var set []string
	if n.Int != nil {
		set = append(set, "int")
	}
	if n.Float != nil {
		set = append(set, "float")
	}
	if n.Text != nil {
		set = append(set, "text")
	}
	if n.Bool != nil {
		set = append(set, "bool")
	}
	if n.Null {
		set = append(set, "null")
	}
	if n.Default {
		set = append(set, "default")
	}
	if n.Raw != nil {
		set = append(set, "raw")
	}
	if len(n.Arg) > 0 {
		set = append(set, "arg")
	}
	if n.Param != "" {
		set = append(set, "param")
	}
	if n.Column != "" {
		set = append(set, "column")
	}
	if n.Binary != nil {
		set = append(set, "binary")
	}
	if n.Unary != nil {
		set = append(set, "unary")
	}
	if n.Insert != nil {
		set = append(set, "insert")
	}
	return set
}
