package exprql

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// Schema validates table and column references against a DBML project.
type Schema struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column -> definition
}

// NewFromDBML creates a Schema from a DBML project.
func NewFromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		if !isValidSQLIdentifier(table.Name) {
			return nil, fmt.Errorf("table %q is not a valid SQL identifier", table.Name)
		}
		s.tables[table.Name] = table
		s.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			if !isValidSQLIdentifier(col.Name) {
				return nil, fmt.Errorf("column %q of table %q is not a valid SQL identifier", col.Name, table.Name)
			}
			s.columns[table.Name][col.Name] = col
		}
	}

	return s, nil
}

// Project returns the underlying DBML project.
func (s *Schema) Project() *dbml.Project {
	return s.project
}

// HasTable reports whether the schema defines the table.
func (s *Schema) HasTable(name string) bool {
	_, ok := s.tables[name]
	return ok
}

// TryT creates a validated table reference, returning an error if the table
// is not in the schema.
func (s *Schema) TryT(name string) (Table, error) {
	if !s.HasTable(name) {
		return Table{}, fmt.Errorf("invalid table: table '%s' not found in schema", name)
	}
	return Table{Name: name}, nil
}

// T creates a validated table reference.
func (s *Schema) T(name string) Table {
	t, err := s.TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC creates a validated column reference, returning an error if t has no
// such column.
func (s *Schema) TryC(t Table, name string) (Column, error) {
	cols, ok := s.columns[t.Name]
	if !ok {
		return Column{}, fmt.Errorf("invalid column: table '%s' not found in schema", t.Name)
	}
	if _, ok := cols[name]; !ok {
		return Column{}, fmt.Errorf("invalid column: column '%s' not found in table '%s'", name, t.Name)
	}
	return t.Col(name), nil
}

// C creates a validated column reference.
func (s *Schema) C(t Table, name string) Column {
	c, err := s.TryC(t, name)
	if err != nil {
		panic(err)
	}
	return c
}

// Cols creates validated column references for every name, in order.
func (s *Schema) Cols(t Table, names ...string) []Column {
	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = s.C(t, name)
	}
	return cols
}
