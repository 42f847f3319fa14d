package types

import "strings"

// Table represents a validated table reference.
// This is exported from the internal package so the base package can use it,
// but external users cannot import this package.
type Table struct {
	Leaf
	Schema string // Optional schema qualifier
	Name   string
}

// GetName returns the bare table name.
func (t Table) GetName() string {
	return t.Name
}

// Col returns a column of this table. The name is not validated.
func (t Table) Col(name string) Column {
	return Column{Table: t, Name: name}
}

// Collect renders the qualified reference: "schema"."name" or "name".
func (t Table) Collect(w Writer, _ *Collector) error {
	if t.Schema != "" {
		if err := WriteAll(w, QuoteIdentifier(t.Schema), "."); err != nil {
			return err
		}
	}
	_, err := w.WriteString(QuoteIdentifier(t.Name))
	return err
}

// Column represents a column reference.
type Column struct {
	Leaf
	Table Table // Optional owning table
	Name  string
}

// GetName returns the bare column name, without any table qualifier.
func (c Column) GetName() string {
	return c.Name
}

// GetTable returns the owning table.
func (c Column) GetTable() Table {
	return c.Table
}

// Collect renders the column qualified by its table when it has one.
func (c Column) Collect(w Writer, col *Collector) error {
	if c.Table.Name != "" {
		if err := c.Table.Collect(w, col); err != nil {
			return err
		}
		if _, err := w.WriteString("."); err != nil {
			return err
		}
	}
	_, err := w.WriteString(QuoteIdentifier(c.Name))
	return err
}

// QuoteIdentifier wraps name in double quotes, doubling embedded quotes.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
