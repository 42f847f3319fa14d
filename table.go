package exprql

import "fmt"

// TryT creates a table reference, returning an error if the name (or the
// optional schema qualifier) is not a plain SQL identifier.
func TryT(name string, schema ...string) (Table, error) {
	if !isValidSQLIdentifier(name) {
		return Table{}, fmt.Errorf("invalid table name: %s", name)
	}

	t := Table{Name: name}
	if len(schema) > 0 {
		if len(schema) > 1 {
			return Table{}, fmt.Errorf("only one schema qualifier allowed")
		}
		if !isValidSQLIdentifier(schema[0]) {
			return Table{}, fmt.Errorf("invalid schema name: %s", schema[0])
		}
		t.Schema = schema[0]
	}
	return t, nil
}

// T creates a table reference.
func T(name string, schema ...string) Table {
	t, err := TryT(name, schema...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC creates a column reference owned by t, returning an error if the name
// is not a plain SQL identifier.
func TryC(t Table, name string) (Column, error) {
	if !isValidSQLIdentifier(name) {
		return Column{}, fmt.Errorf("invalid column name: %s", name)
	}
	return t.Col(name), nil
}

// C creates a column reference owned by t.
func C(t Table, name string) Column {
	c, err := TryC(t, name)
	if err != nil {
		panic(err)
	}
	return c
}

// Only allows alphanumeric characters and underscores, must start with letter or underscore.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	return true
}
