// Package testing provides test utilities for exprql.
package testing

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/exprql"
)

// TestSchema creates a schema for testing.
// Includes users, posts, orders and audit tables.
func TestSchema(t *testing.T) *exprql.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	// Users table
	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(users)

	// Posts table
	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	project.AddTable(posts)

	// Orders table
	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	// Audit table
	audit := dbml.NewTable("audit")
	audit.AddColumn(dbml.NewColumn("id", "bigint"))
	audit.AddColumn(dbml.NewColumn("note", "text"))
	project.AddTable(audit)

	schema, err := exprql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return schema
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertRender renders e for d and compares the SQL.
func AssertRender(t *testing.T, e exprql.Expr, d exprql.Dialect, expected string) *exprql.QueryResult {
	t.Helper()
	result, err := exprql.Render(e, d)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	AssertSQL(t, expected, result.SQL)
	return result
}

// AssertArgs checks positional arguments, in order.
func AssertArgs(t *testing.T, expected, actual []any) {
	t.Helper()
	if len(expected) == 0 && len(actual) == 0 {
		return
	}
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Args mismatch:\nExpected: %#v\nActual:   %#v", expected, actual)
	}
}

// AssertParams checks that the required params match expected values, in
// order of first use.
func AssertParams(t *testing.T, expected, actual []string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("Param count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(actual), expected, actual)
		return
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("Param %d mismatch: expected %q, got %q\nExpected: %v\nActual: %v",
				i, expected[i], actual[i], expected, actual)
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertUnsupported checks that err reports feature as unsupported.
func AssertUnsupported(t *testing.T, err error, feature exprql.Feature) {
	t.Helper()
	var ufe exprql.UnsupportedFeatureError
	if !errors.As(err, &ufe) {
		t.Fatalf("Expected UnsupportedFeatureError for %s, got: %v", feature, err)
	}
	if ufe.Feature != string(feature) {
		t.Errorf("Unsupported feature mismatch: expected %s, got %s", feature, ufe.Feature)
	}
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}

// AssertShapePanic verifies that fn panics with a *exprql.ShapeError.
func AssertShapePanic(t *testing.T, fn func()) *exprql.ShapeError {
	t.Helper()
	var se *exprql.ShapeError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Error("Expected shape panic but function completed normally")
				return
			}
			var ok bool
			if se, ok = r.(*exprql.ShapeError); !ok {
				t.Errorf("Expected *exprql.ShapeError, got %T: %v", r, r)
			}
		}()
		fn()
	}()
	return se
}
