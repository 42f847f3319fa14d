package testing

import (
	"errors"
	"testing"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/mariadb"
	"github.com/zoobzio/exprql/postgres"
)

// =============================================================================
// TestSchema Tests
// =============================================================================

func TestTestSchema(t *testing.T) {
	schema := TestSchema(t)
	if schema == nil {
		t.Fatal("Expected non-nil schema")
	}

	// Verify tables exist by creating references
	users := schema.T("users")
	_ = schema.C(users, "email")
	_ = schema.T("posts")
	_ = schema.T("orders")
	_ = schema.C(schema.T("audit"), "note")
}

// =============================================================================
// Assertion Tests
// =============================================================================

func TestAssertSQL_Match(t *testing.T) {
	AssertSQL(t, `INSERT INTO "users" DEFAULT VALUES`, `INSERT INTO "users" DEFAULT VALUES`)
}

func TestAssertRender(t *testing.T) {
	users := exprql.T("users")
	q := exprql.InsertInto(users).Cols(exprql.C(users, "age")).Values(exprql.Arg(30))

	result := AssertRender(t, q, postgres.New(), `INSERT INTO "users" ("age") VALUES ($1)`)
	AssertArgs(t, []any{30}, result.Args)
	AssertParams(t, nil, result.RequiredParams)
}

func TestAssertArgs_EmptySlices(t *testing.T) {
	AssertArgs(t, nil, []any{})
	AssertArgs(t, []any{}, nil)
}

func TestAssertParams_Match(t *testing.T) {
	AssertParams(t, []string{"a", "b"}, []string{"a", "b"})
}

func TestAssertParams_EmptySlices(t *testing.T) {
	AssertParams(t, []string{}, []string{})
	AssertParams(t, nil, nil)
}

func TestAssertNoError_Nil(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertErrorContains_Match(t *testing.T) {
	AssertErrorContains(t, errors.New("table 'x' not found"), "not found")
}

func TestAssertUnsupported(t *testing.T) {
	_, err := exprql.Render(exprql.InsertInto(exprql.T("users")), mariadb.New())
	AssertUnsupported(t, err, exprql.FeatureDefaultValues)
}

func TestAssertPanicsWithMessage_StringPanic(t *testing.T) {
	AssertPanicsWithMessage(t, func() { panic("test panic message") }, "panic message")
}

func TestAssertPanicsWithMessage_ErrorPanic(t *testing.T) {
	AssertPanicsWithMessage(t, func() { exprql.T("bad name") }, "invalid table name")
}

func TestAssertShapePanic(t *testing.T) {
	users := exprql.T("users")
	q := exprql.InsertInto(users).
		Cols(exprql.C(users, "a"), exprql.C(users, "b"), exprql.C(users, "c")).
		Values(exprql.Int(1))

	se := AssertShapePanic(t, func() { exprql.MustRender(q, postgres.New()) })
	if se == nil || se.Columns != 3 || se.Values != 1 {
		t.Errorf("ShapeError = %+v, want 3 columns, 1 values", se)
	}
}
