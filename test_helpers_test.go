package exprql_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/exprql"
)

// opaque is a leaf with fixed text, standing in for any value node.
type opaque string

func (o opaque) Collect(w exprql.Writer, _ *exprql.Collector) error {
	_, err := w.WriteString(string(o))
	return err
}

func (opaque) NeedsWrapping() bool { return false }

var errSink = errors.New("sink closed")

// failingWriter accepts limit bytes and then fails every write.
type failingWriter struct {
	sb    strings.Builder
	limit int
}

func (f *failingWriter) WriteString(s string) (int, error) {
	if f.sb.Len()+len(s) > f.limit {
		return 0, errSink
	}
	return f.sb.WriteString(s)
}

func createTestSchema(t *testing.T) *exprql.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("visits", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	project.AddTable(posts)

	schema, err := exprql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return schema
}

// assertPanicsWith fails unless fn panics with a value whose message
// contains want.
func assertPanicsWith(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		}
		if !strings.Contains(msg, want) {
			t.Errorf("panic = %q, want it to contain %q", msg, want)
		}
	}()
	fn()
}
