package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/internal/cli"
)

const insertDoc = `
table: users
columns: [name, visits]
values:
  - arg: alice
  - binary: {op: add, left: {column: visits}, right: {param: bump}}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the CLI with fresh flag state and returns its stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	renderDialect, cfgFile, configShowSource, verbose = "", "", false, 0

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRender_File(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "exprql.yaml", "dialect: sqlite\n")
	doc := writeFile(t, dir, "insert.yaml", insertDoc)

	out, err := run(t, "", "--config", config, "render", doc)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO \"users\" (\"name\", \"visits\") VALUES (?1, (\"users\".\"visits\" + :bump))\n"+
			"-- args: [alice]\n"+
			"-- params: bump\n",
		out)
}

func TestRender_StdinAndDialectFlag(t *testing.T) {
	config := writeFile(t, t.TempDir(), "exprql.yaml", "render:\n  args: false\n")

	out, err := run(t, insertDoc, "--config", config, "render", "--dialect", "mssql", "-")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO \"users\" (\"name\", \"visits\") VALUES (@p1, (\"users\".\"visits\" + :bump))\n", out)
}

func TestRender_YAMLFormat(t *testing.T) {
	config := writeFile(t, t.TempDir(), "exprql.yaml", "render:\n  format: yaml\n")

	out, err := run(t, insertDoc, "--config", config, "render")
	require.NoError(t, err)

	var result exprql.QueryResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, `INSERT INTO "users" ("name", "visits") VALUES ($1, ("users"."visits" + :bump))`, result.SQL)
	assert.Equal(t, []any{"alice"}, result.Args)
	assert.Equal(t, []string{"bump"}, result.RequiredParams)
}

func TestRender_SchemaValidation(t *testing.T) {
	dir := t.TempDir()
	catalog := writeFile(t, dir, "tables.yaml", "tables:\n  - name: users\n    columns: [{name: name}]\n")
	config := writeFile(t, dir, "exprql.yaml", "schema: "+catalog+"\n")

	_, err := run(t, insertDoc, "--config", config, "render")
	require.Error(t, err)
	assert.Equal(t, cli.ExitDocument, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "column 'visits' not found")
}

func TestRender_Errors(t *testing.T) {
	config := writeFile(t, t.TempDir(), "exprql.yaml", "dialect: postgres\n")

	tests := []struct {
		name  string
		stdin string
		args  []string
		code  int
		want  string
	}{
		{"malformed document", "table: [", nil, cli.ExitDocument, "reading statement"},
		{"bad document", "table: users\ncolumns: [a]\nvalues: [{int: 1}, {int: 2}]\n", nil, cli.ExitDocument, "1 columns but 2 values"},
		{"unknown dialect", "table: users\n", []string{"--dialect", "oracle"}, cli.ExitConfig, "unknown dialect"},
		{"unsupported feature", "table: users\nvalues: [{int: 1}]\nreturning: {int: 1}\n", []string{"--dialect", "mssql"}, cli.ExitGeneral, "RETURNING is not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", config, "render"}, tt.args...)
			_, err := run(t, tt.stdin, args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCode(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRender_MissingConfig(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "render")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfig, cli.ExitCode(err))
}

func TestConfigShow(t *testing.T) {
	config := writeFile(t, t.TempDir(), "exprql.yaml", "dialect: mariadb\n")

	out, err := run(t, "", "--config", config, "config", "show", "--source")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file: "+config)
	assert.Contains(t, out, "dialect: mariadb")
	assert.Contains(t, out, "format: text")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "exprql "), "got %q", out)
}
