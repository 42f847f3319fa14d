package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/internal/cli"
	"github.com/zoobzio/exprql/internal/document"
)

var renderDialect string

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a statement document to SQL",
	Long: `Render a statement document to SQL.

The document is read from the named file, or from stdin when the file is
omitted or "-". When a schema is configured every table and column must
exist in it.`,
	Example: `  # Render for the configured dialect
  exprql render insert.yaml

  # Render for SQL Server from stdin
  cat insert.yaml | exprql render --dialect mssql`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := cli.DialectByName(cfg.ResolvedDialect(renderDialect))
		if err != nil {
			return cli.ConfigError("resolving dialect", err)
		}
		log.Printf("dialect %s", d.Name())

		var schema *exprql.Schema
		if cfg.Schema != "" {
			project, err := document.LoadSchema(cfg.Schema)
			if err != nil {
				return cli.ConfigError("loading schema", err)
			}
			schema, err = exprql.NewFromDBML(project)
			if err != nil {
				return cli.ConfigError("loading schema", err)
			}
			log.Printf("schema %s: %d tables", cfg.Schema, len(project.Tables))
		}

		stmt, err := readStatement(cmd.InOrStdin(), args)
		if err != nil {
			return cli.DocumentError("reading statement", err)
		}

		q, err := stmt.Build(schema)
		if err != nil {
			return cli.DocumentError("building statement", err)
		}

		result, err := exprql.Render(q, d)
		if err != nil {
			return cli.GeneralError("rendering statement", err)
		}

		return writeResult(cmd.OutOrStdout(), result, cfg.Render)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderDialect, "dialect", "d", "",
		"SQL dialect ("+strings.Join(cli.DialectNames(), ", ")+")")
}

func readStatement(stdin io.Reader, args []string) (*document.Statement, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return document.Parse(data)
	}
	return document.Load(args[0])
}

func writeResult(w io.Writer, result *exprql.QueryResult, rc cli.RenderConfig) error {
	if !rc.Args {
		result.Args = nil
		result.RequiredParams = nil
	}

	if rc.Format == "yaml" {
		out, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}

	if _, err := fmt.Fprintln(w, result.SQL); err != nil {
		return err
	}
	if len(result.Args) > 0 {
		if _, err := fmt.Fprintf(w, "-- args: %v\n", result.Args); err != nil {
			return err
		}
	}
	if len(result.RequiredParams) > 0 {
		if _, err := fmt.Fprintf(w, "-- params: %s\n", strings.Join(result.RequiredParams, ", ")); err != nil {
			return err
		}
	}
	return nil
}
