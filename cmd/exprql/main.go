// Package main provides a CLI that renders YAML statement documents to SQL.
//
// Usage:
//
//	exprql [flags] <command>
//
// Commands:
//   - render: Build an INSERT from a statement document and print its SQL
//   - config show: Print the effective configuration
//   - version: Print version information
package main

func main() {
	Execute()
}
