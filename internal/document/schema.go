package document

import (
	"fmt"
	"os"

	"github.com/zoobzio/dbml"
	"sigs.k8s.io/yaml"
)

// schemaFile is the YAML form of a table catalog:
//
//	name: app
//	tables:
//	  - name: users
//	    columns:
//	      - {name: id, type: bigint}
type schemaFile struct {
	Name   string     `json:"name"`
	Tables []tableDef `json:"tables"`
}

type tableDef struct {
	Name    string      `json:"name"`
	Columns []columnDef `json:"columns"`
}

type columnDef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ParseSchema decodes a table catalog into a DBML project.
func ParseSchema(data []byte) (*dbml.Project, error) {
	var f schemaFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	name := f.Name
	if name == "" {
		name = "default"
	}
	project := dbml.NewProject(name)

	for i, td := range f.Tables {
		if td.Name == "" {
			return nil, fmt.Errorf("tables[%d]: name is required", i)
		}
		table := dbml.NewTable(td.Name)
		for j, cd := range td.Columns {
			if cd.Name == "" {
				return nil, fmt.Errorf("tables[%d].columns[%d]: name is required", i, j)
			}
			colType := cd.Type
			if colType == "" {
				colType = "text"
			}
			table.AddColumn(dbml.NewColumn(cd.Name, colType))
		}
		project.AddTable(table)
	}

	return project, nil
}

// LoadSchema reads the table catalog at path.
func LoadSchema(path string) (*dbml.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return ParseSchema(data)
}
