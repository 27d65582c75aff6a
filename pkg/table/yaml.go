package table

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDoc is the on-disk shape of a table descriptor file:
//
//	tables:
//	  - name: users
//	    columns:
//	      - name: id
//	        kind: bigint
//	        has_default: true
//	      - name: email
//	        kind: string
//	        variant: varchar
//	        max_length: 255
type yamlDoc struct {
	Tables []yamlTable `yaml:"tables"`
}

type yamlTable struct {
	Name    string       `yaml:"name"`
	Columns []yamlColumn `yaml:"columns"`
}

type yamlColumn struct {
	Name       string      `yaml:"name"`
	Kind       string      `yaml:"kind"`
	Variant    string      `yaml:"variant"`
	Nullable   bool        `yaml:"nullable"`
	HasDefault bool        `yaml:"has_default"`
	Enum       []string    `yaml:"enum"`
	MaxLength  int         `yaml:"max_length"`
	Elem       *yamlColumn `yaml:"elem"`
}

// LoadYAML reads table descriptors from a YAML document.
func LoadYAML(r io.Reader) ([]*Table, error) {
	var doc yamlDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode table descriptors: %w", err)
	}

	tables := make([]*Table, 0, len(doc.Tables))
	for _, yt := range doc.Tables {
		if yt.Name == "" {
			return nil, fmt.Errorf("table descriptor is missing a name")
		}
		columns := make([]Column, 0, len(yt.Columns))
		for _, yc := range yt.Columns {
			if yc.Name == "" {
				return nil, fmt.Errorf("table %s: column is missing a name", yt.Name)
			}
			col, err := yc.toColumn(yt.Name)
			if err != nil {
				return nil, err
			}
			columns = append(columns, col)
		}
		t, err := New(yt.Name, columns...)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// toColumn converts a yaml column into a descriptor. Array element
// descriptors may be anonymous; top-level columns are named-checked by
// the caller.
func (yc yamlColumn) toColumn(tableName string) (Column, error) {
	kind := DataKind(yc.Kind)
	if !IsValidDataKind(kind) {
		return Column{}, fmt.Errorf("table %s: column %s: unknown kind %q", tableName, yc.Name, yc.Kind)
	}
	variant := TypeVariant(yc.Variant)
	if !IsValidTypeVariant(variant) {
		return Column{}, fmt.Errorf("table %s: column %s: unknown variant %q", tableName, yc.Name, yc.Variant)
	}

	col := Column{
		Name:       yc.Name,
		Kind:       kind,
		Variant:    variant,
		Nullable:   yc.Nullable,
		HasDefault: yc.HasDefault,
		EnumValues: yc.Enum,
		MaxLength:  yc.MaxLength,
	}

	if kind == KindArray {
		if yc.Elem == nil {
			return Column{}, fmt.Errorf("table %s: column %s: array kind requires elem", tableName, yc.Name)
		}
		elem, err := yc.Elem.toColumn(tableName)
		if err != nil {
			return Column{}, err
		}
		col.Elem = &elem
	} else if yc.Elem != nil {
		return Column{}, fmt.Errorf("table %s: column %s: elem is only valid for array kind", tableName, yc.Name)
	}

	return col, nil
}
