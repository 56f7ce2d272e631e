// Package schemafile loads YAML table descriptions and converts them into
// statement builders. It is the input format for the sqlforge CLI; the core
// rendering packages know nothing about it.
package schemafile

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hlop3z/sqlforge/internal/builder"
	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/value"
)

// Schema is the root of a schema file.
type Schema struct {
	Tables []Table `yaml:"tables"`
}

// Table describes one CREATE TABLE request.
type Table struct {
	Name        string       `yaml:"name"`
	IfNotExists bool         `yaml:"if_not_exists"`
	Columns     []Column     `yaml:"columns"`
	ForeignKeys []ForeignKey `yaml:"foreign_keys"`
	Indexes     []Index      `yaml:"indexes"`
}

// Column describes one column definition.
type Column struct {
	Name          string     `yaml:"name"`
	Type          string     `yaml:"type"`
	PrimaryKey    bool       `yaml:"primary_key"`
	AutoIncrement bool       `yaml:"auto_increment"`
	NotNull       bool       `yaml:"not_null"`
	Unique        bool       `yaml:"unique"`
	MaxLength     int        `yaml:"max_length"`
	Index         bool       `yaml:"index"`
	Default       *yaml.Node `yaml:"default"`
	References    *Reference `yaml:"references"`
}

// Reference describes an inline foreign key.
type Reference struct {
	Table    string `yaml:"table"`
	Column   string `yaml:"column"`
	OnDelete string `yaml:"on_delete"`
	OnUpdate string `yaml:"on_update"`
}

// ForeignKey describes a table-level (possibly composite) foreign key.
type ForeignKey struct {
	Name       string   `yaml:"name"`
	Columns    []string `yaml:"columns"`
	RefTable   string   `yaml:"ref_table"`
	RefColumns []string `yaml:"ref_columns"`
	OnDelete   string   `yaml:"on_delete"`
	OnUpdate   string   `yaml:"on_update"`
}

// Index describes a standalone index.
type Index struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
	Unique  bool     `yaml:"unique"`
}

// Load reads and parses a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sferr.Wrap(sferr.ErrSchemaNotFound, err, "cannot read schema file").
			With("path", path)
	}
	return Parse(data)
}

// Parse parses schema YAML.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, sferr.Wrap(sferr.ErrSchemaInvalid, err, "cannot parse schema file")
	}
	if len(s.Tables) == 0 {
		return nil, sferr.New(sferr.ErrSchemaInvalid, "schema file defines no tables")
	}
	return &s, nil
}

// Statements renders every table and index in the schema for dialect d,
// in declaration order: each CREATE TABLE followed by its derived and
// declared CREATE INDEX statements.
func (s *Schema) Statements(d dialect.Dialect) ([]builder.Statement, error) {
	var out []builder.Statement
	for _, t := range s.Tables {
		ct, err := t.createTable(d)
		if err != nil {
			return nil, err
		}
		stmt, err := ct.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)

		idxStmts, err := ct.IndexStatements()
		if err != nil {
			return nil, err
		}
		out = append(out, idxStmts...)

		for _, idx := range t.Indexes {
			ib := builder.NewCreateIndex(d, idx.Name, t.Name).Columns(idx.Columns...)
			if idx.Unique {
				ib.Unique()
			}
			if t.IfNotExists && d.SupportsIfNotExistsIndex() {
				ib.IfNotExists()
			}
			stmt, err := ib.Build()
			if err != nil {
				return nil, err
			}
			out = append(out, stmt)
		}
	}
	return out, nil
}

// createTable converts a Table into a CreateTable draft.
func (t Table) createTable(d dialect.Dialect) (*builder.CreateTable, error) {
	ct := builder.NewCreateTable(d, t.Name)
	if t.IfNotExists {
		ct.IfNotExists()
	}

	for _, c := range t.Columns {
		dbType, ok := dialect.TypeFromName(c.Type)
		if !ok {
			return nil, sferr.New(sferr.ErrUnknownType, "unknown column type").
				WithTable(t.Name).
				WithColumn(c.Name).
				With("type", c.Type)
		}
		anns, err := c.annotations(t.Name)
		if err != nil {
			return nil, err
		}
		ct.Column(c.Name, dbType, anns...)
	}

	for _, fk := range t.ForeignKeys {
		onDelete, ok := dialect.RefActionFromName(fk.OnDelete)
		if !ok {
			return nil, badRefAction(t.Name, fk.OnDelete)
		}
		onUpdate, ok := dialect.RefActionFromName(fk.OnUpdate)
		if !ok {
			return nil, badRefAction(t.Name, fk.OnUpdate)
		}
		ct.ForeignKey(builder.TableForeignKey{
			Name:       fk.Name,
			Columns:    fk.Columns,
			RefTable:   fk.RefTable,
			RefColumns: fk.RefColumns,
			OnDelete:   onDelete,
			OnUpdate:   onUpdate,
		})
	}

	return ct, nil
}

// annotations converts the column flags into annotation values, preserving
// the fixed flag order; the renderer re-sorts PrimaryKey to the front
// regardless.
func (c Column) annotations(table string) ([]dialect.Annotation, error) {
	var anns []dialect.Annotation
	if c.PrimaryKey {
		anns = append(anns, dialect.PrimaryKey())
	}
	if c.AutoIncrement {
		anns = append(anns, dialect.AutoIncrement())
	}
	if c.NotNull {
		anns = append(anns, dialect.NotNull())
	}
	if c.Unique {
		anns = append(anns, dialect.Unique())
	}
	if c.MaxLength > 0 {
		anns = append(anns, dialect.MaxLength(c.MaxLength))
	}
	if c.Index {
		anns = append(anns, dialect.Index(""))
	}
	if c.Default != nil {
		v, err := decodeValue(c.Default)
		if err != nil {
			return nil, sferr.Wrap(sferr.ErrSchemaInvalid, err, "invalid default value").
				WithTable(table).
				WithColumn(c.Name)
		}
		anns = append(anns, dialect.Default(v))
	}
	if c.References != nil {
		onDelete, ok := dialect.RefActionFromName(c.References.OnDelete)
		if !ok {
			return nil, badRefAction(table, c.References.OnDelete)
		}
		onUpdate, ok := dialect.RefActionFromName(c.References.OnUpdate)
		if !ok {
			return nil, badRefAction(table, c.References.OnUpdate)
		}
		refColumn := c.References.Column
		if refColumn == "" {
			refColumn = "id"
		}
		anns = append(anns, dialect.ForeignKey(dialect.ForeignKeyRef{
			Table:    c.References.Table,
			Column:   refColumn,
			OnDelete: onDelete,
			OnUpdate: onUpdate,
		}))
	}
	return anns, nil
}

// decodeValue converts a YAML scalar into a typed value.
func decodeValue(n *yaml.Node) (value.Value, error) {
	var raw any
	if err := n.Decode(&raw); err != nil {
		return value.Null(), err
	}
	switch v := raw.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(v), nil
	case int:
		return value.Int64(int64(v)), nil
	case int64:
		return value.Int64(v), nil
	case float64:
		return value.Float64(v), nil
	case string:
		return value.Text(v), nil
	default:
		return value.Null(), sferr.Newf(sferr.ErrSchemaInvalid, "unsupported default value type %T", raw)
	}
}

func badRefAction(table, name string) error {
	return sferr.New(sferr.ErrSchemaInvalid, "unknown referential action").
		WithTable(table).
		With("action", name)
}
