package builder

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/value"
)

// TableForeignKey is a table-level (possibly composite) foreign key
// constraint, appended after the column definitions.
type TableForeignKey struct {
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
	OnDelete   dialect.RefAction
	OnUpdate   dialect.RefAction
}

// CreateTable builds a CREATE TABLE statement.
type CreateTable struct {
	dialect     dialect.Dialect
	table       string
	ifNotExists bool
	columns     []dialect.Column
	foreignKeys []TableForeignKey
}

// NewCreateTable returns a CREATE TABLE draft for the given dialect and
// table name.
func NewCreateTable(d dialect.Dialect, table string) *CreateTable {
	return &CreateTable{dialect: d, table: table}
}

// IfNotExists adds the IF NOT EXISTS clause.
func (b *CreateTable) IfNotExists() *CreateTable {
	b.ifNotExists = true
	return b
}

// Column adds a column definition.
func (b *CreateTable) Column(name string, t dialect.DbType, annotations ...dialect.Annotation) *CreateTable {
	b.columns = append(b.columns, dialect.Column{Name: name, Type: t, Annotations: annotations})
	return b
}

// ForeignKey adds a table-level foreign key constraint.
func (b *CreateTable) ForeignKey(fk TableForeignKey) *CreateTable {
	b.foreignKeys = append(b.foreignKeys, fk)
	return b
}

// Build validates the draft and renders the CREATE TABLE statement.
func (b *CreateTable) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, sferr.New(sferr.ErrMissingField, "table name is required")
	}
	if len(b.columns) == 0 {
		return Statement{}, sferr.New(sferr.ErrEmptyList, "table must have at least one column").
			WithTable(b.table)
	}

	var sql strings.Builder
	var params value.Params

	sql.WriteString("CREATE TABLE ")
	if b.ifNotExists {
		sql.WriteString("IF NOT EXISTS ")
	}
	sql.WriteString(b.dialect.QuoteIdent(b.table))
	sql.WriteString(" (")

	for i, col := range b.columns {
		if i > 0 {
			sql.WriteString(", ")
		}
		def, err := b.dialect.ColumnSQL(col, &params)
		if err != nil {
			return Statement{}, err
		}
		sql.WriteString(def)
	}

	for _, fk := range b.foreignKeys {
		sql.WriteString(", ")
		if err := writeTableForeignKey(&sql, b.dialect, fk); err != nil {
			return Statement{}, err
		}
	}

	sql.WriteString(")")
	return Statement{SQL: sql.String(), Args: params.Values()}, nil
}

// IndexStatements renders one CREATE INDEX statement per Index annotation
// found on the table's columns, in column order. Names default to
// idx_<table>_<column>. These are separate statements so Build keeps the
// single-statement contract.
func (b *CreateTable) IndexStatements() ([]Statement, error) {
	var out []Statement
	for _, col := range b.columns {
		for _, ann := range col.IndexRequests() {
			idx := NewCreateIndex(b.dialect, ann.IndexName(), b.table).Columns(col.Name)
			if b.ifNotExists && b.dialect.SupportsIfNotExistsIndex() {
				idx.IfNotExists()
			}
			stmt, err := idx.Build()
			if err != nil {
				return nil, err
			}
			out = append(out, stmt)
		}
	}
	return out, nil
}

func writeTableForeignKey(sql *strings.Builder, d dialect.Dialect, fk TableForeignKey) error {
	if len(fk.Columns) == 0 || len(fk.RefColumns) == 0 {
		return sferr.New(sferr.ErrEmptyList, "foreign key requires local and referenced columns").
			WithTable(fk.RefTable)
	}
	if len(fk.Columns) != len(fk.RefColumns) {
		return sferr.New(sferr.ErrArityMismatch, "foreign key column lists must have equal length").
			With("columns", len(fk.Columns)).
			With("ref_columns", len(fk.RefColumns))
	}
	if fk.Name != "" {
		sql.WriteString("CONSTRAINT ")
		sql.WriteString(d.QuoteIdent(fk.Name))
		sql.WriteString(" ")
	}
	sql.WriteString("FOREIGN KEY (")
	dialect.WriteQuotedList(sql, fk.Columns, d.QuoteIdent)
	sql.WriteString(") REFERENCES ")
	sql.WriteString(d.QuoteIdent(fk.RefTable))
	sql.WriteString(" (")
	dialect.WriteQuotedList(sql, fk.RefColumns, d.QuoteIdent)
	sql.WriteString(")")
	if fk.OnDelete != dialect.RefNone {
		sql.WriteString(" ON DELETE ")
		sql.WriteString(fk.OnDelete.SQL())
	}
	if fk.OnUpdate != dialect.RefNone {
		sql.WriteString(" ON UPDATE ")
		sql.WriteString(fk.OnUpdate.SQL())
	}
	return nil
}
