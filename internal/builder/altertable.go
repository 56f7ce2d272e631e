package builder

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/value"
)

// alterOp tags the single operation an AlterTable render performs.
type alterOp int

const (
	alterNone alterOp = iota
	alterAddColumn
	alterDropColumn
	alterRenameColumn
	alterRenameTable
)

// AlterTable builds an ALTER TABLE statement carrying exactly one
// operation. Multiple schema changes need multiple statements; the builder
// rejects drafts with zero or more than one designated operation.
type AlterTable struct {
	dialect dialect.Dialect
	table   string
	op      alterOp
	opCount int

	column  dialect.Column
	name    string
	newName string
}

// NewAlterTable returns an ALTER TABLE draft for the given table.
func NewAlterTable(d dialect.Dialect, table string) *AlterTable {
	return &AlterTable{dialect: d, table: table}
}

// AddColumn designates an ADD COLUMN operation.
func (b *AlterTable) AddColumn(name string, t dialect.DbType, annotations ...dialect.Annotation) *AlterTable {
	b.op = alterAddColumn
	b.opCount++
	b.column = dialect.Column{Name: name, Type: t, Annotations: annotations}
	return b
}

// DropColumn designates a DROP COLUMN operation.
func (b *AlterTable) DropColumn(name string) *AlterTable {
	b.op = alterDropColumn
	b.opCount++
	b.name = name
	return b
}

// RenameColumn designates a RENAME COLUMN operation.
func (b *AlterTable) RenameColumn(oldName, newName string) *AlterTable {
	b.op = alterRenameColumn
	b.opCount++
	b.name = oldName
	b.newName = newName
	return b
}

// RenameTo designates a table rename.
func (b *AlterTable) RenameTo(newName string) *AlterTable {
	b.op = alterRenameTable
	b.opCount++
	b.newName = newName
	return b
}

// Build validates the draft and renders the ALTER TABLE statement.
func (b *AlterTable) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, sferr.New(sferr.ErrMissingField, "table name is required")
	}
	if b.op == alterNone {
		return Statement{}, sferr.New(sferr.ErrMissingField, "alter table requires an operation").
			WithTable(b.table)
	}
	if b.opCount > 1 {
		return Statement{}, sferr.New(sferr.ErrMissingField, "alter table carries exactly one operation per statement").
			WithTable(b.table).
			With("operations", b.opCount)
	}

	var sql strings.Builder
	var params value.Params

	sql.WriteString("ALTER TABLE ")
	sql.WriteString(b.dialect.QuoteIdent(b.table))

	switch b.op {
	case alterAddColumn:
		sql.WriteString(" ADD COLUMN ")
		def, err := b.dialect.ColumnSQL(b.column, &params)
		if err != nil {
			return Statement{}, err
		}
		sql.WriteString(def)
	case alterDropColumn:
		sql.WriteString(" DROP COLUMN ")
		sql.WriteString(b.dialect.QuoteIdent(b.name))
	case alterRenameColumn:
		sql.WriteString(" RENAME COLUMN ")
		sql.WriteString(b.dialect.QuoteIdent(b.name))
		sql.WriteString(" TO ")
		sql.WriteString(b.dialect.QuoteIdent(b.newName))
	case alterRenameTable:
		sql.WriteString(" RENAME TO ")
		sql.WriteString(b.dialect.QuoteIdent(b.newName))
	}

	return Statement{SQL: sql.String(), Args: params.Values()}, nil
}
