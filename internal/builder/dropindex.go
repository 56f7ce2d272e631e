package builder

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
)

// DropIndex builds a DROP INDEX statement. MySQL scopes indexes to their
// table (DROP INDEX name ON table) and rejects IF EXISTS.
type DropIndex struct {
	dialect  dialect.Dialect
	name     string
	table    string
	ifExists bool
}

// NewDropIndex returns a DROP INDEX draft. table is required for MySQL and
// ignored by the other dialects.
func NewDropIndex(d dialect.Dialect, name, table string) *DropIndex {
	return &DropIndex{dialect: d, name: name, table: table}
}

// IfExists adds the IF EXISTS clause.
func (b *DropIndex) IfExists() *DropIndex {
	b.ifExists = true
	return b
}

// Build validates the draft and renders the DROP INDEX statement.
func (b *DropIndex) Build() (Statement, error) {
	if b.name == "" {
		return Statement{}, sferr.New(sferr.ErrMissingField, "index name is required")
	}

	var sql strings.Builder
	sql.WriteString("DROP INDEX ")
	if b.ifExists {
		if b.dialect == dialect.MySQL {
			return Statement{}, sferr.New(sferr.ErrStatementFeature, "DROP INDEX IF EXISTS has no representation on this dialect").
				WithDialect(b.dialect.String())
		}
		sql.WriteString("IF EXISTS ")
	}
	sql.WriteString(b.dialect.QuoteIdent(b.name))
	if b.dialect == dialect.MySQL {
		if b.table == "" {
			return Statement{}, sferr.New(sferr.ErrMissingField, "DROP INDEX requires a table name on this dialect").
				WithDialect(b.dialect.String())
		}
		sql.WriteString(" ON ")
		sql.WriteString(b.dialect.QuoteIdent(b.table))
	}
	return Statement{SQL: sql.String()}, nil
}
