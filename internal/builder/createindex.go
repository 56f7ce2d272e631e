package builder

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/cond"
	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/strutil"
	"github.com/hlop3z/sqlforge/internal/value"
)

// CreateIndex builds a CREATE INDEX statement. An empty name derives one
// from the table and columns (idx_... or uniq_... when unique).
type CreateIndex struct {
	dialect     dialect.Dialect
	name        string
	table       string
	unique      bool
	ifNotExists bool
	columns     []string
	where       cond.Condition
}

// NewCreateIndex returns a CREATE INDEX draft.
func NewCreateIndex(d dialect.Dialect, name, table string) *CreateIndex {
	return &CreateIndex{dialect: d, name: name, table: table}
}

// Unique makes the index a unique index.
func (b *CreateIndex) Unique() *CreateIndex {
	b.unique = true
	return b
}

// IfNotExists adds the IF NOT EXISTS clause (not on MySQL).
func (b *CreateIndex) IfNotExists() *CreateIndex {
	b.ifNotExists = true
	return b
}

// Columns adds indexed columns.
func (b *CreateIndex) Columns(cols ...string) *CreateIndex {
	b.columns = append(b.columns, cols...)
	return b
}

// Where makes the index partial, restricted to rows matching c.
// MySQL has no partial indexes; Build fails there.
func (b *CreateIndex) Where(c cond.Condition) *CreateIndex {
	b.where = c
	return b
}

// Build validates the draft and renders the CREATE INDEX statement.
func (b *CreateIndex) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, sferr.New(sferr.ErrMissingField, "index requires a table name")
	}
	if len(b.columns) == 0 {
		return Statement{}, sferr.New(sferr.ErrEmptyList, "index requires at least one column").
			WithTable(b.table)
	}
	if b.where != nil && b.dialect == dialect.MySQL {
		return Statement{}, sferr.New(sferr.ErrStatementFeature, "partial indexes have no representation on this dialect").
			WithDialect(b.dialect.String()).
			WithTable(b.table)
	}
	if b.ifNotExists && !b.dialect.SupportsIfNotExistsIndex() {
		return Statement{}, sferr.New(sferr.ErrStatementFeature, "CREATE INDEX IF NOT EXISTS has no representation on this dialect").
			WithDialect(b.dialect.String()).
			WithTable(b.table)
	}

	name := b.name
	if name == "" {
		if b.unique {
			name = strutil.UniqueIndexName(b.table, b.columns...)
		} else {
			name = strutil.IndexName(b.table, b.columns...)
		}
	}

	var sql strings.Builder
	var params value.Params

	sql.WriteString("CREATE ")
	if b.unique {
		sql.WriteString("UNIQUE ")
	}
	sql.WriteString("INDEX ")
	if b.ifNotExists {
		sql.WriteString("IF NOT EXISTS ")
	}
	sql.WriteString(b.dialect.QuoteIdent(name))
	sql.WriteString(" ON ")
	sql.WriteString(b.dialect.QuoteIdent(b.table))
	sql.WriteString(" (")
	dialect.WriteQuotedList(&sql, b.columns, b.dialect.QuoteIdent)
	sql.WriteString(")")

	if b.where != nil {
		sql.WriteString(" WHERE ")
		if err := b.where.Render(b.dialect, &sql, &params); err != nil {
			return Statement{}, err
		}
	}

	return Statement{SQL: sql.String(), Args: params.Values()}, nil
}
