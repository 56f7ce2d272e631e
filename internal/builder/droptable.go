package builder

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
)

// DropTable builds a DROP TABLE statement.
type DropTable struct {
	dialect  dialect.Dialect
	table    string
	ifExists bool
}

// NewDropTable returns a DROP TABLE draft.
func NewDropTable(d dialect.Dialect, table string) *DropTable {
	return &DropTable{dialect: d, table: table}
}

// IfExists adds the IF EXISTS clause.
func (b *DropTable) IfExists() *DropTable {
	b.ifExists = true
	return b
}

// Build validates the draft and renders the DROP TABLE statement.
func (b *DropTable) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, sferr.New(sferr.ErrMissingField, "table name is required")
	}

	var sql strings.Builder
	sql.WriteString("DROP TABLE ")
	if b.ifExists {
		sql.WriteString("IF EXISTS ")
	}
	sql.WriteString(b.dialect.QuoteIdent(b.table))
	return Statement{SQL: sql.String()}, nil
}
