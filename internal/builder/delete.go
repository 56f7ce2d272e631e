package builder

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/cond"
	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/value"
)

// Delete builds a DELETE statement. Without a WHERE condition it deletes
// every row, which is valid and intentional.
type Delete struct {
	dialect dialect.Dialect
	table   string
	where   cond.Condition
}

// NewDelete returns a DELETE draft for the given table.
func NewDelete(d dialect.Dialect, table string) *Delete {
	return &Delete{dialect: d, table: table}
}

// Where sets the WHERE condition.
func (b *Delete) Where(c cond.Condition) *Delete {
	b.where = c
	return b
}

// Build validates the draft and renders the DELETE statement.
func (b *Delete) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, sferr.New(sferr.ErrMissingField, "table name is required")
	}

	var sql strings.Builder
	var params value.Params

	sql.WriteString("DELETE FROM ")
	sql.WriteString(b.dialect.QuoteIdent(b.table))

	if b.where != nil {
		sql.WriteString(" WHERE ")
		if err := b.where.Render(b.dialect, &sql, &params); err != nil {
			return Statement{}, err
		}
	}

	return Statement{SQL: sql.String(), Args: params.Values()}, nil
}
