package builder

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/cond"
	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/value"
)

// assignment is one column = value pair in a SET clause.
type assignment struct {
	column string
	val    value.Value
}

// Update builds an UPDATE statement.
type Update struct {
	dialect     dialect.Dialect
	table       string
	assignments []assignment
	where       cond.Condition
	conflict    dialect.ConflictPolicy
}

// NewUpdate returns an UPDATE draft for the given table.
func NewUpdate(d dialect.Dialect, table string) *Update {
	return &Update{dialect: d, table: table}
}

// Set appends a column assignment. The value is bound as a parameter.
func (b *Update) Set(column string, v value.Value) *Update {
	b.assignments = append(b.assignments, assignment{column: column, val: v})
	return b
}

// Where sets the WHERE condition.
func (b *Update) Where(c cond.Condition) *Update {
	b.where = c
	return b
}

// OnConflict sets the conflict policy. Only SQLite can qualify UPDATE with
// a conflict clause; other dialects accept only the Abort default.
func (b *Update) OnConflict(p dialect.ConflictPolicy) *Update {
	b.conflict = p
	return b
}

// Build validates the draft and renders the UPDATE statement.
func (b *Update) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, sferr.New(sferr.ErrMissingField, "table name is required")
	}
	if len(b.assignments) == 0 {
		return Statement{}, sferr.New(sferr.ErrEmptyList, "update requires at least one assignment").
			WithTable(b.table)
	}

	prefix, err := b.dialect.UpdatePrefix(b.conflict)
	if err != nil {
		return Statement{}, err
	}

	var sql strings.Builder
	var params value.Params

	sql.WriteString("UPDATE ")
	sql.WriteString(prefix)
	sql.WriteString(b.dialect.QuoteIdent(b.table))
	sql.WriteString(" SET ")
	for i, a := range b.assignments {
		if i > 0 {
			sql.WriteString(", ")
		}
		sql.WriteString(b.dialect.QuoteIdent(a.column))
		sql.WriteString(" = ")
		sql.WriteString(b.dialect.Placeholder(params.Push(a.val)))
	}

	if b.where != nil {
		sql.WriteString(" WHERE ")
		if err := b.where.Render(b.dialect, &sql, &params); err != nil {
			return Statement{}, err
		}
	}

	return Statement{SQL: sql.String(), Args: params.Values()}, nil
}
