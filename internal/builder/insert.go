package builder

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/value"
)

// Insert builds an INSERT statement. Every value across every row is bound
// as a parameter in row-major order, matching the emitted placeholder
// sequence exactly.
type Insert struct {
	dialect  dialect.Dialect
	table    string
	columns  []string
	rows     [][]value.Value
	conflict dialect.Conflict
}

// NewInsert returns an INSERT draft for the given table and column list.
func NewInsert(d dialect.Dialect, table string, columns ...string) *Insert {
	return &Insert{dialect: d, table: table, columns: columns}
}

// Row appends one row of values. Arity must match the column list; the
// mismatch is reported at Build, not left to the database.
func (b *Insert) Row(vals ...value.Value) *Insert {
	b.rows = append(b.rows, vals)
	return b
}

// OnConflict sets the conflict resolution request.
func (b *Insert) OnConflict(c dialect.Conflict) *Insert {
	b.conflict = c
	return b
}

// Build validates the draft and renders the INSERT statement.
func (b *Insert) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, sferr.New(sferr.ErrMissingField, "table name is required")
	}
	if len(b.columns) == 0 {
		return Statement{}, sferr.New(sferr.ErrEmptyList, "insert requires a column list").
			WithTable(b.table)
	}
	if len(b.rows) == 0 {
		return Statement{}, sferr.New(sferr.ErrEmptyList, "insert requires at least one row").
			WithTable(b.table)
	}
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return Statement{}, sferr.New(sferr.ErrArityMismatch, "row value count does not match column count").
				WithTable(b.table).
				With("row", i).
				With("columns", len(b.columns)).
				With("values", len(row))
		}
	}

	prefix, suffix, err := b.dialect.InsertClauses(b.conflict)
	if err != nil {
		return Statement{}, err
	}

	var sql strings.Builder
	var params value.Params

	sql.WriteString("INSERT ")
	sql.WriteString(prefix)
	sql.WriteString("INTO ")
	sql.WriteString(b.dialect.QuoteIdent(b.table))
	sql.WriteString(" (")
	dialect.WriteQuotedList(&sql, b.columns, b.dialect.QuoteIdent)
	sql.WriteString(") VALUES ")

	for i, row := range b.rows {
		if i > 0 {
			sql.WriteString(", ")
		}
		sql.WriteString("(")
		for j, v := range row {
			if j > 0 {
				sql.WriteString(", ")
			}
			sql.WriteString(b.dialect.Placeholder(params.Push(v)))
		}
		sql.WriteString(")")
	}

	sql.WriteString(suffix)
	return Statement{SQL: sql.String(), Args: params.Values()}, nil
}
