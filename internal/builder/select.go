package builder

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/cond"
	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/value"
)

// Select builds a SELECT statement.
type Select struct {
	dialect  dialect.Dialect
	columns  []string
	from     string
	fromRaw  bool
	distinct bool
	where    cond.Condition
	limit    *uint64
	offset   *uint64
}

// NewSelect returns a SELECT draft. from is quoted as a table identifier;
// use FromRaw for sub-query text.
func NewSelect(d dialect.Dialect, from string, columns ...string) *Select {
	return &Select{dialect: d, from: from, columns: columns}
}

// FromRaw replaces the from-clause with pre-rendered text (for example a
// parenthesized sub-query). The caller owns its safety.
func (b *Select) FromRaw(fragment string) *Select {
	b.from = fragment
	b.fromRaw = true
	return b
}

// Distinct adds the DISTINCT qualifier.
func (b *Select) Distinct() *Select {
	b.distinct = true
	return b
}

// Where sets the WHERE condition.
func (b *Select) Where(c cond.Condition) *Select {
	b.where = c
	return b
}

// Limit caps the number of returned rows.
func (b *Select) Limit(n uint64) *Select {
	b.limit = &n
	return b
}

// Offset skips the first n rows. On MySQL this requires Limit as well.
func (b *Select) Offset(n uint64) *Select {
	b.offset = &n
	return b
}

// Build validates the draft and renders the SELECT statement.
func (b *Select) Build() (Statement, error) {
	if b.from == "" {
		return Statement{}, sferr.New(sferr.ErrMissingField, "select requires a from-clause")
	}
	if len(b.columns) == 0 {
		return Statement{}, sferr.New(sferr.ErrEmptyList, "select requires at least one result column")
	}

	var sql strings.Builder
	var params value.Params

	sql.WriteString("SELECT ")
	if b.distinct {
		sql.WriteString("DISTINCT ")
	}
	dialect.WriteQuotedList(&sql, b.columns, b.dialect.QuoteIdent)
	sql.WriteString(" FROM ")
	if b.fromRaw {
		sql.WriteString(b.from)
	} else {
		sql.WriteString(b.dialect.QuoteIdent(b.from))
	}

	if b.where != nil {
		sql.WriteString(" WHERE ")
		if err := b.where.Render(b.dialect, &sql, &params); err != nil {
			return Statement{}, err
		}
	}

	tail, err := b.dialect.LimitOffsetSQL(b.limit, b.offset)
	if err != nil {
		return Statement{}, err
	}
	sql.WriteString(tail)

	return Statement{SQL: sql.String(), Args: params.Values()}, nil
}
