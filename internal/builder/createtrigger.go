package builder

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
)

// TriggerTiming is when a trigger fires relative to its event.
type TriggerTiming int

const (
	// TriggerBefore fires before the row change.
	TriggerBefore TriggerTiming = iota
	// TriggerAfter fires after the row change.
	TriggerAfter
	// TriggerInsteadOf replaces the row change (views; not on MySQL).
	TriggerInsteadOf
)

// SQL returns the timing keywords.
func (t TriggerTiming) SQL() string {
	switch t {
	case TriggerBefore:
		return "BEFORE"
	case TriggerAfter:
		return "AFTER"
	case TriggerInsteadOf:
		return "INSTEAD OF"
	default:
		return ""
	}
}

// TriggerEvent is the operation that invokes a trigger.
type TriggerEvent int

const (
	// TriggerInsert fires on INSERT.
	TriggerInsert TriggerEvent = iota
	// TriggerUpdate fires on UPDATE.
	TriggerUpdate
	// TriggerDelete fires on DELETE.
	TriggerDelete
)

// SQL returns the event keyword.
func (e TriggerEvent) SQL() string {
	switch e {
	case TriggerInsert:
		return "INSERT"
	case TriggerUpdate:
		return "UPDATE"
	case TriggerDelete:
		return "DELETE"
	default:
		return ""
	}
}

// CreateTrigger builds a CREATE TRIGGER statement. The body is a list of
// raw statement fragments executed in order; this builder does not parse
// them. Postgres triggers cannot carry an inline body - they call a trigger
// function instead, set via ExecuteFunction.
type CreateTrigger struct {
	dialect     dialect.Dialect
	name        string
	table       string
	timing      TriggerTiming
	event       TriggerEvent
	ifNotExists bool
	forEachRow  bool
	body        []string
	function    string
}

// NewCreateTrigger returns a CREATE TRIGGER draft.
func NewCreateTrigger(d dialect.Dialect, name, table string, timing TriggerTiming, event TriggerEvent) *CreateTrigger {
	return &CreateTrigger{dialect: d, name: name, table: table, timing: timing, event: event}
}

// IfNotExists adds the IF NOT EXISTS clause (not on MySQL).
func (b *CreateTrigger) IfNotExists() *CreateTrigger {
	b.ifNotExists = true
	return b
}

// ForEachRow makes the trigger fire per affected row.
func (b *CreateTrigger) ForEachRow() *CreateTrigger {
	b.forEachRow = true
	return b
}

// Statement appends a raw body statement (SQLite and MySQL).
func (b *CreateTrigger) Statement(raw string) *CreateTrigger {
	b.body = append(b.body, raw)
	return b
}

// ExecuteFunction names the trigger function to call (Postgres).
func (b *CreateTrigger) ExecuteFunction(fn string) *CreateTrigger {
	b.function = fn
	return b
}

// Build validates the draft and renders the CREATE TRIGGER statement.
func (b *CreateTrigger) Build() (Statement, error) {
	if b.name == "" || b.table == "" {
		return Statement{}, sferr.New(sferr.ErrMissingField, "trigger requires a name and a table")
	}
	if b.timing == TriggerInsteadOf && !b.dialect.SupportsInsteadOfTrigger() {
		return Statement{}, sferr.New(sferr.ErrStatementFeature, "INSTEAD OF triggers have no representation on this dialect").
			WithDialect(b.dialect.String())
	}
	if b.ifNotExists && !b.dialect.SupportsIfNotExistsTrigger() {
		return Statement{}, sferr.New(sferr.ErrStatementFeature, "CREATE TRIGGER IF NOT EXISTS has no representation on this dialect").
			WithDialect(b.dialect.String())
	}

	var sql strings.Builder
	sql.WriteString("CREATE TRIGGER ")
	if b.ifNotExists {
		sql.WriteString("IF NOT EXISTS ")
	}
	sql.WriteString(b.dialect.QuoteIdent(b.name))
	sql.WriteString(" ")
	sql.WriteString(b.timing.SQL())
	sql.WriteString(" ")
	sql.WriteString(b.event.SQL())
	sql.WriteString(" ON ")
	sql.WriteString(b.dialect.QuoteIdent(b.table))
	if b.forEachRow {
		sql.WriteString(" FOR EACH ROW")
	}

	if b.dialect == dialect.Postgres {
		if b.function == "" {
			return Statement{}, sferr.New(sferr.ErrMissingField, "postgres triggers require a trigger function").
				WithTable(b.table)
		}
		if len(b.body) > 0 {
			return Statement{}, sferr.New(sferr.ErrStatementFeature, "inline trigger bodies have no representation on this dialect").
				WithDialect(b.dialect.String())
		}
		sql.WriteString(" EXECUTE FUNCTION ")
		sql.WriteString(b.function)
		sql.WriteString("()")
		return Statement{SQL: sql.String()}, nil
	}

	if len(b.body) == 0 {
		return Statement{}, sferr.New(sferr.ErrEmptyList, "trigger requires at least one body statement").
			WithTable(b.table)
	}
	sql.WriteString(" BEGIN ")
	for _, stmt := range b.body {
		sql.WriteString(strings.TrimRight(stmt, "; "))
		sql.WriteString("; ")
	}
	sql.WriteString("END")
	return Statement{SQL: sql.String()}, nil
}
