// Package dialect centralizes every per-backend divergence: identifier
// quoting, placeholder syntax, native type keywords, column annotation
// rendering, and conflict-clause resolution. Builders select a dialect once
// at construction; everything downstream is table-driven from here.
package dialect

import (
	"strconv"
	"strings"
)

// Dialect represents a supported SQL database dialect.
type Dialect int

const (
	// SQLite represents the embedded SQLite dialect.
	SQLite Dialect = iota
	// Postgres represents the PostgreSQL dialect.
	Postgres
	// MySQL represents the MySQL / MariaDB dialect.
	MySQL
)

// String returns the string representation of the dialect.
func (d Dialect) String() string {
	switch d {
	case SQLite:
		return "sqlite"
	case Postgres:
		return "postgres"
	case MySQL:
		return "mysql"
	default:
		return "unknown"
	}
}

// Get returns the dialect for the given name.
// Valid names: "sqlite", "sqlite3", "postgres", "postgresql", "mysql", "mariadb".
// The second result is false if the name is not recognized.
func Get(name string) (Dialect, bool) {
	switch name {
	case "sqlite", "sqlite3":
		return SQLite, true
	case "postgres", "postgresql":
		return Postgres, true
	case "mysql", "mariadb":
		return MySQL, true
	default:
		return SQLite, false
	}
}

// Names returns the list of supported dialect names.
func Names() []string {
	return []string{"sqlite", "postgres", "mysql"}
}

// QuoteIdent returns the identifier quoted according to the dialect.
// SQLite and PostgreSQL use double quotes, MySQL uses backticks.
// Embedded quote characters are escaped by doubling.
func (d Dialect) QuoteIdent(name string) string {
	if d == MySQL {
		escaped := strings.ReplaceAll(name, "`", "``")
		return "`" + escaped + "`"
	}
	escaped := strings.ReplaceAll(name, `"`, `""`)
	return `"` + escaped + `"`
}

// Placeholder returns the parameter placeholder for the given 1-based index.
// PostgreSQL uses numbered placeholders ($1, $2, ...); SQLite and MySQL use
// the positional question mark.
func (d Dialect) Placeholder(index int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(index)
	}
	return "?"
}

// QuoteIdentFunc is a function that quotes an identifier.
type QuoteIdentFunc func(name string) string

// WriteQuotedList writes comma-separated quoted identifiers to the builder.
// Used wherever a column list appears: index columns, FK columns, insert
// column lists.
func WriteQuotedList(b *strings.Builder, items []string, quote QuoteIdentFunc) {
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(item))
	}
}

// SupportsIfNotExistsTrigger reports whether CREATE TRIGGER IF NOT EXISTS
// is accepted. MySQL proper rejects it (MariaDB accepts, but we target the
// common denominator).
func (d Dialect) SupportsIfNotExistsTrigger() bool {
	return d != MySQL
}

// SupportsInsteadOfTrigger reports whether INSTEAD OF triggers exist on the
// dialect. MySQL has no INSTEAD OF triggers.
func (d Dialect) SupportsInsteadOfTrigger() bool {
	return d != MySQL
}

// SupportsIfNotExistsIndex reports whether CREATE INDEX IF NOT EXISTS is
// accepted. MySQL proper rejects it, same as for triggers.
func (d Dialect) SupportsIfNotExistsIndex() bool {
	return d != MySQL
}
