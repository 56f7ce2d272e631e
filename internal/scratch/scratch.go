// Package scratch provides an ephemeral database for validating rendered
// SQL. Statements are executed against an in-memory SQLite database (or a
// caller-supplied server URL), so a schema can be proven syntactically
// valid without touching a real environment.
package scratch

import (
	"context"
	"database/sql"

	"github.com/hlop3z/sqlforge/internal/builder"
	"github.com/hlop3z/sqlforge/internal/sferr"
)

// DB wraps the ephemeral database connection.
type DB struct {
	db *sql.DB
}

// NewSQLite opens an in-memory SQLite scratch database. The modernc.org
// driver must be registered by the caller (the CLI blank-imports it).
func NewSQLite() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, sferr.Wrap(sferr.ErrSQLConnection, err, "cannot open scratch database")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, sferr.Wrap(sferr.ErrSQLConnection, err, "cannot ping scratch database")
	}
	return &DB{db: db}, nil
}

// Open connects to an existing server with the given driver and DSN
// (for example "postgres" with a postgres:// URL).
func Open(driver, dsn string) (*DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, sferr.Wrap(sferr.ErrSQLConnection, err, "cannot open database").
			With("driver", driver)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, sferr.Wrap(sferr.ErrSQLConnection, err, "cannot ping database").
			With("driver", driver)
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (s *DB) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Exec executes one rendered statement with its bound parameters.
func (s *DB) Exec(ctx context.Context, stmt builder.Statement) error {
	if _, err := s.db.ExecContext(ctx, stmt.SQL, stmt.NativeArgs()...); err != nil {
		return sferr.Wrap(sferr.ErrSQLExecution, err, "statement failed").
			WithSQL(stmt.SQL)
	}
	return nil
}

// ExecAll executes statements in order, stopping at the first failure.
func (s *DB) ExecAll(ctx context.Context, stmts []builder.Statement) error {
	for _, stmt := range stmts {
		if err := s.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
