// Package sqlforge is the public API for building dialect-correct SQL.
//
// A DB fixes the target dialect once; every statement builder obtained from
// it renders text and bind parameters for that dialect. The builders never
// interpolate user data into the SQL text - values always become
// placeholders, bound positionally through Statement.Args.
//
// Example:
//
//	db := sqlforge.New(sqlforge.Postgres)
//	stmt, err := db.Select("users", "id", "name").
//	    Where(sqlforge.Cmp("age", sqlforge.GTE, sqlforge.Int64(18))).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, err := conn.Query(stmt.SQL, stmt.NativeArgs()...)
package sqlforge

import (
	"github.com/hlop3z/sqlforge/internal/builder"
	"github.com/hlop3z/sqlforge/internal/cond"
	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/value"
)

// DB is the entry point for creating SQL statements. It is a fixed dialect
// selection; all builders obtained from it render for that dialect.
type DB struct {
	dialect dialect.Dialect
}

// Supported dialects.
const (
	// SQLite is the embedded SQLite dialect ("?" placeholders, double-quoted identifiers).
	SQLite = dialect.SQLite
	// Postgres is the PostgreSQL dialect ("$N" placeholders, double-quoted identifiers).
	Postgres = dialect.Postgres
	// MySQL is the MySQL / MariaDB dialect ("?" placeholders, backtick-quoted identifiers).
	MySQL = dialect.MySQL
)

// New returns a DB rendering for the given dialect.
func New(d dialect.Dialect) DB {
	return DB{dialect: d}
}

// FromName returns a DB for a dialect name ("sqlite", "postgres", "mysql").
func FromName(name string) (DB, bool) {
	d, ok := dialect.Get(name)
	return DB{dialect: d}, ok
}

// Dialect returns the selected dialect.
func (db DB) Dialect() dialect.Dialect { return db.dialect }

// -----------------------------------------------------------------------------
// Statement entry points
// -----------------------------------------------------------------------------

// CreateTable starts a CREATE TABLE statement.
func (db DB) CreateTable(table string) *builder.CreateTable {
	return builder.NewCreateTable(db.dialect, table)
}

// AlterTable starts an ALTER TABLE statement (one operation per statement).
func (db DB) AlterTable(table string) *builder.AlterTable {
	return builder.NewAlterTable(db.dialect, table)
}

// DropTable starts a DROP TABLE statement.
func (db DB) DropTable(table string) *builder.DropTable {
	return builder.NewDropTable(db.dialect, table)
}

// CreateIndex starts a CREATE INDEX statement. An empty name derives one
// from the table and columns.
func (db DB) CreateIndex(name, table string) *builder.CreateIndex {
	return builder.NewCreateIndex(db.dialect, name, table)
}

// DropIndex starts a DROP INDEX statement. table is required for MySQL.
func (db DB) DropIndex(name, table string) *builder.DropIndex {
	return builder.NewDropIndex(db.dialect, name, table)
}

// CreateTrigger starts a CREATE TRIGGER statement.
func (db DB) CreateTrigger(name, table string, timing builder.TriggerTiming, event builder.TriggerEvent) *builder.CreateTrigger {
	return builder.NewCreateTrigger(db.dialect, name, table, timing, event)
}

// Select starts a SELECT statement.
func (db DB) Select(from string, columns ...string) *builder.Select {
	return builder.NewSelect(db.dialect, from, columns...)
}

// Insert starts an INSERT statement.
func (db DB) Insert(table string, columns ...string) *builder.Insert {
	return builder.NewInsert(db.dialect, table, columns...)
}

// Update starts an UPDATE statement.
func (db DB) Update(table string) *builder.Update {
	return builder.NewUpdate(db.dialect, table)
}

// Delete starts a DELETE statement.
func (db DB) Delete(table string) *builder.Delete {
	return builder.NewDelete(db.dialect, table)
}

// -----------------------------------------------------------------------------
// Re-exported building blocks
// -----------------------------------------------------------------------------

// Statement is a rendered statement: SQL text plus parameters in binding order.
type Statement = builder.Statement

// Value is a typed bind parameter.
type Value = value.Value

// Value constructors.
var (
	Null     = value.Null
	Bool     = value.Bool
	Int16    = value.Int16
	Int32    = value.Int32
	Int64    = value.Int64
	Float32  = value.Float32
	Float64  = value.Float64
	Text     = value.Text
	Binary   = value.Binary
	Date     = value.Date
	Time     = value.Time
	DateTime = value.DateTime
)

// Condition is a node of the WHERE/ON boolean expression tree.
type Condition = cond.Condition

// Condition constructors.
var (
	And       = cond.And
	Or        = cond.Or
	Not       = cond.Not
	Cmp       = cond.Cmp
	CmpCol    = cond.CmpCol
	In        = cond.In
	IsNull    = cond.IsNull
	IsNotNull = cond.IsNotNull
	Raw       = cond.Raw
)

// Comparators.
const (
	EQ   = cond.EQ
	NE   = cond.NE
	LT   = cond.LT
	LTE  = cond.LTE
	GT   = cond.GT
	GTE  = cond.GTE
	Like = cond.Like
)

// Column types.
const (
	TypeBool     = dialect.TypeBool
	TypeInt16    = dialect.TypeInt16
	TypeInt32    = dialect.TypeInt32
	TypeInt64    = dialect.TypeInt64
	TypeFloat    = dialect.TypeFloat
	TypeDouble   = dialect.TypeDouble
	TypeVarChar  = dialect.TypeVarChar
	TypeBinary   = dialect.TypeBinary
	TypeDate     = dialect.TypeDate
	TypeTime     = dialect.TypeTime
	TypeDateTime = dialect.TypeDateTime
)

// Annotation constructors.
var (
	PrimaryKey    = dialect.PrimaryKey
	AutoIncrement = dialect.AutoIncrement
	NotNull       = dialect.NotNull
	Unique        = dialect.Unique
	Default       = dialect.Default
	MaxLength     = dialect.MaxLength
	Index         = dialect.Index
	ForeignKey    = dialect.ForeignKey
)

// ForeignKeyRef is the target of a foreign key annotation.
type ForeignKeyRef = dialect.ForeignKeyRef

// Referential actions.
const (
	RefNone       = dialect.RefNone
	RefCascade    = dialect.RefCascade
	RefSetNull    = dialect.RefSetNull
	RefSetDefault = dialect.RefSetDefault
	RefRestrict   = dialect.RefRestrict
	RefNoAction   = dialect.RefNoAction
)

// Conflict handling.
type (
	// Conflict carries a policy plus upsert column context.
	Conflict = dialect.Conflict
	// ConflictPolicy is the abstract conflict behavior.
	ConflictPolicy = dialect.ConflictPolicy
)

// Conflict policies.
const (
	ConflictAbort    = dialect.ConflictAbort
	ConflictRollback = dialect.ConflictRollback
	ConflictFail     = dialect.ConflictFail
	ConflictIgnore   = dialect.ConflictIgnore
	ConflictUpsert   = dialect.ConflictUpsert
)

// Trigger timing and events.
const (
	TriggerBefore    = builder.TriggerBefore
	TriggerAfter     = builder.TriggerAfter
	TriggerInsteadOf = builder.TriggerInsteadOf
	TriggerInsert    = builder.TriggerInsert
	TriggerUpdate    = builder.TriggerUpdate
	TriggerDelete    = builder.TriggerDelete
)
