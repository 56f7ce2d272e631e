package dialect

import (
	"strconv"

	"github.com/hlop3z/sqlforge/internal/sferr"
)

// DbType is the closed set of abstract column types. Each maps to a native
// keyword per dialect; the mapping lives here so builders never branch on
// the dialect themselves.
type DbType int

const (
	// TypeBool is a boolean column.
	TypeBool DbType = iota
	// TypeInt16 is a 16-bit signed integer column.
	TypeInt16
	// TypeInt32 is a 32-bit signed integer column.
	TypeInt32
	// TypeInt64 is a 64-bit signed integer column.
	TypeInt64
	// TypeFloat is a 32-bit floating-point column.
	TypeFloat
	// TypeDouble is a 64-bit floating-point column.
	TypeDouble
	// TypeVarChar is a text column, optionally length-qualified via the
	// MaxLength annotation.
	TypeVarChar
	// TypeBinary is a raw byte column.
	TypeBinary
	// TypeDate is a date-only column.
	TypeDate
	// TypeTime is a time-only column.
	TypeTime
	// TypeDateTime is a date and time column.
	TypeDateTime
)

// String returns the abstract type name used in schema files and errors.
func (t DbType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeVarChar:
		return "varchar"
	case TypeBinary:
		return "binary"
	case TypeDate:
		return "date"
	case TypeTime:
		return "time"
	case TypeDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// TypeFromName returns the DbType for a schema-file type name.
func TypeFromName(name string) (DbType, bool) {
	switch name {
	case "bool", "boolean":
		return TypeBool, true
	case "int16", "smallint":
		return TypeInt16, true
	case "int32", "int", "integer":
		return TypeInt32, true
	case "int64", "bigint":
		return TypeInt64, true
	case "float":
		return TypeFloat, true
	case "double":
		return TypeDouble, true
	case "varchar", "string", "text":
		return TypeVarChar, true
	case "binary", "blob":
		return TypeBinary, true
	case "date":
		return TypeDate, true
	case "time":
		return TypeTime, true
	case "datetime", "timestamp":
		return TypeDateTime, true
	default:
		return TypeBool, false
	}
}

// TypeSQL returns the native type keyword for t on dialect d.
// maxLength qualifies TypeVarChar where the dialect supports a length
// (0 means unspecified; MySQL then falls back to 255, its usual default,
// because bare VARCHAR is not valid there).
func (d Dialect) TypeSQL(t DbType, maxLength int) (string, error) {
	switch d {
	case SQLite:
		return sqliteTypeSQL(t), nil
	case Postgres:
		return postgresTypeSQL(t, maxLength), nil
	case MySQL:
		return mysqlTypeSQL(t, maxLength), nil
	}
	return "", sferr.New(sferr.ErrUnknownDialect, "no type mapping for dialect").
		With("dialect", int(d))
}

// SQLite maps onto its four type affinities, with DATE/TIME/DATETIME kept
// as declared names so introspection round-trips.
func sqliteTypeSQL(t DbType) string {
	switch t {
	case TypeBool, TypeInt16, TypeInt32, TypeInt64:
		return "INTEGER"
	case TypeFloat, TypeDouble:
		return "REAL"
	case TypeVarChar:
		return "TEXT"
	case TypeBinary:
		return "BLOB"
	case TypeDate:
		return "DATE"
	case TypeTime:
		return "TIME"
	case TypeDateTime:
		return "DATETIME"
	default:
		return "TEXT"
	}
}

func postgresTypeSQL(t DbType, maxLength int) string {
	switch t {
	case TypeBool:
		return "BOOLEAN"
	case TypeInt16:
		return "SMALLINT"
	case TypeInt32:
		return "INTEGER"
	case TypeInt64:
		return "BIGINT"
	case TypeFloat:
		return "REAL"
	case TypeDouble:
		return "DOUBLE PRECISION"
	case TypeVarChar:
		if maxLength > 0 {
			return "VARCHAR(" + strconv.Itoa(maxLength) + ")"
		}
		return "TEXT"
	case TypeBinary:
		return "BYTEA"
	case TypeDate:
		return "DATE"
	case TypeTime:
		return "TIME"
	case TypeDateTime:
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}

func mysqlTypeSQL(t DbType, maxLength int) string {
	switch t {
	case TypeBool:
		return "BOOLEAN"
	case TypeInt16:
		return "SMALLINT"
	case TypeInt32:
		return "INT"
	case TypeInt64:
		return "BIGINT"
	case TypeFloat:
		return "FLOAT"
	case TypeDouble:
		return "DOUBLE"
	case TypeVarChar:
		if maxLength > 0 {
			return "VARCHAR(" + strconv.Itoa(maxLength) + ")"
		}
		return "VARCHAR(255)"
	case TypeBinary:
		return "BLOB"
	case TypeDate:
		return "DATE"
	case TypeTime:
		return "TIME"
	case TypeDateTime:
		return "DATETIME"
	default:
		return "TEXT"
	}
}
