package dialect

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/value"
)

// AnnotationKind identifies an abstract column constraint.
type AnnotationKind int

const (
	// AnnPrimaryKey marks the column as primary key.
	AnnPrimaryKey AnnotationKind = iota
	// AnnAutoIncrement requests auto-incrementing values.
	AnnAutoIncrement
	// AnnNotNull forbids NULL.
	AnnNotNull
	// AnnUnique adds a uniqueness constraint.
	AnnUnique
	// AnnDefault sets a default value.
	AnnDefault
	// AnnMaxLength bounds a varchar column; consumed by type rendering.
	AnnMaxLength
	// AnnIndex requests a secondary index; consumed by the CreateTable
	// builder, which emits a separate CREATE INDEX statement.
	AnnIndex
	// AnnForeignKey adds an inline REFERENCES clause.
	AnnForeignKey
)

// RefAction is a referential action for ON DELETE / ON UPDATE.
type RefAction int

const (
	// RefNone omits the clause.
	RefNone RefAction = iota
	// RefCascade propagates the change.
	RefCascade
	// RefSetNull sets the referencing column to NULL.
	RefSetNull
	// RefSetDefault sets the referencing column to its default.
	RefSetDefault
	// RefRestrict rejects the change.
	RefRestrict
	// RefNoAction defers the check.
	RefNoAction
)

// SQL returns the action keywords, or "" for RefNone.
func (a RefAction) SQL() string {
	switch a {
	case RefCascade:
		return "CASCADE"
	case RefSetNull:
		return "SET NULL"
	case RefSetDefault:
		return "SET DEFAULT"
	case RefRestrict:
		return "RESTRICT"
	case RefNoAction:
		return "NO ACTION"
	default:
		return ""
	}
}

// RefActionFromName parses a referential action name ("cascade", "set_null",
// "set null", "set_default", "restrict", "no_action"). Empty means RefNone.
func RefActionFromName(name string) (RefAction, bool) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", " ")) {
	case "":
		return RefNone, true
	case "cascade":
		return RefCascade, true
	case "set null":
		return RefSetNull, true
	case "set default":
		return RefSetDefault, true
	case "restrict":
		return RefRestrict, true
	case "no action":
		return RefNoAction, true
	default:
		return RefNone, false
	}
}

// ForeignKeyRef describes the target of a foreign key annotation.
type ForeignKeyRef struct {
	Table    string
	Column   string
	OnDelete RefAction
	OnUpdate RefAction
}

// Annotation is an abstract column constraint prior to dialect rendering.
type Annotation struct {
	kind      AnnotationKind
	def       value.Value
	maxLength int
	indexName string
	fk        ForeignKeyRef
}

// PrimaryKey marks the column as primary key.
func PrimaryKey() Annotation { return Annotation{kind: AnnPrimaryKey} }

// AutoIncrement requests auto-incrementing values. Dialects attach the
// keyword differently, which is why primary-key-first ordering matters.
func AutoIncrement() Annotation { return Annotation{kind: AnnAutoIncrement} }

// NotNull forbids NULL values.
func NotNull() Annotation { return Annotation{kind: AnnNotNull} }

// Unique adds a uniqueness constraint.
func Unique() Annotation { return Annotation{kind: AnnUnique} }

// Default sets the column default. The value is bound as a parameter, never
// inlined.
func Default(v value.Value) Annotation { return Annotation{kind: AnnDefault, def: v} }

// MaxLength bounds a varchar column's length.
func MaxLength(n int) Annotation { return Annotation{kind: AnnMaxLength, maxLength: n} }

// Index requests a secondary index on the column. An empty name asks the
// CreateTable builder to derive one (idx_<table>_<column>).
func Index(name string) Annotation { return Annotation{kind: AnnIndex, indexName: name} }

// ForeignKey adds an inline REFERENCES clause to the column.
func ForeignKey(ref ForeignKeyRef) Annotation { return Annotation{kind: AnnForeignKey, fk: ref} }

// Kind returns the annotation kind.
func (a Annotation) Kind() AnnotationKind { return a.kind }

// IndexName returns the requested index name ("" means auto-derived).
func (a Annotation) IndexName() string { return a.indexName }

// MaxLen returns the varchar bound for MaxLength annotations.
func (a Annotation) MaxLen() int { return a.maxLength }

// DefaultValue returns the wrapped value for Default annotations.
func (a Annotation) DefaultValue() value.Value { return a.def }

// Ref returns the target for ForeignKey annotations.
func (a Annotation) Ref() ForeignKeyRef { return a.fk }

// Column is a column definition: name, abstract type, and annotations.
type Column struct {
	Name        string
	Type        DbType
	Annotations []Annotation
}

// MaxLength returns the varchar bound from the column's annotations,
// or 0 if none is set.
func (c Column) MaxLength() int {
	for _, a := range c.Annotations {
		if a.kind == AnnMaxLength {
			return a.maxLength
		}
	}
	return 0
}

// IndexRequests returns the Index annotations on the column, in input order.
func (c Column) IndexRequests() []Annotation {
	var out []Annotation
	for _, a := range c.Annotations {
		if a.kind == AnnIndex {
			out = append(out, a)
		}
	}
	return out
}

// SortAnnotations returns the annotations with PrimaryKey moved to the
// front; the remaining annotations keep their input order. Required because
// SQLite's AUTOINCREMENT is only valid directly after PRIMARY KEY.
func SortAnnotations(anns []Annotation) []Annotation {
	sorted := make([]Annotation, 0, len(anns))
	for _, a := range anns {
		if a.kind == AnnPrimaryKey {
			sorted = append(sorted, a)
		}
	}
	for _, a := range anns {
		if a.kind != AnnPrimaryKey {
			sorted = append(sorted, a)
		}
	}
	return sorted
}

// ColumnSQL renders a full column definition (quoted name, native type,
// annotation suffix) for dialect d. Default values are pushed onto params
// and rendered as placeholders.
func (d Dialect) ColumnSQL(col Column, params *value.Params) (string, error) {
	var b strings.Builder

	b.WriteString(d.QuoteIdent(col.Name))
	b.WriteString(" ")
	typeSQL, err := d.TypeSQL(col.Type, col.MaxLength())
	if err != nil {
		return "", err
	}
	b.WriteString(typeSQL)

	for _, a := range SortAnnotations(col.Annotations) {
		switch a.kind {
		case AnnPrimaryKey:
			b.WriteString(" PRIMARY KEY")
		case AnnAutoIncrement:
			b.WriteString(" ")
			b.WriteString(d.autoIncrementSQL())
		case AnnNotNull:
			b.WriteString(" NOT NULL")
		case AnnUnique:
			b.WriteString(" UNIQUE")
		case AnnDefault:
			b.WriteString(" DEFAULT ")
			b.WriteString(d.Placeholder(params.Push(a.def)))
		case AnnMaxLength, AnnIndex:
			// Consumed elsewhere: MaxLength by type rendering, Index by
			// the CreateTable builder.
		case AnnForeignKey:
			b.WriteString(" REFERENCES ")
			b.WriteString(d.QuoteIdent(a.fk.Table))
			b.WriteString("(")
			b.WriteString(d.QuoteIdent(a.fk.Column))
			b.WriteString(")")
			if a.fk.OnDelete != RefNone {
				b.WriteString(" ON DELETE ")
				b.WriteString(a.fk.OnDelete.SQL())
			}
			if a.fk.OnUpdate != RefNone {
				b.WriteString(" ON UPDATE ")
				b.WriteString(a.fk.OnUpdate.SQL())
			}
		default:
			return "", sferr.New(sferr.ErrAnnotation, "unknown annotation kind").
				WithColumn(col.Name).
				WithDialect(d.String())
		}
	}

	return b.String(), nil
}

// autoIncrementSQL returns the per-dialect auto-increment keyword sequence.
func (d Dialect) autoIncrementSQL() string {
	switch d {
	case SQLite:
		return "AUTOINCREMENT"
	case MySQL:
		return "AUTO_INCREMENT"
	case Postgres:
		return "GENERATED BY DEFAULT AS IDENTITY"
	default:
		return ""
	}
}
