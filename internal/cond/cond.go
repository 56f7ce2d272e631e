// Package cond defines the boolean condition tree used in WHERE clauses and
// partial index predicates, plus its dialect-aware renderer.
//
// Rendering is a depth-first walk that writes a parenthesized SQL fragment
// and appends every literal operand to the caller's parameter accumulator.
// Boolean groups are always parenthesized instead of computing precedence;
// the redundant parentheses are the price of never getting precedence wrong.
//
// Policy (pinned by tests): an empty conjunction renders as the tautology
// 1=1, an empty disjunction as the contradiction 1=0, so callers can fold
// condition lists without special-casing emptiness.
package cond

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/value"
)

// Comparator is a binary comparison operator. The token table is identical
// across the supported dialects.
type Comparator int

const (
	// EQ is the equals operator.
	EQ Comparator = iota
	// NE is the not-equals operator.
	NE
	// LT is the less-than operator.
	LT
	// LTE is the less-than-or-equal operator.
	LTE
	// GT is the greater-than operator.
	GT
	// GTE is the greater-than-or-equal operator.
	GTE
	// Like is the LIKE operator.
	Like
)

// token returns the SQL token for the comparator.
func (c Comparator) token() string {
	switch c {
	case EQ:
		return "="
	case NE:
		return "<>"
	case LT:
		return "<"
	case LTE:
		return "<="
	case GT:
		return ">"
	case GTE:
		return ">="
	case Like:
		return "LIKE"
	default:
		return ""
	}
}

// Condition is a node in the immutable boolean expression tree. A tree is
// built once and rendered exactly once per statement; rendering never
// mutates the tree.
type Condition interface {
	// Render writes the node's SQL fragment to b, appending any literal
	// operands to params in emission order.
	Render(d dialect.Dialect, b *strings.Builder, params *value.Params) error
}

// -----------------------------------------------------------------------------
// Boolean groups
// -----------------------------------------------------------------------------

type conjunction struct{ children []Condition }

type disjunction struct{ children []Condition }

// And joins conditions with AND. An empty And renders as 1=1.
func And(children ...Condition) Condition { return conjunction{children: children} }

// Or joins conditions with OR. An empty Or renders as 1=0.
func Or(children ...Condition) Condition { return disjunction{children: children} }

func (c conjunction) Render(d dialect.Dialect, b *strings.Builder, params *value.Params) error {
	return renderGroup(d, b, params, c.children, " AND ", "1=1")
}

func (c disjunction) Render(d dialect.Dialect, b *strings.Builder, params *value.Params) error {
	return renderGroup(d, b, params, c.children, " OR ", "1=0")
}

func renderGroup(d dialect.Dialect, b *strings.Builder, params *value.Params, children []Condition, sep, empty string) error {
	if len(children) == 0 {
		b.WriteString(empty)
		return nil
	}
	if len(children) == 1 {
		return children[0].Render(d, b, params)
	}
	b.WriteString("(")
	for i, child := range children {
		if i > 0 {
			b.WriteString(sep)
		}
		if err := child.Render(d, b, params); err != nil {
			return err
		}
	}
	b.WriteString(")")
	return nil
}

// -----------------------------------------------------------------------------
// Unary
// -----------------------------------------------------------------------------

type not struct{ child Condition }

// Not negates a condition. The operand is always parenthesized.
func Not(child Condition) Condition { return not{child: child} }

func (n not) Render(d dialect.Dialect, b *strings.Builder, params *value.Params) error {
	if n.child == nil {
		return sferr.New(sferr.ErrMissingField, "NOT requires an operand")
	}
	b.WriteString("NOT (")
	if err := n.child.Render(d, b, params); err != nil {
		return err
	}
	b.WriteString(")")
	return nil
}

// -----------------------------------------------------------------------------
// Comparisons
// -----------------------------------------------------------------------------

type cmpValue struct {
	column string
	op     Comparator
	val    value.Value
}

// Cmp compares a column against a literal value. The value renders as a
// placeholder and is appended to the parameter list.
func Cmp(column string, op Comparator, v value.Value) Condition {
	return cmpValue{column: column, op: op, val: v}
}

func (c cmpValue) Render(d dialect.Dialect, b *strings.Builder, params *value.Params) error {
	b.WriteString(d.QuoteIdent(c.column))
	b.WriteString(" ")
	b.WriteString(c.op.token())
	b.WriteString(" ")
	b.WriteString(d.Placeholder(params.Push(c.val)))
	return nil
}

type cmpColumn struct {
	left  string
	op    Comparator
	right string
}

// CmpCol compares two columns. No parameter is produced.
func CmpCol(left string, op Comparator, right string) Condition {
	return cmpColumn{left: left, op: op, right: right}
}

func (c cmpColumn) Render(d dialect.Dialect, b *strings.Builder, params *value.Params) error {
	b.WriteString(d.QuoteIdent(c.left))
	b.WriteString(" ")
	b.WriteString(c.op.token())
	b.WriteString(" ")
	b.WriteString(d.QuoteIdent(c.right))
	return nil
}

// -----------------------------------------------------------------------------
// IN, NULL checks, raw fragments
// -----------------------------------------------------------------------------

type in struct {
	column string
	vals   []value.Value
}

// In checks membership in a literal list. Each value renders as its own
// placeholder. An empty list is a malformed request.
func In(column string, vals ...value.Value) Condition {
	return in{column: column, vals: vals}
}

func (c in) Render(d dialect.Dialect, b *strings.Builder, params *value.Params) error {
	if len(c.vals) == 0 {
		return sferr.New(sferr.ErrEmptyList, "IN requires at least one value").
			WithColumn(c.column)
	}
	b.WriteString(d.QuoteIdent(c.column))
	b.WriteString(" IN (")
	for i, v := range c.vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.Placeholder(params.Push(v)))
	}
	b.WriteString(")")
	return nil
}

type isNull struct {
	column  string
	negated bool
}

// IsNull checks a column for NULL. No parameter is produced.
func IsNull(column string) Condition { return isNull{column: column} }

// IsNotNull checks a column for NOT NULL. No parameter is produced.
func IsNotNull(column string) Condition { return isNull{column: column, negated: true} }

func (c isNull) Render(d dialect.Dialect, b *strings.Builder, params *value.Params) error {
	b.WriteString(d.QuoteIdent(c.column))
	if c.negated {
		b.WriteString(" IS NOT NULL")
	} else {
		b.WriteString(" IS NULL")
	}
	return nil
}

type raw struct{ fragment string }

// Raw emits a pre-rendered fragment verbatim. It is the escape hatch for
// dialect-specific expressions; the caller owns its safety and no value
// binding occurs.
func Raw(fragment string) Condition { return raw{fragment: fragment} }

func (c raw) Render(d dialect.Dialect, b *strings.Builder, params *value.Params) error {
	b.WriteString(c.fragment)
	return nil
}

// RenderString renders a condition to a standalone fragment. Builders use
// Render directly against their own buffer; this is for callers that only
// need the fragment.
func RenderString(c Condition, d dialect.Dialect, params *value.Params) (string, error) {
	var b strings.Builder
	if err := c.Render(d, &b, params); err != nil {
		return "", err
	}
	return b.String(), nil
}
