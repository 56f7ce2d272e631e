package dialect

import (
	"strconv"
	"strings"

	"github.com/hlop3z/sqlforge/internal/sferr"
)

// ConflictPolicy is the abstract behavior requested when an INSERT or
// UPDATE violates a uniqueness constraint.
type ConflictPolicy int

const (
	// ConflictAbort aborts the statement (every dialect's default).
	ConflictAbort ConflictPolicy = iota
	// ConflictRollback aborts the statement and rolls back the transaction.
	ConflictRollback
	// ConflictFail aborts without reverting prior rows of the statement.
	ConflictFail
	// ConflictIgnore skips conflicting rows.
	ConflictIgnore
	// ConflictUpsert updates the conflicting row instead.
	ConflictUpsert
)

// String returns the policy name for diagnostics.
func (p ConflictPolicy) String() string {
	switch p {
	case ConflictAbort:
		return "abort"
	case ConflictRollback:
		return "rollback"
	case ConflictFail:
		return "fail"
	case ConflictIgnore:
		return "ignore"
	case ConflictUpsert:
		return "upsert"
	default:
		return "unknown"
	}
}

// Conflict carries a policy plus the column context an upsert needs:
// the conflict target columns and the columns to overwrite on conflict.
type Conflict struct {
	Policy  ConflictPolicy
	Targets []string
	Update  []string
}

// InsertClauses resolves a conflict request for an INSERT on dialect d.
// It returns a prefix spliced between the INSERT keyword and INTO
// (SQLite "OR IGNORE", MySQL "IGNORE") and a suffix appended after the
// value rows (ON CONFLICT / ON DUPLICATE KEY clauses). Policies with no
// representation on d fail; nothing is silently substituted.
func (d Dialect) InsertClauses(c Conflict) (prefix, suffix string, err error) {
	switch d {
	case SQLite:
		switch c.Policy {
		case ConflictAbort:
			return "", "", nil
		case ConflictRollback:
			return "OR ROLLBACK ", "", nil
		case ConflictFail:
			return "OR FAIL ", "", nil
		case ConflictIgnore:
			return "OR IGNORE ", "", nil
		case ConflictUpsert:
			s, err := d.upsertClause(c, "excluded")
			return "", s, err
		}
	case Postgres:
		switch c.Policy {
		case ConflictAbort:
			return "", "", nil
		case ConflictIgnore:
			return "", " ON CONFLICT DO NOTHING", nil
		case ConflictUpsert:
			s, err := d.upsertClause(c, "EXCLUDED")
			return "", s, err
		}
	case MySQL:
		switch c.Policy {
		case ConflictAbort:
			return "", "", nil
		case ConflictIgnore:
			return "IGNORE ", "", nil
		case ConflictUpsert:
			s, err := d.duplicateKeyClause(c)
			return "", s, err
		}
	}
	return "", "", sferr.New(sferr.ErrConflictPolicy, "conflict policy has no representation on this dialect").
		With("policy", c.Policy.String()).
		WithDialect(d.String())
}

// UpdatePrefix resolves a conflict request for an UPDATE on dialect d.
// Only SQLite can qualify UPDATE with a conflict clause (UPDATE OR ...).
func (d Dialect) UpdatePrefix(p ConflictPolicy) (string, error) {
	if p == ConflictAbort {
		return "", nil
	}
	if d == SQLite {
		switch p {
		case ConflictRollback:
			return "OR ROLLBACK ", nil
		case ConflictFail:
			return "OR FAIL ", nil
		case ConflictIgnore:
			return "OR IGNORE ", nil
		}
	}
	return "", sferr.New(sferr.ErrConflictPolicy, "conflict policy has no representation on UPDATE for this dialect").
		With("policy", p.String()).
		WithDialect(d.String())
}

// upsertClause renders the SQLite/Postgres ON CONFLICT ... DO UPDATE clause.
// excludedRow is the dialect's pseudo-row naming the rejected values.
func (d Dialect) upsertClause(c Conflict, excludedRow string) (string, error) {
	if len(c.Targets) == 0 || len(c.Update) == 0 {
		return "", sferr.New(sferr.ErrConflictPolicy, "upsert requires conflict target and update columns").
			WithDialect(d.String())
	}
	var b strings.Builder
	b.WriteString(" ON CONFLICT (")
	WriteQuotedList(&b, c.Targets, d.QuoteIdent)
	b.WriteString(") DO UPDATE SET ")
	for i, col := range c.Update {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.QuoteIdent(col))
		b.WriteString(" = ")
		b.WriteString(excludedRow)
		b.WriteString(".")
		b.WriteString(d.QuoteIdent(col))
	}
	return b.String(), nil
}

// duplicateKeyClause renders MySQL's ON DUPLICATE KEY UPDATE clause.
// MySQL has no conflict target list; the unique key decides.
func (d Dialect) duplicateKeyClause(c Conflict) (string, error) {
	if len(c.Update) == 0 {
		return "", sferr.New(sferr.ErrConflictPolicy, "upsert requires update columns").
			WithDialect(d.String())
	}
	var b strings.Builder
	b.WriteString(" ON DUPLICATE KEY UPDATE ")
	for i, col := range c.Update {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.QuoteIdent(col))
		b.WriteString(" = VALUES(")
		b.WriteString(d.QuoteIdent(col))
		b.WriteString(")")
	}
	return b.String(), nil
}

// LimitOffsetSQL renders the LIMIT/OFFSET tail for dialect d. nil means
// unset. SQLite and Postgres use LIMIT n OFFSET m and allow a bare OFFSET;
// MySQL uses LIMIT m, n and cannot express OFFSET without LIMIT.
func (d Dialect) LimitOffsetSQL(limit, offset *uint64) (string, error) {
	if limit == nil && offset == nil {
		return "", nil
	}
	var b strings.Builder
	switch d {
	case MySQL:
		if limit == nil {
			return "", sferr.New(sferr.ErrStatementFeature, "OFFSET without LIMIT has no representation on this dialect").
				WithDialect(d.String())
		}
		b.WriteString(" LIMIT ")
		if offset != nil {
			b.WriteString(strconv.FormatUint(*offset, 10))
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(*limit, 10))
	default:
		if limit != nil {
			b.WriteString(" LIMIT ")
			b.WriteString(strconv.FormatUint(*limit, 10))
		}
		if offset != nil {
			b.WriteString(" OFFSET ")
			b.WriteString(strconv.FormatUint(*offset, 10))
		}
	}
	return b.String(), nil
}
