package builder

import (
	"reflect"
	"testing"

	"github.com/hlop3z/sqlforge/internal/cond"
	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/value"
)

func TestUpdate(t *testing.T) {
	stmt, err := NewUpdate(dialect.SQLite, "users").
		Set("name", value.Text("bob")).
		Set("active", value.Bool(false)).
		Where(cond.Cmp("id", cond.EQ, value.Int64(7))).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := `UPDATE "users" SET "name" = ?, "active" = ? WHERE "id" = ?`
	if stmt.SQL != want {
		t.Errorf("SQL = %q, want %q", stmt.SQL, want)
	}
	wantArgs := []any{"bob", false, int64(7)}
	if got := stmt.NativeArgs(); !reflect.DeepEqual(got, wantArgs) {
		t.Errorf("NativeArgs() = %v, want %v", got, wantArgs)
	}
}

// Assignment parameters precede WHERE parameters in binding order, which is
// what Postgres numbering makes visible.
func TestUpdatePostgresNumbering(t *testing.T) {
	stmt, err := NewUpdate(dialect.Postgres, "users").
		Set("name", value.Text("bob")).
		Where(cond.Cmp("id", cond.EQ, value.Int64(7))).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := `UPDATE "users" SET "name" = $1 WHERE "id" = $2`
	if stmt.SQL != want {
		t.Errorf("SQL = %q, want %q", stmt.SQL, want)
	}
}

func TestUpdateConflictPrefix(t *testing.T) {
	stmt, err := NewUpdate(dialect.SQLite, "users").
		Set("name", value.Text("bob")).
		OnConflict(dialect.ConflictIgnore).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := `UPDATE OR IGNORE "users" SET "name" = ?`
	if stmt.SQL != want {
		t.Errorf("SQL = %q, want %q", stmt.SQL, want)
	}

	_, err = NewUpdate(dialect.Postgres, "users").
		Set("name", value.Text("bob")).
		OnConflict(dialect.ConflictIgnore).
		Build()
	if !sferr.IsCode(err, sferr.ErrConflictPolicy) {
		t.Errorf("postgres Build() error = %v, want code %s", err, sferr.ErrConflictPolicy)
	}
}

func TestUpdateErrors(t *testing.T) {
	_, err := NewUpdate(dialect.SQLite, "").Set("name", value.Text("x")).Build()
	if !sferr.IsCode(err, sferr.ErrMissingField) {
		t.Errorf("Build() error = %v, want code %s", err, sferr.ErrMissingField)
	}

	_, err = NewUpdate(dialect.SQLite, "users").Build()
	if !sferr.IsCode(err, sferr.ErrEmptyList) {
		t.Errorf("Build() error = %v, want code %s", err, sferr.ErrEmptyList)
	}
}

func TestDelete(t *testing.T) {
	stmt, err := NewDelete(dialect.SQLite, "users").
		Where(cond.Cmp("id", cond.EQ, value.Int64(7))).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := `DELETE FROM "users" WHERE "id" = ?`
	if stmt.SQL != want {
		t.Errorf("SQL = %q, want %q", stmt.SQL, want)
	}
	if len(stmt.Args) != 1 {
		t.Errorf("len(Args) = %d, want 1", len(stmt.Args))
	}
}

// DELETE without WHERE deletes every row; that is a valid statement with an
// empty parameter list, not an error.
func TestDeleteWithoutWhere(t *testing.T) {
	stmt, err := NewDelete(dialect.SQLite, "t").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if stmt.SQL != `DELETE FROM "t"` {
		t.Errorf("SQL = %q, want %q", stmt.SQL, `DELETE FROM "t"`)
	}
	if len(stmt.Args) != 0 {
		t.Errorf("len(Args) = %d, want 0", len(stmt.Args))
	}
}

func TestDeleteMissingTable(t *testing.T) {
	_, err := NewDelete(dialect.SQLite, "").Build()
	if !sferr.IsCode(err, sferr.ErrMissingField) {
		t.Errorf("Build() error = %v, want code %s", err, sferr.ErrMissingField)
	}
}
