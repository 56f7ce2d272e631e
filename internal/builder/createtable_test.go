package builder

import (
	"testing"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/value"
)

func TestCreateTable(t *testing.T) {
	stmt, err := NewCreateTable(dialect.SQLite, "users").
		Column("id", dialect.TypeInt64, dialect.PrimaryKey()).
		Column("name", dialect.TypeVarChar, dialect.NotNull()).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := `CREATE TABLE "users" ("id" INTEGER PRIMARY KEY, "name" TEXT NOT NULL)`
	if stmt.SQL != want {
		t.Errorf("SQL = %q, want %q", stmt.SQL, want)
	}
	if len(stmt.Args) != 0 {
		t.Errorf("len(Args) = %d, want 0", len(stmt.Args))
	}
}

// The same draft renders differently on each dialect; only the structure is
// shared.
func TestCreateTableDialectDivergence(t *testing.T) {
	build := func(d dialect.Dialect) string {
		stmt, err := NewCreateTable(d, "users").
			IfNotExists().
			Column("id", dialect.TypeInt64, dialect.PrimaryKey(), dialect.AutoIncrement()).
			Column("email", dialect.TypeVarChar, dialect.MaxLength(120), dialect.NotNull()).
			Build()
		if err != nil {
			t.Fatalf("%s: Build() error = %v", d, err)
		}
		return stmt.SQL
	}

	tests := []struct {
		dialect dialect.Dialect
		want    string
	}{
		{
			dialect.SQLite,
			`CREATE TABLE IF NOT EXISTS "users" ("id" INTEGER PRIMARY KEY AUTOINCREMENT, "email" TEXT NOT NULL)`,
		},
		{
			dialect.Postgres,
			`CREATE TABLE IF NOT EXISTS "users" ("id" BIGINT PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY, "email" VARCHAR(120) NOT NULL)`,
		},
		{
			dialect.MySQL,
			"CREATE TABLE IF NOT EXISTS `users` (`id` BIGINT PRIMARY KEY AUTO_INCREMENT, `email` VARCHAR(120) NOT NULL)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.String(), func(t *testing.T) {
			if got := build(tt.dialect); got != tt.want {
				t.Errorf("SQL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateTableDefaultBindsParameter(t *testing.T) {
	stmt, err := NewCreateTable(dialect.Postgres, "users").
		Column("id", dialect.TypeInt64, dialect.PrimaryKey()).
		Column("active", dialect.TypeBool, dialect.Default(value.Bool(true))).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := `CREATE TABLE "users" ("id" BIGINT PRIMARY KEY, "active" BOOLEAN DEFAULT $1)`
	if stmt.SQL != want {
		t.Errorf("SQL = %q, want %q", stmt.SQL, want)
	}
	if len(stmt.Args) != 1 || stmt.Args[0].Native() != true {
		t.Errorf("Args = %v, want [true]", stmt.NativeArgs())
	}
}

func TestCreateTableTableForeignKey(t *testing.T) {
	stmt, err := NewCreateTable(dialect.SQLite, "memberships").
		Column("user_id", dialect.TypeInt64, dialect.NotNull()).
		Column("team_id", dialect.TypeInt64, dialect.NotNull()).
		ForeignKey(TableForeignKey{
			Name:       "fk_memberships_user",
			Columns:    []string{"user_id"},
			RefTable:   "users",
			RefColumns: []string{"id"},
			OnDelete:   dialect.RefCascade,
		}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := `CREATE TABLE "memberships" ("user_id" INTEGER NOT NULL, "team_id" INTEGER NOT NULL, ` +
		`CONSTRAINT "fk_memberships_user" FOREIGN KEY ("user_id") REFERENCES "users" ("id") ON DELETE CASCADE)`
	if stmt.SQL != want {
		t.Errorf("SQL = %q, want %q", stmt.SQL, want)
	}
}

func TestCreateTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (Statement, error)
		code  sferr.Code
	}{
		{
			"empty table name",
			func() (Statement, error) {
				return NewCreateTable(dialect.SQLite, "").Column("id", dialect.TypeInt64).Build()
			},
			sferr.ErrMissingField,
		},
		{
			"no columns",
			func() (Statement, error) {
				return NewCreateTable(dialect.SQLite, "users").Build()
			},
			sferr.ErrEmptyList,
		},
		{
			"foreign key arity mismatch",
			func() (Statement, error) {
				return NewCreateTable(dialect.SQLite, "t").
					Column("a", dialect.TypeInt64).
					ForeignKey(TableForeignKey{
						Columns:    []string{"a", "b"},
						RefTable:   "u",
						RefColumns: []string{"id"},
					}).
					Build()
			},
			sferr.ErrArityMismatch,
		},
		{
			"foreign key empty columns",
			func() (Statement, error) {
				return NewCreateTable(dialect.SQLite, "t").
					Column("a", dialect.TypeInt64).
					ForeignKey(TableForeignKey{RefTable: "u"}).
					Build()
			},
			sferr.ErrEmptyList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if !sferr.IsCode(err, tt.code) {
				t.Errorf("Build() error = %v, want code %s", err, tt.code)
			}
			if !sferr.IsMalformed(err) {
				t.Errorf("Build() error = %v should classify as malformed", err)
			}
		})
	}
}

func TestCreateTableIndexStatements(t *testing.T) {
	ct := NewCreateTable(dialect.SQLite, "users").
		IfNotExists().
		Column("id", dialect.TypeInt64, dialect.PrimaryKey()).
		Column("email", dialect.TypeVarChar, dialect.NotNull(), dialect.Index("")).
		Column("team_id", dialect.TypeInt64, dialect.Index("idx_custom"))

	stmts, err := ct.IndexStatements()
	if err != nil {
		t.Fatalf("IndexStatements() error = %v", err)
	}
	want := []string{
		`CREATE INDEX IF NOT EXISTS "idx_users_email" ON "users" ("email")`,
		`CREATE INDEX IF NOT EXISTS "idx_custom" ON "users" ("team_id")`,
	}
	if len(stmts) != len(want) {
		t.Fatalf("len(stmts) = %d, want %d", len(stmts), len(want))
	}
	for i, w := range want {
		if stmts[i].SQL != w {
			t.Errorf("stmts[%d].SQL = %q, want %q", i, stmts[i].SQL, w)
		}
	}
}

// MySQL has no CREATE INDEX IF NOT EXISTS, so derived index statements drop
// the clause there instead of failing the whole table.
func TestCreateTableIndexStatementsMySQL(t *testing.T) {
	stmts, err := NewCreateTable(dialect.MySQL, "users").
		IfNotExists().
		Column("id", dialect.TypeInt64, dialect.PrimaryKey()).
		Column("email", dialect.TypeVarChar, dialect.Index("")).
		IndexStatements()
	if err != nil {
		t.Fatalf("IndexStatements() error = %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("len(stmts) = %d, want 1", len(stmts))
	}
	want := "CREATE INDEX `idx_users_email` ON `users` (`email`)"
	if stmts[0].SQL != want {
		t.Errorf("stmts[0].SQL = %q, want %q", stmts[0].SQL, want)
	}
}

// Build is non-consuming: a second call renders the same statement with
// freshly numbered parameters.
func TestCreateTableBuildIsIdempotent(t *testing.T) {
	ct := NewCreateTable(dialect.Postgres, "users").
		Column("active", dialect.TypeBool, dialect.Default(value.Bool(true)))

	first, err := ct.Build()
	if err != nil {
		t.Fatalf("first Build() error = %v", err)
	}
	second, err := ct.Build()
	if err != nil {
		t.Fatalf("second Build() error = %v", err)
	}
	if first.SQL != second.SQL {
		t.Errorf("second Build() SQL = %q, want %q", second.SQL, first.SQL)
	}
	if len(first.Args) != len(second.Args) {
		t.Errorf("arg counts differ: %d vs %d", len(first.Args), len(second.Args))
	}
}
