package dialect

import (
	"strings"
	"testing"

	"github.com/hlop3z/sqlforge/internal/value"
)

func TestColumnSQL(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		col      Column
		want     string
		wantArgs int
	}{
		{
			name:    "sqlite pk autoincrement",
			dialect: SQLite,
			col: Column{Name: "id", Type: TypeInt64, Annotations: []Annotation{
				PrimaryKey(), AutoIncrement(),
			}},
			want: `"id" INTEGER PRIMARY KEY AUTOINCREMENT`,
		},
		{
			name:    "mysql pk autoincrement",
			dialect: MySQL,
			col: Column{Name: "id", Type: TypeInt64, Annotations: []Annotation{
				PrimaryKey(), AutoIncrement(),
			}},
			want: "`id` BIGINT PRIMARY KEY AUTO_INCREMENT",
		},
		{
			name:    "postgres pk identity",
			dialect: Postgres,
			col: Column{Name: "id", Type: TypeInt64, Annotations: []Annotation{
				PrimaryKey(), AutoIncrement(),
			}},
			want: `"id" BIGINT PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY`,
		},
		{
			name:    "not null unique",
			dialect: SQLite,
			col: Column{Name: "email", Type: TypeVarChar, Annotations: []Annotation{
				NotNull(), Unique(),
			}},
			want: `"email" TEXT NOT NULL UNIQUE`,
		},
		{
			name:    "max length feeds type",
			dialect: Postgres,
			col: Column{Name: "email", Type: TypeVarChar, Annotations: []Annotation{
				MaxLength(120), NotNull(),
			}},
			want: `"email" VARCHAR(120) NOT NULL`,
		},
		{
			name:    "default binds a parameter",
			dialect: Postgres,
			col: Column{Name: "active", Type: TypeBool, Annotations: []Annotation{
				Default(value.Bool(true)),
			}},
			want:     `"active" BOOLEAN DEFAULT $1`,
			wantArgs: 1,
		},
		{
			name:    "foreign key",
			dialect: SQLite,
			col: Column{Name: "user_id", Type: TypeInt64, Annotations: []Annotation{
				NotNull(),
				ForeignKey(ForeignKeyRef{Table: "users", Column: "id", OnDelete: RefCascade, OnUpdate: RefRestrict}),
			}},
			want: `"user_id" INTEGER NOT NULL REFERENCES "users"("id") ON DELETE CASCADE ON UPDATE RESTRICT`,
		},
		{
			name:    "mysql foreign key quoting",
			dialect: MySQL,
			col: Column{Name: "user_id", Type: TypeInt64, Annotations: []Annotation{
				ForeignKey(ForeignKeyRef{Table: "users", Column: "id"}),
			}},
			want: "`user_id` BIGINT REFERENCES `users`(`id`)",
		},
		{
			name:    "index annotation emits nothing inline",
			dialect: SQLite,
			col: Column{Name: "email", Type: TypeVarChar, Annotations: []Annotation{
				Index(""), NotNull(),
			}},
			want: `"email" TEXT NOT NULL`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var params value.Params
			got, err := tt.dialect.ColumnSQL(tt.col, &params)
			if err != nil {
				t.Fatalf("ColumnSQL() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ColumnSQL() = %q, want %q", got, tt.want)
			}
			if params.Len() != tt.wantArgs {
				t.Errorf("params.Len() = %d, want %d", params.Len(), tt.wantArgs)
			}
		})
	}
}

// TestPrimaryKeyAlwaysFirst renders every permutation of a three-annotation
// column and checks PRIMARY KEY always precedes the rest, with the others
// keeping their relative input order.
func TestPrimaryKeyAlwaysFirst(t *testing.T) {
	anns := map[string]Annotation{
		"pk":       PrimaryKey(),
		"autoincr": AutoIncrement(),
		"notnull":  NotNull(),
	}
	perms := [][]string{
		{"pk", "autoincr", "notnull"},
		{"pk", "notnull", "autoincr"},
		{"autoincr", "pk", "notnull"},
		{"autoincr", "notnull", "pk"},
		{"notnull", "pk", "autoincr"},
		{"notnull", "autoincr", "pk"},
	}

	for _, perm := range perms {
		t.Run(strings.Join(perm, "-"), func(t *testing.T) {
			ordered := make([]Annotation, 0, len(perm))
			for _, key := range perm {
				ordered = append(ordered, anns[key])
			}

			var params value.Params
			got, err := SQLite.ColumnSQL(Column{Name: "id", Type: TypeInt64, Annotations: ordered}, &params)
			if err != nil {
				t.Fatalf("ColumnSQL() error = %v", err)
			}

			pkPos := strings.Index(got, "PRIMARY KEY")
			if pkPos < 0 {
				t.Fatalf("ColumnSQL() = %q, missing PRIMARY KEY", got)
			}
			for _, kw := range []string{"AUTOINCREMENT", "NOT NULL"} {
				if pos := strings.Index(got, kw); pos >= 0 && pos < pkPos {
					t.Errorf("ColumnSQL() = %q: %s appears before PRIMARY KEY", got, kw)
				}
			}

			// Relative order of non-PK annotations follows input order.
			wantAutoFirst := indexOf(perm, "autoincr") < indexOf(perm, "notnull")
			gotAutoFirst := strings.Index(got, "AUTOINCREMENT") < strings.Index(got, "NOT NULL")
			if wantAutoFirst != gotAutoFirst {
				t.Errorf("ColumnSQL() = %q: non-PK annotation order not preserved for input %v", got, perm)
			}
		})
	}
}

func indexOf(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}

func TestRefActionFromName(t *testing.T) {
	tests := []struct {
		name string
		want RefAction
		ok   bool
	}{
		{"", RefNone, true},
		{"cascade", RefCascade, true},
		{"CASCADE", RefCascade, true},
		{"set_null", RefSetNull, true},
		{"set null", RefSetNull, true},
		{"set_default", RefSetDefault, true},
		{"restrict", RefRestrict, true},
		{"no_action", RefNoAction, true},
		{"bogus", RefNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RefActionFromName(tt.name)
			if ok != tt.ok {
				t.Fatalf("RefActionFromName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("RefActionFromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
