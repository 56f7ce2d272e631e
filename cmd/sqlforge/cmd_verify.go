package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/scratch"
	"github.com/hlop3z/sqlforge/internal/schemafile"
	"github.com/hlop3z/sqlforge/internal/ui"
)

// verifyCmd renders a schema and executes the result against an ephemeral
// database, proving the generated DDL is accepted by a real engine.
func verifyCmd() *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "verify <schema.yaml>",
		Short: "Execute rendered DDL against an ephemeral database",
		Long: `Render the schema and execute every statement against a database.

By default an in-memory SQLite database is used, so verification needs no
setup and leaves no trace. With --database-url the statements are rendered
for PostgreSQL and executed against the given server instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := schemafile.Load(args[0])
			if err != nil {
				return err
			}

			d := dialect.SQLite
			var db *scratch.DB
			if databaseURL != "" {
				d = dialect.Postgres
				db, err = scratch.Open("postgres", databaseURL)
			} else {
				db, err = scratch.NewSQLite()
			}
			if err != nil {
				return err
			}
			defer db.Close()

			stmts, err := schema.Statements(d)
			if err != nil {
				return err
			}
			if err := db.ExecAll(cmd.Context(), stmts); err != nil {
				return err
			}

			fmt.Println(ui.Success(fmt.Sprintf("%d statements executed on %s", len(stmts), d)))
			return nil
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "verify against a PostgreSQL server instead of in-memory SQLite")
	return cmd
}
