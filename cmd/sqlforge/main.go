// Package main provides the CLI for the sqlforge SQL generation library.
// It renders YAML schema files into dialect-correct SQL and can verify the
// result against an ephemeral database.
//
// Usage:
//
//	sqlforge render schema.yaml --dialect postgres   # Print DDL for a dialect
//	sqlforge render schema.yaml --watch              # Re-render on file change
//	sqlforge verify schema.yaml                      # Execute DDL against in-memory SQLite
//	sqlforge verify schema.yaml --database-url URL   # Execute against a server
//	sqlforge dialects                                # List supported dialects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Database drivers
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/hlop3z/sqlforge/internal/ui"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// Global flags
var noColor bool

func main() {
	root := &cobra.Command{
		Use:     "sqlforge",
		Short:   "Render dialect-correct SQL from schema files",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				ui.DisableColors()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(renderCmd())
	root.AddCommand(verifyCmd())
	root.AddCommand(dialectsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err))
		os.Exit(1)
	}
}
