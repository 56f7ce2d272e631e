package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/ui"
)

// dialectsCmd lists the supported dialects and their wire conventions.
func dialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(ui.Header("Supported dialects"))
			for _, name := range dialect.Names() {
				d, _ := dialect.Get(name)
				fmt.Printf("  %-10s identifiers %s  placeholders %s\n",
					name,
					d.QuoteIdent("name"),
					d.Placeholder(1))
			}
		},
	}
}
