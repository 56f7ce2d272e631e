package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/hlop3z/sqlforge/internal/builder"
	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/schemafile"
	"github.com/hlop3z/sqlforge/internal/sferr"
	"github.com/hlop3z/sqlforge/internal/ui"
)

// renderCmd renders a schema file to SQL for one dialect.
func renderCmd() *cobra.Command {
	var dialectName string
	var watch bool

	cmd := &cobra.Command{
		Use:   "render <schema.yaml>",
		Short: "Render a schema file to dialect-correct SQL",
		Args:  cobra.ExactArgs(1),
		Example: `  sqlforge render schema.yaml --dialect postgres
  sqlforge render schema.yaml --dialect mysql --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := dialect.Get(dialectName)
			if !ok {
				return sferr.New(sferr.ErrUnknownDialect, "unknown dialect").
					With("dialect", dialectName).
					With("supported", dialect.Names())
			}

			path := args[0]
			if err := renderFile(path, d); err != nil {
				if !watch {
					return err
				}
				fmt.Println(ui.FormatError(err))
			}
			if watch {
				return watchAndRender(path, d)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialectName, "dialect", "d", "sqlite", "target dialect (sqlite, postgres, mysql)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render whenever the schema file changes")
	return cmd
}

// renderFile loads, renders, and prints every statement of a schema file.
func renderFile(path string, d dialect.Dialect) error {
	schema, err := schemafile.Load(path)
	if err != nil {
		return err
	}
	stmts, err := schema.Statements(d)
	if err != nil {
		return err
	}

	fmt.Println(ui.Header(fmt.Sprintf("-- %s (%s)", filepath.Base(path), d)))
	for _, stmt := range stmts {
		printStatement(stmt)
	}
	return nil
}

// printStatement prints one statement followed by its bound parameters,
// if any, as a comment.
func printStatement(stmt builder.Statement) {
	fmt.Println(stmt.SQL + ";")
	if len(stmt.Args) > 0 {
		fmt.Println(ui.Dim(fmt.Sprintf("-- binds: %v", stmt.NativeArgs())))
	}
}

// watchAndRender blocks, re-rendering the schema on every write. Editors
// often replace files instead of writing in place, so the watch is on the
// parent directory filtered to the target name.
func watchAndRender(path string, d dialect.Dialect) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("file watcher failed: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	fmt.Println(ui.Info("watching " + path + " (ctrl-c to stop)"))
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := renderFile(path, d); err != nil {
					fmt.Println(ui.FormatError(err))
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println(ui.FormatError(err))
		}
	}
}
