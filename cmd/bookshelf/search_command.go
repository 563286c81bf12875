package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookshelf/internal/catalog"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var by string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Find books whose title or author contains a term",
		Long: "Find books whose title (default) or author contains term, ignoring case.\n" +
			"Results are listed in collection order.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := catalog.ParseSearchMode(by)
			if err != nil {
				return fmt.Errorf("--by must be title or author, got %q", by)
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withLibrary(cmd.Context(), func(lib *catalog.Library) error {
				books, err := lib.Find(catalog.SearchRequest{Mode: mode, Term: args[0]})
				if err != nil {
					return err
				}
				return printBooks(cmd, books, bookOutput{
					json:  jsonOut,
					color: colorEnabled(cmd.OutOrStdout(), cfg.Display.Color),
					empty: "No books found.",
				})
			})
		},
	}

	cmd.Flags().StringVar(&by, "by", string(catalog.SearchByTitle), "Field to search: title or author")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
