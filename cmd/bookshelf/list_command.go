package main

import (
	"github.com/spf13/cobra"

	"bookshelf/internal/catalog"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every book in the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withLibrary(cmd.Context(), func(lib *catalog.Library) error {
				return printBooks(cmd, lib.Books(), bookOutput{
					json:  jsonOut,
					color: colorEnabled(cmd.OutOrStdout(), cfg.Display.Color),
					empty: "The collection is empty.",
				})
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
