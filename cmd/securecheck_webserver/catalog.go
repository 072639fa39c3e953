package main

import (
	"fmt"
	"strings"

	"github.com/securecheck/securecheck-webserver/internal/catalog"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List and run the predefined analytical queries",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the catalog labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, label := range catalog.Labels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, label)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "run <label>",
		Short: "Run a catalog query by label and print the result table",
		Example: `  securecheck_webserver catalog run "Top 10 vehicles involved in drug-related stops"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := strings.Join(args, " ")
			if _, err := catalog.Lookup(label); err != nil {
				return err
			}

			dbClient, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer dbClient.Disconnect()

			result, err := dbClient.CatalogUseCase().RunCatalogQuery(cmd.Context(), label)
			if err != nil {
				return err
			}

			return printQueryResult(cmd.OutOrStdout(), &result.QueryResult)
		},
	})

	return cmd
}
