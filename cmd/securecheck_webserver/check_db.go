package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckDBCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-db",
		Short: "Check the database connection by counting the traffic stop rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbClient, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer dbClient.Disconnect()

			total, err := dbClient.StopRecordUseCase().Count(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Database connection OK (%s): %s has %d rows\n",
				a.cfg.DBDriver, dbClient.Table(), total)
			return nil
		},
	}
}
