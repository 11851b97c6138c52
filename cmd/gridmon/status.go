package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rakhi930/microgrid-dashboard/pkg/client"
	"github.com/rakhi930/microgrid-dashboard/pkg/dashboard"
)

func NewStatusCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "status",
		GroupID: gMonitoring,
		Short:   "Render one dashboard cycle and exit",
		Long:    `Fetch the current sensor snapshot, model status, and forecast once, render them, and exit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if jsonOutput {
				d := dashboard.FetchData(apiClient)
				if d.Snapshot == nil {
					return fmt.Errorf("failed to fetch sensor data: %w", client.ErrUnreachable)
				}
				return printStatusJSON(cmd, d)
			}

			loop := dashboard.NewLoop(apiClient, cmd.OutOrStdout(), cmd.InOrStdin(), conf.RefreshInterval())
			if _, err := loop.RunOnce(); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print a machine-readable status document")

	return cmd
}
