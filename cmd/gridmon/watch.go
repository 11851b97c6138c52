package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rakhi930/microgrid-dashboard/pkg/config"
	"github.com/rakhi930/microgrid-dashboard/pkg/dashboard"
)

func NewWatchCommand() *cobra.Command {
	var (
		refreshSeconds int
		noClear        bool
	)

	cmd := &cobra.Command{
		Use:     "watch",
		GroupID: gMonitoring,
		Short:   "Run the auto-refreshing dashboard",
		Long: `Run the auto-refreshing dashboard.

The dashboard re-fetches and redraws on a fixed interval (5-60 seconds).
When the API is unreachable it waits for a manual retry instead: press
Enter to retry, or q to quit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			interval := conf.RefreshInterval()
			if refreshSeconds > 0 {
				interval = config.ClampRefresh(time.Duration(refreshSeconds) * time.Second)
			}

			loop := dashboard.NewLoop(apiClient, cmd.OutOrStdout(), cmd.InOrStdin(), interval)
			loop.ClearScreen = !noClear && term.IsTerminal(int(os.Stdout.Fd()))

			return loop.Run()
		},
	}

	f := cmd.Flags()
	f.IntVarP(&refreshSeconds, "refresh", "r", 0, "refresh interval in seconds (5-60, overrides config)")
	f.BoolVar(&noClear, "no-clear", false, "do not clear the screen between refreshes")

	return cmd
}
