package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rakhi930/microgrid-dashboard/pkg/config"
)

func NewIntervalCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "interval [seconds]",
		GroupID: gMonitoring,
		Short:   "Set the auto-refresh interval",
		Long: `Set the auto-refresh interval in seconds and persist it to the config
file. The interval is bounded to 5-60 seconds.`,
		RunE: func(_ *cobra.Command, args []string) error {
			seconds, err := parseIntArg(args, "interval")
			if err != nil {
				return err
			}

			min := int(config.MinRefresh / time.Second)
			max := int(config.MaxRefresh / time.Second)
			if seconds < min || seconds > max {
				return fmt.Errorf("interval must be between %d and %d seconds, got %d", min, max, seconds)
			}

			conf.SetRefreshInterval(time.Duration(seconds) * time.Second)
			if err := conf.Save(); err != nil {
				return fmt.Errorf("failed to save config: %v", err)
			}

			logrus.Infof("successfully set refresh interval to %ds", seconds)

			return nil
		},
	}
}
