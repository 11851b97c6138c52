package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rakhi930/microgrid-dashboard/pkg/client"
	"github.com/rakhi930/microgrid-dashboard/pkg/config"
)

var (
	logLevel   = "info"
	configPath = defaultConfigPath()
	apiURL     = ""
)

var (
	gMonitoring   = "Monitoring:"
	gAdvanced     = "Advanced:"
	commandGroups = []string{
		gMonitoring,
		gAdvanced,
	}
)

var (
	conf      *config.File
	apiClient *client.Client
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gridmon.json"
	}
	return filepath.Join(dir, "gridmon.json")
}

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if client.IsUnreachable(err) {
		fmt.Fprintln(os.Stderr, "\nError: the microgrid API could not be reached")
		fmt.Fprintln(os.Stderr, "  - Check the API URL with '--api-url' or the 'apiUrl' config field")
		fmt.Fprintln(os.Stderr, "  - Run a local API with 'gridmon simulate' to test without the hosted service")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridmon",
		Short: "gridmon is a terminal dashboard for microgrid sensors and ML forecasts",
		Long: `gridmon polls a microgrid API for simulated sensor readings (solar,
battery, grid, load) and a pre-trained regression model's forecast, and
renders them as an auto-refreshing terminal dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			err := setupLogger()
			if err != nil {
				return err
			}

			conf, err = config.NewFile(configPath)
			if err != nil {
				return err
			}
			if apiURL != "" {
				conf.SetAPIURL(apiURL)
			}
			logrus.WithFields(conf.LogrusFields()).Debug("config loaded")

			apiClient = client.NewClient(conf.APIURL(), client.WithMemoTTL(conf.MemoTTL()))

			return nil
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path")
	globalFlags.StringVar(&apiURL, "api-url", "", "microgrid API base URL (overrides config)")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewWatchCommand(),
		NewStatusCommand(),
		NewPredictCommand(),
		NewIntervalCommand(),
		NewSimulateCommand(),
		NewVersionCommand(),
	)

	return cmd
}
