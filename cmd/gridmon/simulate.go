package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rakhi930/microgrid-dashboard/pkg/simulator"
	"github.com/rakhi930/microgrid-dashboard/pkg/version"
)

func NewSimulateCommand() *cobra.Command {
	var (
		listen       string
		scenarioPath string
	)

	cmd := &cobra.Command{
		Use:     "simulate",
		GroupID: gAdvanced,
		Short:   "Run a local microgrid API simulator",
		Long: `Run a local stand-in for the hosted microgrid API.

The simulator fabricates sensor readings (optionally shaped by a YAML
scenario file) and serves a deterministic regressor with the same HTTP
contract the dashboard polls, so 'gridmon watch --api-url
http://localhost:8500' works without the hosted service.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			sc, err := simulator.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			if listen != "" {
				sc.Listen = listen
			}

			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
				"listen":  sc.Listen,
			}).Info("gridmon simulator starting")

			return simulator.Run(sc)
		},
	}

	f := cmd.Flags()
	f.StringVar(&listen, "listen", "", "listen address (overrides scenario, default :8500)")
	f.StringVar(&scenarioPath, "scenario", "", "scenario YAML file shaping the generated data")

	return cmd
}
