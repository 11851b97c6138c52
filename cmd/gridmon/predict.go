package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewPredictCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "predict",
		GroupID: gMonitoring,
		Short:   "Fetch a one-shot solar output forecast",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := apiClient.FetchModelInfo()
			if err != nil {
				return fmt.Errorf("failed to fetch model info: %w", err)
			}
			if !info.ModelLoaded {
				return fmt.Errorf("the ML model is not loaded upstream")
			}

			result, err := apiClient.RequestPrediction()
			if err != nil {
				return fmt.Errorf("failed to request prediction: %w", err)
			}
			if !result.OK() {
				return fmt.Errorf("prediction failed upstream: status %q", result.Status)
			}

			bold := color.New(color.Bold)
			cmd.Printf("Predicted solar output (next hour): %s\n", bold.Sprintf("%.2f kW", result.Prediction))
			cmd.Printf("Model: %s, features used: %d\n", info.ModelType, len(result.FeaturesUsed))
			if result.Timestamp != "" {
				cmd.Printf("Prediction time: %s\n", result.Timestamp)
			}

			return nil
		},
	}
}
