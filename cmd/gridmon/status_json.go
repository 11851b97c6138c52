package main

import (
	"encoding/json"
	"math"

	"github.com/spf13/cobra"

	"github.com/rakhi930/microgrid-dashboard/pkg/api"
	"github.com/rakhi930/microgrid-dashboard/pkg/dashboard"
)

type statusJSON struct {
	Timestamp string              `json:"timestamp"`
	Sensors   *api.SensorSnapshot `json:"sensors"`
	// Model and Prediction are omitted when their fetches fail; sensor
	// data alone is still a valid status.
	Model      *api.ModelInfo        `json:"model,omitempty"`
	Prediction *api.PredictionResult `json:"prediction,omitempty"`
	Grid       statusGridJSON        `json:"grid"`
	Energy     statusEnergyJSON      `json:"energy"`
}

type statusGridJSON struct {
	Status string `json:"status"`
}

type statusEnergyJSON struct {
	GenerationKw  float64 `json:"generationKw"`
	ConsumptionKw float64 `json:"consumptionKw"`
	SurplusKw     float64 `json:"surplusKw"`
	State         string  `json:"state"`
}

func printStatusJSON(cmd *cobra.Command, d *dashboard.Data) error {
	s := d.Snapshot
	surplus := s.Surplus()

	prediction := d.Prediction
	if !prediction.OK() {
		prediction = nil
	}

	out := statusJSON{
		Timestamp:  s.Timestamp,
		Sensors:    s,
		Model:      d.Model,
		Prediction: prediction,
		Grid: statusGridJSON{
			Status: dashboard.GridStatus(s.Grid.Voltage),
		},
		Energy: statusEnergyJSON{
			GenerationKw:  round2(s.TotalGeneration()),
			ConsumptionKw: round2(s.Load),
			SurplusKw:     round2(surplus),
			State:         dashboard.Balance(surplus).String(),
		},
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
