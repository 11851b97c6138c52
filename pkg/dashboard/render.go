// Package dashboard renders fetched microgrid data as a terminal view
// and drives the auto-refresh cycle.
package dashboard

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rakhi930/microgrid-dashboard/pkg/api"
)

// Grid voltage bounds for the "Normal" indicator. Exact boundary values
// count as abnormal.
const (
	gridVoltageLow  = 220.0
	gridVoltageHigh = 240.0
)

const (
	GridNormal   = "Normal"
	GridAbnormal = "Abnormal"
)

// Gauge axis for the predicted power indicator.
const (
	gaugeAxisLow  = 0.0
	gaugeAxisHigh = 100.0
)

// Fetcher supplies the three upstream reads of one render cycle.
type Fetcher interface {
	FetchSensorData() (*api.SensorSnapshot, error)
	FetchModelInfo() (*api.ModelInfo, error)
	RequestPrediction() (*api.PredictionResult, error)
	BaseURL() string
}

// Data is everything one render cycle works from. Nil fields mean the
// corresponding fetch failed; the renderer degrades accordingly. Data is
// discarded after rendering, nothing is retained across cycles.
type Data struct {
	Snapshot   *api.SensorSnapshot
	Model      *api.ModelInfo
	Prediction *api.PredictionResult
}

// FetchData performs the reads of one cycle. Fetch failures are logged
// and reduce to nil fields, they never propagate.
func FetchData(f Fetcher) *Data {
	d := &Data{}

	snap, err := f.FetchSensorData()
	if err != nil {
		logrus.Warnf("failed to fetch sensor data: %v", err)
	} else {
		d.Snapshot = snap
	}

	info, err := f.FetchModelInfo()
	if err != nil {
		logrus.Debugf("failed to fetch model info: %v", err)
	} else {
		d.Model = info
	}

	// Without a snapshot nothing else is computed, so don't bother the
	// model either.
	if d.Snapshot != nil {
		pred, err := f.RequestPrediction()
		if err != nil {
			logrus.Debugf("failed to request prediction: %v", err)
		} else {
			d.Prediction = pred
		}
	}

	return d
}

// GridStatus classifies a grid voltage. Normal only inside the open
// interval (220, 240).
func GridStatus(voltage float64) string {
	if voltage > gridVoltageLow && voltage < gridVoltageHigh {
		return GridNormal
	}
	return GridAbnormal
}

// BalanceState classifies the sign of the generation/load surplus.
type BalanceState int

const (
	BalanceSurplus BalanceState = iota
	BalanceDeficit
	BalanceEven
)

func (b BalanceState) String() string {
	switch b {
	case BalanceSurplus:
		return "surplus"
	case BalanceDeficit:
		return "deficit"
	default:
		return "balance"
	}
}

// Balance selects exactly one state from the surplus sign.
func Balance(surplus float64) BalanceState {
	switch {
	case surplus > 0:
		return BalanceSurplus
	case surplus < 0:
		return BalanceDeficit
	default:
		return BalanceEven
	}
}

// Render maps one cycle's data onto the terminal view. With no snapshot
// the whole content area is replaced by an error notice.
func Render(w io.Writer, d *Data, apiURL string) {
	renderHeader(w, d, apiURL)

	if d.Snapshot == nil {
		renderUnreachable(w, apiURL)
		return
	}

	renderMetrics(w, d.Snapshot)
	renderDetails(w, d.Snapshot)
	renderPrediction(w, d)
	renderEnergyBalance(w, d.Snapshot)
}

func renderHeader(w io.Writer, d *Data, apiURL string) {
	fmt.Fprintln(w, bold("Microgrid ML Monitor"))

	if d.Model != nil && d.Model.ModelLoaded {
		modelType := d.Model.ModelType
		if modelType == "" {
			modelType = "Unknown"
		}
		fmt.Fprintf(w, "ML model: %s (%s)\n", green("Active"), modelType)
	} else {
		fmt.Fprintf(w, "ML model: %s\n", yellow("Not Loaded"))
	}

	if d.Snapshot != nil {
		fmt.Fprintf(w, "API: %s %s\n", green("✔ connected"), apiURL)

		timestamp := d.Snapshot.Timestamp
		if timestamp == "" {
			timestamp = time.Now().Format(time.RFC3339)
		}
		fmt.Fprintf(w, "Last updated: %s\n", timestamp)
	} else {
		fmt.Fprintf(w, "API: %s %s\n", red("✘ disconnected"), apiURL)
	}

	fmt.Fprintln(w)
}

func renderUnreachable(w io.Writer, apiURL string) {
	fmt.Fprintln(w, red("Unable to fetch data from the API. Please check your connection."))
	fmt.Fprintf(w, "API URL: %s\n", apiURL)
}

func renderMetrics(w io.Writer, s *api.SensorSnapshot) {
	fmt.Fprintln(w, bold("Real-Time Metrics"))

	fmt.Fprintf(w, "  %-22s%-22s%-22s%s\n", "Solar Power", "Battery Level", "Grid Voltage", "Load")
	fmt.Fprintf(w, "  %-22s%-22s%-22s%s\n",
		fmt.Sprintf("%.2f kW", s.Solar.Power),
		fmt.Sprintf("%.0f%%", s.Battery.Level),
		fmt.Sprintf("%.1f V", s.Grid.Voltage),
		fmt.Sprintf("%.2f kW", s.Load),
	)
	fmt.Fprintf(w, "  %-22s%-22s%-22s%s\n",
		fmt.Sprintf("%.0f%% efficiency", s.Solar.Efficiency),
		fmt.Sprintf("%.0f%% health", s.Battery.Health),
		fmt.Sprintf("PF: %.2f", s.Grid.PowerFactor),
		"Active",
	)
	fmt.Fprintln(w)
}

func renderDetails(w io.Writer, s *api.SensorSnapshot) {
	fmt.Fprintln(w, bold("Detailed System Data"))

	fmt.Fprintln(w, bold("  Solar Panel"))
	fmt.Fprintf(w, "    Voltage: %.1f V\n", s.Solar.Voltage)
	fmt.Fprintf(w, "    Current: %.1f A\n", s.Solar.Current)
	fmt.Fprintf(w, "    Power: %.2f kW\n", s.Solar.Power)
	fmt.Fprintf(w, "    Temperature: %.0f°C\n", s.Solar.Temperature)
	fmt.Fprintf(w, "    %s Efficiency: %.0f%%\n", progressBar(s.Solar.Efficiency/100, barWidth), s.Solar.Efficiency)

	fmt.Fprintln(w, bold("  Battery System"))
	fmt.Fprintf(w, "    Voltage: %.1f V\n", s.Battery.Voltage)
	fmt.Fprintf(w, "    Current: %.1f A\n", s.Battery.Current)
	fmt.Fprintf(w, "    Power: %.2f kW\n", s.Battery.Power)
	fmt.Fprintf(w, "    Temperature: %.0f°C\n", s.Battery.Temperature)
	fmt.Fprintf(w, "    %s Charge: %.0f%%\n", progressBar(s.Battery.Level/100, barWidth), s.Battery.Level)

	fmt.Fprintln(w, bold("  Grid Connection"))
	fmt.Fprintf(w, "    Voltage: %.1f V\n", s.Grid.Voltage)
	fmt.Fprintf(w, "    Current: %.1f A\n", s.Grid.Current)
	fmt.Fprintf(w, "    Frequency: %.2f Hz\n", s.Grid.Frequency)
	fmt.Fprintf(w, "    Power Factor: %.2f\n", s.Grid.PowerFactor)

	if status := GridStatus(s.Grid.Voltage); status == GridNormal {
		fmt.Fprintf(w, "    Status: %s\n", green("✔ Grid %s", status))
	} else {
		fmt.Fprintf(w, "    Status: %s\n", yellow("⚠ Grid %s", status))
	}
	fmt.Fprintln(w)
}

func renderPrediction(w io.Writer, d *Data) {
	fmt.Fprintln(w, bold("AI/ML Predictions"))

	modelLoaded := d.Model != nil && d.Model.ModelLoaded
	if !modelLoaded || !d.Prediction.OK() {
		fmt.Fprintf(w, "  %s\n\n", yellow("ML predictions unavailable. Check model status."))
		return
	}

	fmt.Fprintf(w, "  Predicted Solar Output (Next Hour): %s\n", bold("%.2f kW", d.Prediction.Prediction))

	for _, line := range splitLines(gauge(d.Prediction.Prediction, gaugeAxisLow, gaugeAxisHigh, gaugeWidth)) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	fmt.Fprintf(w, "  Model Type: %s\n", d.Model.ModelType)
	fmt.Fprintf(w, "  Features Used: %d\n", len(d.Prediction.FeaturesUsed))
	fmt.Fprintf(w, "  Prediction Time: %s\n", orNA(d.Prediction.Timestamp))
	fmt.Fprintln(w)
}

func renderEnergyBalance(w io.Writer, s *api.SensorSnapshot) {
	fmt.Fprintln(w, bold("Energy Balance"))

	max := math.Max(math.Max(s.Solar.Power, s.Battery.Power), s.Load)
	fmt.Fprintf(w, "  Generation   Solar    %s %.2f kW\n", green("%-*s", barWidth, hbar(s.Solar.Power, max, barWidth)), s.Solar.Power)
	fmt.Fprintf(w, "               Battery  %s %.2f kW\n", green("%-*s", barWidth, hbar(s.Battery.Power, max, barWidth)), s.Battery.Power)
	fmt.Fprintf(w, "               Grid     %-*s %.2f kW\n", barWidth, "", 0.0)
	fmt.Fprintf(w, "  Consumption  Load     %s %.2f kW\n", red("%-*s", barWidth, hbar(s.Load, max, barWidth)), s.Load)
	fmt.Fprintln(w)

	surplus := s.Surplus()
	fmt.Fprintf(w, "  Total Generation: %.2f kW\n", s.TotalGeneration())
	fmt.Fprintf(w, "  Total Consumption: %.2f kW\n", s.Load)

	switch Balance(surplus) {
	case BalanceSurplus:
		fmt.Fprintf(w, "  %s\n", green("✔ Surplus: %.2f kW", surplus))
	case BalanceDeficit:
		fmt.Fprintf(w, "  %s\n", red("✘ Deficit: %.2f kW", math.Abs(surplus)))
	default:
		fmt.Fprintf(w, "  %s\n", bold("Balance: 0 kW"))
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
