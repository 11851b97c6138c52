package dashboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/rakhi930/microgrid-dashboard/pkg/api"
)

func init() {
	// Keep rendered output free of escape codes so substring checks work.
	color.NoColor = true
}

func testSnapshot() *api.SensorSnapshot {
	s := &api.SensorSnapshot{Timestamp: "2024-06-05T12:00:00", Load: 5.0}
	s.Solar = api.Solar{Voltage: 48.2, Current: 66.4, Power: 3.2, Temperature: 42, Efficiency: 82}
	s.Battery = api.Battery{Voltage: 51.1, Current: 21.5, Power: 1.1, Temperature: 28, Level: 76, Health: 95}
	s.Grid = api.Grid{Voltage: 230.1, Current: 12.4, Frequency: 50.02, PowerFactor: 0.98}
	return s
}

func loadedModel() *api.ModelInfo {
	return &api.ModelInfo{ModelLoaded: true, ModelType: "RandomForestRegressor"}
}

func TestGridStatus(t *testing.T) {
	tests := []struct {
		name    string
		voltage float64
		want    string
	}{
		{name: "nominal", voltage: 230, want: GridNormal},
		{name: "lower boundary excluded", voltage: 220, want: GridAbnormal},
		{name: "upper boundary excluded", voltage: 240, want: GridAbnormal},
		{name: "just inside lower", voltage: 220.1, want: GridNormal},
		{name: "just inside upper", voltage: 239.9, want: GridNormal},
		{name: "undervoltage", voltage: 180, want: GridAbnormal},
		{name: "overvoltage", voltage: 250, want: GridAbnormal},
		{name: "zero", voltage: 0, want: GridAbnormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GridStatus(tt.voltage); got != tt.want {
				t.Errorf("GridStatus(%v) = %q, want %q", tt.voltage, got, tt.want)
			}
		})
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name    string
		surplus float64
		want    BalanceState
	}{
		{name: "positive is surplus", surplus: 0.5, want: BalanceSurplus},
		{name: "negative is deficit", surplus: -0.7, want: BalanceDeficit},
		{name: "zero is even", surplus: 0, want: BalanceEven},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Balance(tt.surplus); got != tt.want {
				t.Errorf("Balance(%v) = %v, want %v", tt.surplus, got, tt.want)
			}
		})
	}
}

func TestRenderDeficit(t *testing.T) {
	// 3.2 + 1.1 - 5.0 = -0.7, shown as the absolute value.
	var buf bytes.Buffer
	Render(&buf, &Data{
		Snapshot:   testSnapshot(),
		Model:      loadedModel(),
		Prediction: &api.PredictionResult{Status: "success", Prediction: 42.5},
	}, "http://localhost:8500")

	out := buf.String()
	if !strings.Contains(out, "Deficit: 0.70 kW") {
		t.Errorf("expected deficit of 0.70 kW in output:\n%s", out)
	}
	if strings.Contains(out, "Surplus:") {
		t.Error("deficit and surplus must be mutually exclusive")
	}
	if !strings.Contains(out, "Total Generation: 4.30 kW") {
		t.Errorf("expected total generation in output:\n%s", out)
	}
}

func TestRenderSurplusAndBalance(t *testing.T) {
	s := testSnapshot()
	s.Load = 4.0
	var buf bytes.Buffer
	Render(&buf, &Data{Snapshot: s, Model: loadedModel()}, "")
	if !strings.Contains(buf.String(), "Surplus: 0.30 kW") {
		t.Errorf("expected surplus of 0.30 kW:\n%s", buf.String())
	}

	s.Load = s.TotalGeneration()
	buf.Reset()
	Render(&buf, &Data{Snapshot: s, Model: loadedModel()}, "")
	if !strings.Contains(buf.String(), "Balance: 0 kW") {
		t.Errorf("expected exact balance:\n%s", buf.String())
	}
}

func TestRenderModelNotLoaded(t *testing.T) {
	// Warning shows regardless of the prediction content.
	var buf bytes.Buffer
	Render(&buf, &Data{
		Snapshot:   testSnapshot(),
		Model:      &api.ModelInfo{ModelLoaded: false},
		Prediction: &api.PredictionResult{Status: "success", Prediction: 55},
	}, "")

	out := buf.String()
	if !strings.Contains(out, "ML predictions unavailable") {
		t.Errorf("expected prediction warning:\n%s", out)
	}
	if strings.Contains(out, "Predicted Solar Output") {
		t.Error("prediction metric must not render when the model is not loaded")
	}
	if strings.Contains(out, "▼") {
		t.Error("no gauge should be drawn when the model is not loaded")
	}
}

func TestRenderPredictionError(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &Data{
		Snapshot:   testSnapshot(),
		Model:      loadedModel(),
		Prediction: &api.PredictionResult{Status: "error"},
	}, "")

	out := buf.String()
	if !strings.Contains(out, "ML predictions unavailable") {
		t.Errorf("expected prediction warning:\n%s", out)
	}
	if strings.Contains(out, "▼") {
		t.Error("no gauge should be drawn for a failed prediction")
	}
}

func TestRenderPredictionSuccess(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &Data{
		Snapshot: testSnapshot(),
		Model:    loadedModel(),
		Prediction: &api.PredictionResult{
			Status:       "success",
			Prediction:   42.5,
			FeaturesUsed: []string{"Month", "Day", "DayOfWeek", "DayOfYear", "Irradiance_W_m2", "Temperature_C"},
			Timestamp:    "2024-06-05T12:00:01",
		},
	}, "")

	out := buf.String()
	if !strings.Contains(out, "Predicted Solar Output (Next Hour): 42.50 kW") {
		t.Errorf("expected prediction metric:\n%s", out)
	}
	if !strings.Contains(out, "▼") {
		t.Errorf("expected a gauge pointer:\n%s", out)
	}
	if !strings.Contains(out, "Features Used: 6") {
		t.Errorf("expected feature count:\n%s", out)
	}
}

func TestRenderUnreachable(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &Data{}, "http://localhost:8500")

	out := buf.String()
	if !strings.Contains(out, "Unable to fetch data from the API") {
		t.Errorf("expected error notice:\n%s", out)
	}
	if !strings.Contains(out, "API URL: http://localhost:8500") {
		t.Errorf("expected API URL in error notice:\n%s", out)
	}
	if strings.Contains(out, "Real-Time Metrics") {
		t.Error("no metrics may render when the sensor fetch is absent")
	}
	if strings.Contains(out, "Energy Balance") {
		t.Error("no energy balance may render when the sensor fetch is absent")
	}
}
