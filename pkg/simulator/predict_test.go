package simulator

import (
	"testing"
	"time"

	"github.com/rakhi930/microgrid-dashboard/pkg/api"
)

func testModel() *Model {
	m := NewModel("RandomForestRegressor")
	m.now = func() time.Time { return time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC) }
	return m
}

func TestPredictDeterministic(t *testing.T) {
	m := testModel()
	req := api.PredictionRequest{Month: 6, Day: 5, DayOfWeek: 2, DayOfYear: 157, Irradiance: 800, Temperature: 25}

	r1, r2 := m.Predict(req), m.Predict(req)
	if r1.Prediction != r2.Prediction {
		t.Errorf("same features gave different predictions: %v vs %v", r1.Prediction, r2.Prediction)
	}
	if r1.Status != "success" {
		t.Errorf("Status = %q, want success", r1.Status)
	}
	if len(r1.FeaturesUsed) != 6 {
		t.Errorf("FeaturesUsed = %v, want the 6 trained features", r1.FeaturesUsed)
	}
	if r1.Timestamp == "" {
		t.Error("missing timestamp")
	}
}

func TestPredictClampedToGaugeAxis(t *testing.T) {
	m := testModel()

	low := m.Predict(api.PredictionRequest{Irradiance: 0, Temperature: -60, DayOfYear: 330})
	if low.Prediction < 0 {
		t.Errorf("prediction %v below axis", low.Prediction)
	}

	high := m.Predict(api.PredictionRequest{Irradiance: 5000, Temperature: 60, DayOfYear: 170})
	if high.Prediction > 100 {
		t.Errorf("prediction %v above axis", high.Prediction)
	}
}

func TestPredictIrradianceDrivesOutput(t *testing.T) {
	m := testModel()

	dim := m.Predict(api.PredictionRequest{Irradiance: 100, Temperature: 25, DayOfYear: 157})
	bright := m.Predict(api.PredictionRequest{Irradiance: 900, Temperature: 25, DayOfYear: 157})
	if bright.Prediction <= dim.Prediction {
		t.Errorf("expected more irradiance to raise the forecast: %v <= %v", bright.Prediction, dim.Prediction)
	}
}
