package simulator

import (
	"math"
	"time"

	"github.com/rakhi930/microgrid-dashboard/pkg/api"
)

var featureNames = []string{
	"Month", "Day", "DayOfWeek", "DayOfYear", "Irradiance_W_m2", "Temperature_C",
}

// Model is a deterministic stand-in for the hosted regressor: a fixed
// linear-plus-seasonal formula over the posted features, so the same
// request always yields the same forecast.
type Model struct {
	Type string
	now  func() time.Time
}

func NewModel(modelType string) *Model {
	return &Model{
		Type: modelType,
		now:  time.Now,
	}
}

// Predict scores one feature vector. The result is clamped to the
// dashboard's [0, 100] gauge axis.
func (m *Model) Predict(req api.PredictionRequest) api.PredictionResult {
	seasonal := 10 * math.Sin(2*math.Pi*float64(req.DayOfYear-80)/365)
	weekday := 0.5 * float64(req.DayOfWeek)

	prediction := req.Irradiance*0.05 + (req.Temperature-25)*0.3 + seasonal - weekday
	prediction = math.Max(0, math.Min(100, prediction))

	return api.PredictionResult{
		Status:       "success",
		Prediction:   math.Round(prediction*100) / 100,
		FeaturesUsed: featureNames,
		Timestamp:    m.now().Format("2006-01-02T15:04:05"),
	}
}
