// Package api holds the wire types exchanged with the microgrid API.
// Every struct mirrors the upstream JSON exactly; values are displayed
// as received and never validated locally.
package api

// Solar is one reading of the solar panel subsystem.
type Solar struct {
	Voltage     float64 `json:"voltage"`
	Current     float64 `json:"current"`
	Power       float64 `json:"power"`
	Temperature float64 `json:"temperature"`
	Efficiency  float64 `json:"efficiency"`
}

// Battery is one reading of the battery subsystem.
type Battery struct {
	Voltage     float64 `json:"voltage"`
	Current     float64 `json:"current"`
	Power       float64 `json:"power"`
	Temperature float64 `json:"temperature"`
	Level       float64 `json:"level"`
	Health      float64 `json:"health"`
}

// Grid is one reading of the grid connection.
type Grid struct {
	Voltage     float64 `json:"voltage"`
	Current     float64 `json:"current"`
	Frequency   float64 `json:"frequency"`
	PowerFactor float64 `json:"power_factor"`
}

// SensorSnapshot is one reading of all subsystems at a point in time.
type SensorSnapshot struct {
	Timestamp string  `json:"timestamp"`
	Solar     Solar   `json:"solar"`
	Battery   Battery `json:"battery"`
	Grid      Grid    `json:"grid"`
	Load      float64 `json:"load"`
}

// TotalGeneration is the combined solar and battery output in kW.
func (s *SensorSnapshot) TotalGeneration() float64 {
	return s.Solar.Power + s.Battery.Power
}

// Surplus is generation minus load. Positive means excess generation,
// negative means the load draws more than is generated.
func (s *SensorSnapshot) Surplus() float64 {
	return s.TotalGeneration() - s.Load
}

// ModelInfo reports whether the upstream regressor is loaded.
type ModelInfo struct {
	ModelLoaded bool   `json:"model_loaded"`
	ModelType   string `json:"model_type"`
}

// PredictionRequest is the feature vector posted to /api/predict.
// The upstream model was trained with these capitalized keys.
type PredictionRequest struct {
	Month       int     `json:"Month"`
	Day         int     `json:"Day"`
	DayOfWeek   int     `json:"DayOfWeek"`
	DayOfYear   int     `json:"DayOfYear"`
	Irradiance  float64 `json:"Irradiance_W_m2"`
	Temperature float64 `json:"Temperature_C"`
}

// PredictionResult is the regressor's answer.
type PredictionResult struct {
	Status       string   `json:"status"`
	Prediction   float64  `json:"prediction"`
	FeaturesUsed []string `json:"features_used"`
	Timestamp    string   `json:"timestamp"`
}

// OK reports whether the prediction succeeded upstream.
func (p *PredictionResult) OK() bool {
	return p != nil && p.Status == "success"
}
