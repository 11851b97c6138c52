package client

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rakhi930/microgrid-dashboard/pkg/api"
)

const (
	sensorDataEndpoint = "/api/sensor-data"
	modelInfoEndpoint  = "/api/model-info"
	predictEndpoint    = "/api/predict"
)

// The hosted model was trained on irradiance and ambient temperature
// features that the sensor feed does not expose, so fixed values are
// submitted in their place.
const (
	placeholderIrradiance  = 800
	placeholderTemperature = 25
)

// FetchSensorData fetches the current snapshot of all sensor subsystems.
// Repeated calls within the memo window return the previous snapshot
// without a new request.
func (c *Client) FetchSensorData() (*api.SensorSnapshot, error) {
	if v, ok := c.memo.get(sensorDataEndpoint); ok {
		return v.(*api.SensorSnapshot), nil
	}

	body, err := c.send(http.MethodGet, sensorDataEndpoint, nil)
	if err != nil {
		return nil, err
	}

	var snap api.SensorSnapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, wrapUnreachable(err, "failed to unmarshal sensor data")
	}

	c.memo.put(sensorDataEndpoint, &snap)
	return &snap, nil
}

// FetchModelInfo checks whether the upstream regressor is loaded.
func (c *Client) FetchModelInfo() (*api.ModelInfo, error) {
	if v, ok := c.memo.get(modelInfoEndpoint); ok {
		return v.(*api.ModelInfo), nil
	}

	body, err := c.send(http.MethodGet, modelInfoEndpoint, nil)
	if err != nil {
		return nil, err
	}

	var info api.ModelInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, wrapUnreachable(err, "failed to unmarshal model info")
	}

	c.memo.put(modelInfoEndpoint, &info)
	return &info, nil
}

// RequestPrediction asks the model for the next-hour solar forecast.
// Predictions are never memoized.
func (c *Client) RequestPrediction() (*api.PredictionResult, error) {
	payload := NewPredictionRequest(time.Now())

	body, err := c.send(http.MethodPost, predictEndpoint, payload)
	if err != nil {
		return nil, err
	}

	var result api.PredictionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, wrapUnreachable(err, "failed to unmarshal prediction")
	}

	return &result, nil
}

// NewPredictionRequest builds the feature vector for one prediction.
// Calendar features are derived from now; the model numbers weekdays with
// Monday as 0.
func NewPredictionRequest(now time.Time) api.PredictionRequest {
	return api.PredictionRequest{
		Month:       int(now.Month()),
		Day:         now.Day(),
		DayOfWeek:   (int(now.Weekday()) + 6) % 7,
		DayOfYear:   now.YearDay(),
		Irradiance:  placeholderIrradiance,
		Temperature: placeholderTemperature,
	}
}
