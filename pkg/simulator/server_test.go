package simulator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rakhi930/microgrid-dashboard/pkg/api"
	"github.com/rakhi930/microgrid-dashboard/pkg/client"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	sc := DefaultScenario()
	sc.Seed = 1
	srv := httptest.NewServer(NewServer(sc).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestSensorDataEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/sensor-data")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var snap api.SensorSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Timestamp == "" || snap.Battery.Level == 0 {
		t.Errorf("incomplete snapshot: %+v", snap)
	}
}

func TestModelInfoEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/model-info")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var info api.ModelInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !info.ModelLoaded || info.ModelType != "RandomForestRegressor" {
		t.Errorf("unexpected model info: %+v", info)
	}
}

func TestPredictEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(api.PredictionRequest{
		Month: 6, Day: 5, DayOfWeek: 2, DayOfYear: 157,
		Irradiance: 800, Temperature: 25,
	})
	resp, err := http.Post(srv.URL+"/api/predict", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var result api.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.OK() {
		t.Errorf("Status = %q", result.Status)
	}
	if len(result.FeaturesUsed) != 6 {
		t.Errorf("FeaturesUsed = %v", result.FeaturesUsed)
	}
}

func TestPredictRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/predict", "application/json", strings.NewReader("not json{"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "error" {
		t.Errorf("status field = %v, want error", body["status"])
	}
}

func TestCORSHeadersPresent(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/sensor-data", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

// The dashboard client against the simulator, end to end.
func TestClientAgainstSimulator(t *testing.T) {
	srv := newTestServer(t)

	c := client.NewClient(srv.URL, client.WithTimeout(2*time.Second))

	snap, err := c.FetchSensorData()
	if err != nil {
		t.Fatalf("FetchSensorData: %v", err)
	}
	if snap.Timestamp == "" {
		t.Error("empty snapshot timestamp")
	}

	info, err := c.FetchModelInfo()
	if err != nil {
		t.Fatalf("FetchModelInfo: %v", err)
	}
	if !info.ModelLoaded {
		t.Error("simulator model should report loaded")
	}

	pred, err := c.RequestPrediction()
	if err != nil {
		t.Fatalf("RequestPrediction: %v", err)
	}
	if !pred.OK() {
		t.Errorf("prediction status = %q", pred.Status)
	}
	if pred.Prediction < 0 || pred.Prediction > 100 {
		t.Errorf("prediction %v outside the gauge axis", pred.Prediction)
	}
}
