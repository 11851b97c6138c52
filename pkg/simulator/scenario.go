// Package simulator runs a local stand-in for the hosted microgrid API,
// fabricating sensor readings and serving a deterministic regressor with
// the exact HTTP contract the dashboard consumes.
package simulator

import (
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Range bounds a fabricated reading.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type SolarScenario struct {
	Voltage     Range   `yaml:"voltage"`
	PeakPower   float64 `yaml:"peak_power"`
	Temperature Range   `yaml:"temperature"`
	Efficiency  Range   `yaml:"efficiency"`
}

type BatteryScenario struct {
	Voltage     Range `yaml:"voltage"`
	Power       Range `yaml:"power"`
	Temperature Range `yaml:"temperature"`
	Level       Range `yaml:"level"`
	Health      Range `yaml:"health"`
}

type GridScenario struct {
	Voltage     Range `yaml:"voltage"`
	Current     Range `yaml:"current"`
	Frequency   Range `yaml:"frequency"`
	PowerFactor Range `yaml:"power_factor"`
}

// Scenario configures the simulated site. Absent fields fall back to
// defaults, so a partial file is fine.
type Scenario struct {
	Listen    string `yaml:"listen"`
	ModelType string `yaml:"model_type"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`

	Solar   SolarScenario   `yaml:"solar"`
	Battery BatteryScenario `yaml:"battery"`
	Grid    GridScenario    `yaml:"grid"`
	Load    Range           `yaml:"load"`
}

// DefaultScenario is a plausible residential microgrid.
func DefaultScenario() *Scenario {
	s := &Scenario{}
	s.applyDefaults()
	return s
}

// LoadScenario reads a scenario YAML file. An empty path returns the
// defaults.
func LoadScenario(path string) (*Scenario, error) {
	if path == "" {
		return DefaultScenario(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read scenario file %s", path)
	}

	s := &Scenario{}
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to parse scenario file %s", path)
	}
	s.applyDefaults()

	return s, nil
}

func (r *Range) applyDefaults(min, max float64) {
	if r.Min == 0 && r.Max == 0 {
		r.Min, r.Max = min, max
	}
}

func (s *Scenario) applyDefaults() {
	if s.Listen == "" {
		s.Listen = ":8500"
	}
	if s.ModelType == "" {
		s.ModelType = "RandomForestRegressor"
	}

	s.Solar.Voltage.applyDefaults(44, 52)
	if s.Solar.PeakPower == 0 {
		s.Solar.PeakPower = 5.0
	}
	s.Solar.Temperature.applyDefaults(25, 55)
	s.Solar.Efficiency.applyDefaults(70, 95)

	s.Battery.Voltage.applyDefaults(48, 54)
	s.Battery.Power.applyDefaults(-1.5, 2.5)
	s.Battery.Temperature.applyDefaults(20, 35)
	s.Battery.Level.applyDefaults(20, 100)
	s.Battery.Health.applyDefaults(85, 100)

	s.Grid.Voltage.applyDefaults(216, 244)
	s.Grid.Current.applyDefaults(5, 20)
	s.Grid.Frequency.applyDefaults(49.8, 50.2)
	s.Grid.PowerFactor.applyDefaults(0.9, 1.0)

	s.Load.applyDefaults(1, 8)
}
