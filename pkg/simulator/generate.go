package simulator

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rakhi930/microgrid-dashboard/pkg/api"
)

// Generator fabricates sensor snapshots within the scenario's ranges.
// Snapshot is safe for concurrent use; rng must only be touched with mu held.
type Generator struct {
	sc  *Scenario
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(sc *Scenario) *Generator {
	seed := sc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		sc:  sc,
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

func (g *Generator) in(r Range) float64 {
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

// daylight is the solar output fraction at t: a half-sine between 06:00
// and 18:00, zero at night.
func daylight(t time.Time) float64 {
	hour := float64(t.Hour()) + float64(t.Minute())/60
	if hour < 6 || hour > 18 {
		return 0
	}
	return math.Sin(math.Pi * (hour - 6) / 12)
}

// Snapshot fabricates one reading of all subsystems.
func (g *Generator) Snapshot() *api.SensorSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()

	s := &api.SensorSnapshot{
		Timestamp: now.Format("2006-01-02T15:04:05"),
		Load:      round2(g.in(g.sc.Load)),
	}

	// Solar follows the daylight curve with a little jitter.
	solarPower := g.sc.Solar.PeakPower * daylight(now) * (0.85 + 0.2*g.rng.Float64())
	s.Solar.Power = round2(solarPower)
	s.Solar.Voltage = round1(g.in(g.sc.Solar.Voltage))
	if s.Solar.Voltage > 0 {
		s.Solar.Current = round1(solarPower * 1000 / s.Solar.Voltage)
	}
	s.Solar.Temperature = round1(g.in(g.sc.Solar.Temperature))
	s.Solar.Efficiency = math.Round(g.in(g.sc.Solar.Efficiency))

	s.Battery.Power = round2(g.in(g.sc.Battery.Power))
	s.Battery.Voltage = round1(g.in(g.sc.Battery.Voltage))
	if s.Battery.Voltage > 0 {
		s.Battery.Current = round1(s.Battery.Power * 1000 / s.Battery.Voltage)
	}
	s.Battery.Temperature = round1(g.in(g.sc.Battery.Temperature))
	s.Battery.Level = math.Round(g.in(g.sc.Battery.Level))
	s.Battery.Health = math.Round(g.in(g.sc.Battery.Health))

	s.Grid.Voltage = round1(g.in(g.sc.Grid.Voltage))
	s.Grid.Current = round1(g.in(g.sc.Grid.Current))
	s.Grid.Frequency = round2(g.in(g.sc.Grid.Frequency))
	s.Grid.PowerFactor = round2(g.in(g.sc.Grid.PowerFactor))

	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
