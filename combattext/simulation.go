package combattext

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// SimulationSettings configures the debug stress generator. While the
// simulation is enabled every Advance spawns NewElementsInTick random numbers
// inside the MinPosition/MaxPosition box.
type SimulationSettings struct {
	NumberRange       [2]int     `json:"numberRange"` // inclusive
	MinPosition       mgl64.Vec3 `json:"minPosition"`
	MaxPosition       mgl64.Vec3 `json:"maxPosition"`
	NewElementsInTick int        `json:"newElementsInTick"`
}

func DefaultSimulationSettings() SimulationSettings {
	return SimulationSettings{
		NumberRange:       [2]int{1, 9999},
		MinPosition:       mgl64.Vec3{-100, -100, -100},
		MaxPosition:       mgl64.Vec3{100, 100, 100},
		NewElementsInTick: 10,
	}
}

// SetSimulationEnabled turns the stress generator on or off.
func (m *Manager) SetSimulationEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simEnabled == enabled {
		return
	}
	m.simEnabled = enabled
	m.log.Info("floating text simulation toggled",
		zap.Bool("enabled", enabled),
		zap.Int("perTick", m.sim.NewElementsInTick))
}

func (m *Manager) SimulationEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.simEnabled
}

// SetSimulation replaces the stress generator settings.
func (m *Manager) SetSimulation(s SimulationSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sim = s
}

func (m *Manager) Simulation() SimulationSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sim
}

// SetRand replaces the random source used by the simulation.
func (m *Manager) SetRand(r *rand.Rand) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rng = r
}

func (m *Manager) simulate() {
	count := m.registry.Count()
	if count == 0 {
		return
	}
	lo, hi := m.sim.NumberRange[0], m.sim.NumberRange[1]
	if hi < lo {
		lo, hi = hi, lo
	}
	for range m.sim.NewElementsInTick {
		value := m.randomNumber(lo, hi)
		var pos mgl64.Vec3
		for axis := range pos {
			a, b := m.sim.MinPosition[axis], m.sim.MaxPosition[axis]
			pos[axis] = a + m.rng.Float64()*(b-a)
		}
		m.spawn(m.formatNumber(value), pos, m.rng.IntN(count))
	}
}

// randomNumber returns a value in [lo, hi]. The span is computed in uint64 so
// ranges wider than MaxInt do not overflow.
func (m *Manager) randomNumber(lo, hi int) int {
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return int(m.rng.Uint64())
	}
	return lo + int(m.rng.Uint64N(span))
}
