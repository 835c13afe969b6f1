// Package combattext manages floating combat text: short-lived labels such as
// damage numbers that spawn at a world position, animate along the curves of
// an AnimationTemplate and are drawn as screen-space text every frame.
//
// A host calls Advance and then DrawAll once per frame, in that order.
package combattext

import (
	"math/rand/v2"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Drop shadow placement relative to the foreground text.
var (
	ShadowOffset     = mgl64.Vec2{2, -2}
	ShadowAlphaScale = 0.5
)

// Entry is one live floating text.
type Entry struct {
	TemplateIndex int
	Age           float64 // seconds since spawn
	StartPoint    mgl64.Vec3
	Text          string
}

// Manager owns the live floating texts and the template registry they use.
// All methods are safe for concurrent use; a single lock serializes them.
type Manager struct {
	mu       sync.Mutex
	registry *Registry
	entries  []Entry
	printer  *message.Printer
	log      *zap.Logger

	simEnabled bool
	sim        SimulationSettings
	rng        *rand.Rand
}

// NewManager creates a manager drawing templates from reg. A nil logger
// disables logging.
func NewManager(reg *Registry, log *zap.Logger) *Manager {
	if reg == nil {
		reg = NewRegistry()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		registry: reg,
		printer:  message.NewPrinter(language.English),
		log:      log,
		sim:      DefaultSimulationSettings(),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Registry returns the template registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// SetLanguage selects the locale SpawnNumber formats values for.
func (m *Manager) SetLanguage(tag language.Tag) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.printer = message.NewPrinter(tag)
}

// Spawn adds a floating text at worldPos animated by the template at
// templateIndex. An index outside the registry panics.
func (m *Manager) Spawn(text string, worldPos mgl64.Vec3, templateIndex int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spawn(text, worldPos, templateIndex)
}

// SpawnNumber formats value for the manager's locale and spawns it.
func (m *Manager) SpawnNumber(value int, worldPos mgl64.Vec3, templateIndex int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spawn(m.formatNumber(value), worldPos, templateIndex)
}

func (m *Manager) formatNumber(value int) string {
	return m.printer.Sprint(number.Decimal(value))
}

func (m *Manager) spawn(text string, worldPos mgl64.Vec3, templateIndex int) {
	if templateIndex < 0 || templateIndex >= m.registry.Count() {
		m.log.Panic("template index out of range",
			zap.Int("index", templateIndex),
			zap.Int("templates", m.registry.Count()),
			zap.String("text", text))
	}
	m.entries = append(m.entries, Entry{
		TemplateIndex: templateIndex,
		StartPoint:    worldPos,
		Text:          text,
	})
}

// Advance ages every entry by dt seconds. An entry whose age has reached its
// template's BaseDuration is removed and never drawn again. Removal swaps in
// the last entry, reordering the rest.
func (m *Manager) Advance(dt float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := 0; i < len(m.entries); {
		e := &m.entries[i]
		if m.expired(e) {
			// The swapped-in entry lands on i and still needs its visit.
			m.removeAt(i)
			continue
		}
		e.Age += dt
		// Reaching the duration on this tick also ends the entry before the
		// frame's draw.
		if m.expired(e) {
			m.removeAt(i)
			continue
		}
		i++
	}

	if m.simEnabled {
		m.simulate()
	}
}

// removeAt swaps the last entry into i and shrinks the slice.
func (m *Manager) removeAt(i int) {
	last := len(m.entries) - 1
	m.entries[i] = m.entries[last]
	m.entries[last] = Entry{}
	m.entries = m.entries[:last]
}

func (m *Manager) expired(e *Entry) bool {
	return e.Age >= m.registry.Get(e.TemplateIndex).BaseDuration
}

// DrawAll draws every live entry through r.
func (m *Manager) DrawAll(r Renderer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.entries {
		m.draw(&m.entries[i], r)
	}
}

func (m *Manager) draw(e *Entry, r Renderer) {
	tmpl := m.registry.Get(e.TemplateIndex)
	if tmpl.Position == nil {
		return
	}

	worldPos := e.StartPoint.Add(tmpl.Position.VectorAt(e.Age))
	screenPos, depth := r.Project(worldPos)
	// Approximate behind-camera test: only an unresolvable projection is skipped.
	if depth == 0 {
		return
	}

	if tmpl.Color == nil || tmpl.Size == nil || tmpl.Font == nil {
		return
	}

	scale := tmpl.Size.ValueAt(e.Age)
	c := tmpl.Color.ColorAt(e.Age)
	scaleVec := mgl64.Vec2{scale, scale}

	w, h := r.MeasureText(tmpl.Font, e.Text, scale)

	// Pivot at bottom center so the text grows upward from its anchor.
	screenPos[0] -= w / 2
	screenPos[1] -= h

	r.DrawText(screenPos.Add(ShadowOffset), e.Text, tmpl.Font, Black(c.A*ShadowAlphaScale), scaleVec)
	r.DrawText(screenPos, e.Text, tmpl.Font, c, scaleVec)
}

// Len returns the number of live entries.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Entries returns a copy of the live entries in their current order.
func (m *Manager) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Clear drops every live entry.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
	m.entries = m.entries[:0]
}
