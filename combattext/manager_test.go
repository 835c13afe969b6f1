package combattext

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/text/language"
)

func newTestManager(templates ...AnimationTemplate) *Manager {
	return NewManager(NewRegistry(templates...), nil)
}

func texts(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

func TestSpawnStartsAtZeroAge(t *testing.T) {
	m := newTestManager(completeTemplate("damage", 2))
	pos := mgl64.Vec3{1, 2, 3}

	m.Spawn("hit", pos, 0)

	entries := m.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Age != 0 {
		t.Errorf("Expected Age=0, got %f", e.Age)
	}
	if e.StartPoint != pos {
		t.Errorf("Expected StartPoint=%v, got %v", pos, e.StartPoint)
	}
	if e.Text != "hit" || e.TemplateIndex != 0 {
		t.Errorf("Unexpected entry %+v", e)
	}
}

func TestSpawnInvalidTemplateIndexPanics(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"Negative", -1},
		{"EqualToCount", 1},
		{"FarOutOfRange", 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(completeTemplate("damage", 1))
			defer func() {
				if recover() == nil {
					t.Errorf("Spawn with index %d should panic", tt.index)
				}
				if m.Len() != 0 {
					t.Errorf("Expected no entries after failed spawn, got %d", m.Len())
				}
			}()
			m.Spawn("x", mgl64.Vec3{}, tt.index)
		})
	}
}

func TestSpawnNumberFormatting(t *testing.T) {
	tests := []struct {
		name  string
		lang  language.Tag
		value int
		want  string
	}{
		{"Small", language.English, 42, "42"},
		{"Grouped", language.English, 1234567, "1,234,567"},
		{"Negative", language.English, -1500, "-1,500"},
		{"Zero", language.English, 0, "0"},
		{"German", language.German, 1234, "1.234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(completeTemplate("damage", 1))
			m.SetLanguage(tt.lang)
			m.SpawnNumber(tt.value, mgl64.Vec3{}, 0)

			got := m.Entries()[0].Text
			if got != tt.want {
				t.Errorf("SpawnNumber(%d) text = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestAdvanceAgesEveryEntry(t *testing.T) {
	m := newTestManager(completeTemplate("long", 10))
	for _, s := range []string{"a", "b", "c"} {
		m.Spawn(s, mgl64.Vec3{}, 0)
	}

	m.Advance(0.25)

	entries := m.Entries()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Age != 0.25 {
			t.Errorf("Entry %q: expected Age=0.25, got %f", e.Text, e.Age)
		}
	}
}

func TestAdvanceRemovalDoesNotSkipSwappedEntry(t *testing.T) {
	m := newTestManager(
		completeTemplate("long", 10),
		completeTemplate("short", 0.5),
	)
	m.Spawn("a", mgl64.Vec3{}, 0)
	m.Spawn("b", mgl64.Vec3{}, 1)
	m.Spawn("c", mgl64.Vec3{}, 0)

	// Only the middle entry reaches its duration.
	m.Advance(0.5)

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	got := texts(entries)
	if got[0] != "a" || got[1] != "c" {
		t.Errorf("Expected [a c] after swap removal, got %v", got)
	}
	for _, e := range entries {
		if e.Age != 0.5 {
			t.Errorf("Entry %q: expected Age=0.5, got %f", e.Text, e.Age)
		}
	}
}

func TestAdvanceRemovesConsecutiveExpiries(t *testing.T) {
	m := newTestManager(
		completeTemplate("long", 10),
		completeTemplate("short", 1),
	)
	// The last entries expire together; each swap brings in another expired one.
	m.Spawn("keep", mgl64.Vec3{}, 0)
	m.Spawn("x1", mgl64.Vec3{}, 1)
	m.Spawn("x2", mgl64.Vec3{}, 1)
	m.Spawn("x3", mgl64.Vec3{}, 1)

	m.Advance(1)

	entries := m.Entries()
	if len(entries) != 1 || entries[0].Text != "keep" {
		t.Fatalf("Expected only [keep], got %v", texts(entries))
	}
	if entries[0].Age != 1 {
		t.Errorf("Expected Age=1, got %f", entries[0].Age)
	}
}

func TestAdvanceZeroDurationTemplate(t *testing.T) {
	m := newTestManager(completeTemplate("instant", 0))
	m.Spawn("gone", mgl64.Vec3{}, 0)

	m.Advance(0.016)

	if m.Len() != 0 {
		t.Errorf("Expected zero-duration entry to be removed, got %d entries", m.Len())
	}
}

func TestExpiredEntryNeverReappears(t *testing.T) {
	m := newTestManager(completeTemplate("damage", 1))
	m.Spawn("x", mgl64.Vec3{}, 0)

	for i := 0; i < 10; i++ {
		m.Advance(0.3)
	}
	if m.Len() != 0 {
		t.Fatalf("Expected entry to expire, got %d entries", m.Len())
	}

	r := newRecordingRenderer()
	m.DrawAll(r)
	if len(r.draws) != 0 {
		t.Errorf("Expected no draws after expiry, got %d", len(r.draws))
	}
}

func TestLifecycleScenario(t *testing.T) {
	m := newTestManager(completeTemplate("damage", 2.0))
	m.Spawn("100", mgl64.Vec3{}, 0)

	m.Advance(1.0)
	entries := m.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected entry to survive first advance, got %d entries", len(entries))
	}
	if entries[0].Age != 1.0 {
		t.Errorf("Expected Age=1.0, got %f", entries[0].Age)
	}

	r := newRecordingRenderer()
	m.DrawAll(r)
	if len(r.draws) != 2 {
		t.Errorf("Expected shadow and text draws while alive, got %d", len(r.draws))
	}

	m.Advance(1.0)
	if m.Len() != 0 {
		t.Fatalf("Expected entry removed once age reached 2.0, got %d entries", m.Len())
	}

	r = newRecordingRenderer()
	m.DrawAll(r)
	if len(r.draws) != 0 {
		t.Errorf("Expected no draws after removal, got %d", len(r.draws))
	}
}

func TestIncompleteTemplateStillExpires(t *testing.T) {
	tmpl := completeTemplate("broken", 1)
	tmpl.Font = nil
	m := newTestManager(tmpl)
	m.Spawn("x", mgl64.Vec3{}, 0)

	m.Advance(0.5)
	if m.Len() != 1 || m.Entries()[0].Age != 0.5 {
		t.Fatalf("Expected incomplete entry to age normally, got %+v", m.Entries())
	}
	m.Advance(0.5)
	if m.Len() != 0 {
		t.Errorf("Expected incomplete entry to expire, got %d entries", m.Len())
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	m := newTestManager(completeTemplate("damage", 1))
	m.Spawn("x", mgl64.Vec3{}, 0)

	entries := m.Entries()
	entries[0].Age = 99

	if m.Entries()[0].Age != 0 {
		t.Error("Mutating the snapshot should not affect live entries")
	}
}

func TestClear(t *testing.T) {
	m := newTestManager(completeTemplate("damage", 1))
	m.Spawn("a", mgl64.Vec3{}, 0)
	m.Spawn("b", mgl64.Vec3{}, 0)

	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Expected 0 entries after Clear, got %d", m.Len())
	}
	m.Spawn("c", mgl64.Vec3{}, 0)
	if m.Len() != 1 {
		t.Errorf("Expected spawn to work after Clear, got %d entries", m.Len())
	}
}

func TestManagerConcurrentUse(t *testing.T) {
	reg := NewRegistry(completeTemplate("damage", 0.5), completeTemplate("heal", 1))
	managers := []*Manager{NewManager(reg, nil), NewManager(reg, nil)}
	managers[0].SetSimulationEnabled(true)

	var wg sync.WaitGroup
	for _, m := range managers {
		wg.Add(4)
		go func() {
			defer wg.Done()
			for i := range 500 {
				m.Spawn("hit", mgl64.Vec3{float64(i), 0, 1}, i%2)
				m.SpawnNumber(i, mgl64.Vec3{0, float64(i), 1}, 0)
			}
		}()
		go func() {
			defer wg.Done()
			for range 500 {
				m.Advance(0.01)
			}
		}()
		go func() {
			defer wg.Done()
			for range 200 {
				m.DrawAll(newRecordingRenderer())
			}
		}()
		go func() {
			defer wg.Done()
			for i := range 200 {
				_ = m.Len()
				_ = m.Entries()
				if i%50 == 0 {
					m.SetLanguage(language.German)
				}
			}
		}()
	}
	wg.Wait()

	for i, m := range managers {
		for _, e := range m.Entries() {
			if e.Age >= reg.Get(e.TemplateIndex).BaseDuration {
				t.Errorf("Manager %d kept expired entry %+v", i, e)
			}
		}
	}
	managers[1].Advance(1)
	if managers[1].Len() != 0 {
		t.Errorf("Expected every entry to expire, got %d", managers[1].Len())
	}
}
