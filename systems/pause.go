package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/combattext/archetypes"
	"github.com/automoto/combattext/components"
	cfg "github.com/automoto/combattext/config"
)

// GetOrCreateSettings returns the settings singleton, creating it on first use
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.ShowStats,
		})
	}
	return components.Settings.Get(entry)
}

// WithPauseCheck wraps a system so it does not run while the demo is paused
func WithPauseCheck(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if GetOrCreateSettings(e).Paused {
			return
		}
		system(e)
	}
}
