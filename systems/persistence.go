package systems

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/combattext/combattext"
	cfg "github.com/automoto/combattext/config"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Language          string                        `json:"language"`
	Debug             bool                          `json:"debug"`
	SimulationEnabled bool                          `json:"simulationEnabled"`
	Simulation        combattext.SimulationSettings `json:"simulation"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open persistence: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error when
// persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CurrentSettings snapshots the scene's settings and floating text state
func CurrentSettings(e *ecs.ECS) *SavedSettings {
	saved := &SavedSettings{
		Language:          cfg.FloatingText.Language,
		Debug:             GetOrCreateSettings(e).Debug,
		SimulationEnabled: cfg.FloatingText.SimulationOnStart,
		Simulation:        cfg.Simulation,
	}
	if ft, ok := GetFloatingText(e); ok {
		saved.SimulationEnabled = ft.Manager.SimulationEnabled()
		saved.Simulation = ft.Manager.Simulation()
	}
	return saved
}

// SaveCurrentSettings saves the current scene settings, logging failures
func SaveCurrentSettings(e *ecs.ECS) {
	if err := SaveSettings(CurrentSettings(e)); err != nil {
		logger.Warn("Could not save settings", zap.Error(err))
	}
}

// ApplySavedSettingsGlobal copies saved settings into config so the first
// scene starts from them
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.Language != "" {
		cfg.FloatingText.Language = saved.Language
	}
	cfg.Debug.ShowStats = saved.Debug
	cfg.FloatingText.SimulationOnStart = saved.SimulationEnabled
	if saved.Simulation.NewElementsInTick > 0 {
		cfg.Simulation = saved.Simulation
	}
}
