package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/automoto/combattext/archetypes"
	"github.com/automoto/combattext/combattext"
	"github.com/automoto/combattext/components"
	cfg "github.com/automoto/combattext/config"
	"github.com/automoto/combattext/render"
	ebitenrender "github.com/automoto/combattext/render/ebiten"
)

// CreateFloatingText creates the floating text singleton drawing through
// camera. Combat templates are resolved by the names in config.
func CreateFloatingText(ecs *ecs.ECS, reg *combattext.Registry, camera render.Projector, log *zap.Logger) *donburi.Entry {
	if log == nil {
		log = zap.NewNop()
	}
	mgr := combattext.NewManager(reg, log)
	if tag, err := language.Parse(cfg.FloatingText.Language); err == nil {
		mgr.SetLanguage(tag)
	} else {
		log.Warn("Unknown language, using English", zap.String("language", cfg.FloatingText.Language), zap.Error(err))
	}
	mgr.SetSimulation(cfg.Simulation)
	mgr.SetSimulationEnabled(cfg.FloatingText.SimulationOnStart)

	reg = mgr.Registry()
	entry := archetypes.FloatingText.Spawn(ecs)
	components.FloatingText.SetValue(entry, components.FloatingTextData{
		Manager:  mgr,
		Renderer: ebitenrender.NewRenderer(camera),
		Damage:   templateIndex(reg, cfg.FloatingText.DamageTemplate, log),
		Critical: templateIndex(reg, cfg.FloatingText.CriticalTemplate, log),
		Heal:     templateIndex(reg, cfg.FloatingText.HealTemplate, log),
		Miss:     templateIndex(reg, cfg.FloatingText.MissTemplate, log),
	})
	return entry
}

func templateIndex(reg *combattext.Registry, name string, log *zap.Logger) int {
	i, ok := reg.Index(name)
	if !ok {
		log.Warn("Template not found, events using it are skipped", zap.String("template", name))
		return -1
	}
	return i
}
