package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/combattext/combattext"
	"github.com/automoto/combattext/components"
	cfg "github.com/automoto/combattext/config"
	"github.com/automoto/combattext/systems"
	"github.com/automoto/combattext/systems/factory"
)

// DemoScene shows training dummies taking hits under an orbiting camera
type DemoScene struct {
	ecs       *ecs.ECS
	templates *combattext.Registry
	log       *zap.Logger
	once      sync.Once
}

func NewDemoScene(templates *combattext.Registry, log *zap.Logger) *DemoScene {
	return &DemoScene{templates: templates, log: log}
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DemoScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)

	// Floating text must advance before it is drawn each frame
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateTargets))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCombat))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateFloatingText))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawTargets)
	ecs.AddRenderer(cfg.Default, systems.DrawFloatingText)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ds.ecs = ecs

	camera := factory.CreateCamera(ds.ecs)
	factory.CreateFloatingText(ds.ecs, ds.templates, components.Camera.Get(camera).Camera, ds.log)
	factory.CreateTargetRing(ds.ecs, cfg.Targets.Count)
	systems.GetOrCreateSettings(ds.ecs)
}
