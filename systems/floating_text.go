package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/combattext/components"
	cfg "github.com/automoto/combattext/config"
)

// GetFloatingText returns the floating text singleton if the scene has one
func GetFloatingText(e *ecs.ECS) (*components.FloatingTextData, bool) {
	entry, ok := components.FloatingText.First(e.World)
	if !ok {
		return nil, false
	}
	return components.FloatingText.Get(entry), true
}

// UpdateFloatingText advances every floating text by one fixed tick.
// It must run before DrawFloatingText in the same frame.
func UpdateFloatingText(e *ecs.ECS) {
	ft, ok := GetFloatingText(e)
	if !ok {
		return
	}
	ft.Manager.Advance(1 / float64(cfg.C.TPS))
}

func DrawFloatingText(e *ecs.ECS, screen *ebiten.Image) {
	ft, ok := GetFloatingText(e)
	if !ok {
		return
	}
	ft.Renderer.Target = screen
	ft.Manager.DrawAll(ft.Renderer)
}
