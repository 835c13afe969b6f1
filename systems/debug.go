package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	ft, ok := GetFloatingText(ecs)
	if !ok {
		return
	}
	msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f\ntexts: %d  templates: %d\nsimulation: %v",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		ft.Manager.Len(), ft.Manager.Registry().Count(),
		ft.Manager.SimulationEnabled())
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
