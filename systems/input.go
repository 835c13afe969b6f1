package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput handles the demo's debug keys
func UpdateInput(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)

	// H hits every target at once
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		HitAllTargets(e)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		settings.Paused = !settings.Paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings.Debug = !settings.Debug
		SaveCurrentSettings(e)
	}

	ft, ok := GetFloatingText(e)
	if !ok {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		ft.Manager.Clear()
	}

	// F9 toggles the stress harness and remembers the choice
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		ft.Manager.SetSimulationEnabled(!ft.Manager.SimulationEnabled())
		SaveCurrentSettings(e)
	}
}
