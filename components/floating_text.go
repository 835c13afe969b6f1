package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/combattext/combattext"
	ebitenrender "github.com/automoto/combattext/render/ebiten"
)

// FloatingTextData is a singleton holding the scene's floating text manager
type FloatingTextData struct {
	Manager  *combattext.Manager
	Renderer *ebitenrender.Renderer

	// Template indices for combat events, -1 when the template is missing
	Damage   int
	Critical int
	Heal     int
	Miss     int
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()
