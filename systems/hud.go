package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/combattext/config"
	"github.com/automoto/combattext/fonts"
)

const (
	hudMargin = 8
	hudHelp   = "H hit all   P pause   C clear   F9 stress test   F3 debug"
)

var hudFace *text.GoXFace

func getHUDFace() *text.GoXFace {
	if hudFace == nil {
		hudFace = text.NewGoXFace(fonts.Small.Get())
	}
	return hudFace
}

// DrawHUD renders the key help line and the pause overlay
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := getHUDFace()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, float64(h)-hudMargin-face.Metrics().HAscent-face.Metrics().HDescent)
	op.ColorScale.ScaleWithColor(cfg.Grey)
	text.Draw(screen, hudHelp, face, op)

	if !GetOrCreateSettings(ecs).Paused {
		return
	}
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.BlackOverlay, false)

	const paused = "PAUSED"
	tw, th := text.Measure(paused, face, 0)
	op = &text.DrawOptions{}
	op.GeoM.Translate((float64(w)-tw)/2, (float64(h)-th)/2)
	op.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, paused, face, op)
}
