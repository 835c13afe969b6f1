// Package terminal draws floating text into a tcell screen.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"

	"github.com/automoto/combattext/combattext"
	"github.com/automoto/combattext/render"
)

// Renderer implements combattext.Renderer on a character grid. The camera
// works in pixels and CellWidth x CellHeight pixels map to one cell. Glyphs
// have a fixed size, so scale and face are ignored.
type Renderer struct {
	Screen     tcell.Screen
	Camera     render.Projector
	CellWidth  float64
	CellHeight float64
	Background tcell.Color
}

var _ combattext.Renderer = (*Renderer)(nil)

func NewRenderer(screen tcell.Screen, camera render.Projector) *Renderer {
	return &Renderer{
		Screen:     screen,
		Camera:     camera,
		CellWidth:  8,
		CellHeight: 16,
		Background: tcell.ColorBlack,
	}
}

func (r *Renderer) Project(world mgl64.Vec3) (mgl64.Vec2, float64) {
	return r.Camera.Project(world)
}

func (r *Renderer) MeasureText(_ font.Face, s string, _ float64) (float64, float64) {
	return float64(runewidth.StringWidth(s)) * r.CellWidth, r.CellHeight
}

func (r *Renderer) DrawText(pos mgl64.Vec2, s string, _ font.Face, c combattext.LinearColor, _ mgl64.Vec2) {
	col := int(math.Floor(pos.X() / r.CellWidth))
	row := int(math.Floor(pos.Y() / r.CellHeight))
	style := tcell.StyleDefault.Foreground(blend(c)).Background(r.Background)

	for _, ch := range s {
		r.Screen.SetContent(col, row, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

// blend premultiplies the color over a black background.
func blend(c combattext.LinearColor) tcell.Color {
	n := c.NRGBA()
	a := int32(n.A)
	return tcell.NewRGBColor(int32(n.R)*a/255, int32(n.G)*a/255, int32(n.B)*a/255)
}
