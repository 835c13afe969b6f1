// Package ebiten draws floating text onto an ebiten image.
package ebiten

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"

	"github.com/automoto/combattext/combattext"
	"github.com/automoto/combattext/render"
)

// Renderer implements combattext.Renderer for one ebiten screen. Set Target
// before each DrawAll.
type Renderer struct {
	Target *ebiten.Image
	Camera render.Projector

	faces map[font.Face]*text.GoXFace
}

var _ combattext.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer projecting through camera.
func NewRenderer(camera render.Projector) *Renderer {
	return &Renderer{
		Camera: camera,
		faces:  make(map[font.Face]*text.GoXFace),
	}
}

// face wraps a golang.org/x/image face for text/v2, once per face.
func (r *Renderer) face(f font.Face) *text.GoXFace {
	if gf, ok := r.faces[f]; ok {
		return gf
	}
	gf := text.NewGoXFace(f)
	r.faces[f] = gf
	return gf
}

func (r *Renderer) Project(world mgl64.Vec3) (mgl64.Vec2, float64) {
	return r.Camera.Project(world)
}

func (r *Renderer) MeasureText(f font.Face, s string, scale float64) (float64, float64) {
	w, h := text.Measure(s, r.face(f), 0)
	return w * scale, h * scale
}

func (r *Renderer) DrawText(pos mgl64.Vec2, s string, f font.Face, c combattext.LinearColor, scale mgl64.Vec2) {
	if r.Target == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale.X(), scale.Y())
	op.GeoM.Translate(pos.X(), pos.Y())
	op.ColorScale.ScaleWithColor(c.NRGBA())
	text.Draw(r.Target, s, r.face(f), op)
}
