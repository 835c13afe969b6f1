package combattext

import (
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var testFace font.Face = basicfont.Face7x13

type drawCall struct {
	Pos   mgl64.Vec2
	Text  string
	Face  font.Face
	Color LinearColor
	Scale mgl64.Vec2
}

// recordingRenderer projects by dropping Z and records every draw.
type recordingRenderer struct {
	depth    float64
	width    float64
	height   float64
	projects []mgl64.Vec3
	measures []string
	draws    []drawCall
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{depth: 1, width: 40, height: 10}
}

func (r *recordingRenderer) Project(world mgl64.Vec3) (mgl64.Vec2, float64) {
	r.projects = append(r.projects, world)
	return mgl64.Vec2{world.X(), world.Y()}, r.depth
}

func (r *recordingRenderer) MeasureText(face font.Face, s string, scale float64) (float64, float64) {
	r.measures = append(r.measures, s)
	return r.width * scale, r.height * scale
}

func (r *recordingRenderer) DrawText(pos mgl64.Vec2, s string, face font.Face, c LinearColor, scale mgl64.Vec2) {
	r.draws = append(r.draws, drawCall{Pos: pos, Text: s, Face: face, Color: c, Scale: scale})
}

func constVector(v mgl64.Vec3) VectorCurve {
	return VectorCurveFunc(func(float64) mgl64.Vec3 { return v })
}

func constColor(c LinearColor) ColorCurve {
	return ColorCurveFunc(func(float64) LinearColor { return c })
}

func constScalar(v float64) ScalarCurve {
	return ScalarCurveFunc(func(float64) float64 { return v })
}

func completeTemplate(name string, duration float64) AnimationTemplate {
	return AnimationTemplate{
		Name:         name,
		Position:     constVector(mgl64.Vec3{}),
		Color:        constColor(LinearColor{R: 1, G: 1, B: 1, A: 1}),
		Size:         constScalar(1),
		Font:         testFace,
		BaseDuration: duration,
	}
}
