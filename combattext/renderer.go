package combattext

import (
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
)

// Renderer is the drawing surface a host hands to DrawAll each frame.
type Renderer interface {
	// Project maps a world point to screen space. A depth of exactly zero
	// means the point cannot be resolved in front of the camera.
	Project(world mgl64.Vec3) (screen mgl64.Vec2, depth float64)

	// MeasureText returns the on-screen size of s drawn with face at scale.
	MeasureText(face font.Face, s string, scale float64) (width, height float64)

	// DrawText draws s with its top-left corner at pos.
	DrawText(pos mgl64.Vec2, s string, face font.Face, c LinearColor, scale mgl64.Vec2)
}
