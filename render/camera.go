// Package render holds the cameras shared by the floating text backends.
package render

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Projector maps world points to screen space. A zero depth means the point
// is behind the camera.
type Projector interface {
	Project(world mgl64.Vec3) (mgl64.Vec2, float64)
}

// PerspectiveCamera is a pinhole camera looking from Eye at Target.
type PerspectiveCamera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FovY   float64 // radians
	Near   float64
	Far    float64
	Width  float64
	Height float64

	viewProj mgl64.Mat4
	dirty    bool
}

func NewPerspectiveCamera(eye, target mgl64.Vec3, fovY float64, width, height float64) *PerspectiveCamera {
	return &PerspectiveCamera{
		Eye:    eye,
		Target: target,
		Up:     mgl64.Vec3{0, 1, 0},
		FovY:   fovY,
		Near:   0.1,
		Far:    1000,
		Width:  width,
		Height: height,
		dirty:  true,
	}
}

// LookAt moves the camera. The projection is rebuilt on the next Project.
func (c *PerspectiveCamera) LookAt(eye, target mgl64.Vec3) {
	c.Eye, c.Target = eye, target
	c.dirty = true
}

// Resize changes the viewport size in pixels.
func (c *PerspectiveCamera) Resize(width, height float64) {
	c.Width, c.Height = width, height
	c.dirty = true
}

func (c *PerspectiveCamera) matrix() mgl64.Mat4 {
	if c.dirty {
		proj := mgl64.Perspective(c.FovY, c.Width/c.Height, c.Near, c.Far)
		view := mgl64.LookAtV(c.Eye, c.Target, c.Up)
		c.viewProj = proj.Mul4(view)
		c.dirty = false
	}
	return c.viewProj
}

// Project returns the pixel position of world with y growing downwards and
// the view depth of the point. Points closer than the near plane report zero
// depth.
func (c *PerspectiveCamera) Project(world mgl64.Vec3) (mgl64.Vec2, float64) {
	clip := c.matrix().Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= c.Near {
		return mgl64.Vec2{}, 0
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	return mgl64.Vec2{
		(ndcX + 1) / 2 * c.Width,
		(1 - ndcY) / 2 * c.Height,
	}, w
}

// SideCamera is a 2D camera centered on Position. World Y grows upwards,
// world Z is ignored and every point is in front of it. Scale is the number
// of pixels per world unit; zero means one.
type SideCamera struct {
	Position mgl64.Vec2
	Width    float64
	Height   float64
	Scale    float64
}

func (c *SideCamera) Project(world mgl64.Vec3) (mgl64.Vec2, float64) {
	s := c.Scale
	if s == 0 {
		s = 1
	}
	return mgl64.Vec2{
		(world.X()-c.Position.X())*s + c.Width/2,
		(c.Position.Y()-world.Y())*s + c.Height/2,
	}, 1
}
