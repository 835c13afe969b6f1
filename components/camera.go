package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/combattext/render"
)

type CameraData struct {
	Camera *render.PerspectiveCamera
	Angle  float64 // orbit angle around the world origin, radians
}

var Camera = donburi.NewComponentType[CameraData]()
