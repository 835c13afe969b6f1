package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TargetData is a training dummy standing at Position in world space
type TargetData struct {
	Position mgl64.Vec3
	HitTimer int // frames until the next automatic hit
}

var Target = donburi.NewComponentType[TargetData]()
