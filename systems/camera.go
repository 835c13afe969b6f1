package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/combattext/components"
	cfg "github.com/automoto/combattext/config"
)

// UpdateCamera orbits the camera around the origin at a fixed speed
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	camera.Angle = math.Mod(camera.Angle+cfg.Camera.OrbitSpeed/float64(cfg.C.TPS), 2*math.Pi)
	eye := mgl64.Vec3{
		math.Sin(camera.Angle) * cfg.Camera.Distance,
		cfg.Camera.Height,
		math.Cos(camera.Angle) * cfg.Camera.Distance,
	}
	camera.Camera.LookAt(eye, mgl64.Vec3{0, 1, 0})
}
