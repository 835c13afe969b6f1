package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/combattext/archetypes"
	"github.com/automoto/combattext/components"
	cfg "github.com/automoto/combattext/config"
	"github.com/automoto/combattext/render"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	eye := mgl64.Vec3{0, cfg.Camera.Height, cfg.Camera.Distance}
	components.Camera.SetValue(camera, components.CameraData{
		Camera: render.NewPerspectiveCamera(eye, mgl64.Vec3{}, mgl64.DegToRad(cfg.Camera.FovY),
			float64(cfg.C.Width), float64(cfg.C.Height)),
	})
	return camera
}
