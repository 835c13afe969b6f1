package systems

import (
	"image/color"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/combattext/components"
	cfg "github.com/automoto/combattext/config"
	"github.com/automoto/combattext/tags"
)

const (
	healthBarWidth  = 36
	healthBarHeight = 4
	healthBarRise   = 1.3 // world units above the target's feet
)

var hitRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

// UpdateTargets counts down each target's hit timer and queues a random hit
// when it expires.
func UpdateTargets(ecs *ecs.ECS) {
	var due []*donburi.Entry
	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		target := components.Target.Get(e)
		target.HitTimer--
		if target.HitTimer > 0 {
			return
		}
		target.HitTimer = cfg.Targets.HitInterval
		due = append(due, e)
	})
	for _, e := range due {
		QueueHit(e, RollHit(hitRand))
	}
}

// HitAllTargets queues a random hit on every target.
func HitAllTargets(ecs *ecs.ECS) {
	var all []*donburi.Entry
	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		all = append(all, e)
	})
	for _, e := range all {
		QueueHit(e, RollHit(hitRand))
	}
}

// DrawTargets renders each target as a marker with its health bar while visible
func DrawTargets(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry).Camera

	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		target := components.Target.Get(e)
		pos, depth := camera.Project(target.Position)
		if depth == 0 {
			return
		}
		vector.FillCircle(screen, float32(pos.X()), float32(pos.Y()), cfg.Targets.Radius, cfg.LightRed, true)

		if !e.HasComponent(components.HealthBar) {
			return
		}
		top, depth := camera.Project(target.Position.Add(mgl64.Vec3{0, healthBarRise, 0}))
		if depth == 0 {
			return
		}
		x := float32(top.X()) - healthBarWidth/2
		y := float32(top.Y())
		ratio := float32(components.Health.Get(e).Ratio())

		// Background (dark gray)
		vector.FillRect(screen, x, y, healthBarWidth, healthBarHeight, color.RGBA{40, 40, 40, 255}, false)
		// Current HP (green)
		vector.FillRect(screen, x, y, healthBarWidth*ratio, healthBarHeight, color.RGBA{0, 200, 60, 255}, false)
	})
}
