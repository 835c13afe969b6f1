package factory

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/combattext/archetypes"
	"github.com/automoto/combattext/components"
	cfg "github.com/automoto/combattext/config"
)

const targetHealth = 5000

func CreateTarget(ecs *ecs.ECS, pos mgl64.Vec3, hitDelay int) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)
	components.Target.SetValue(target, components.TargetData{
		Position: pos,
		HitTimer: hitDelay,
	})
	components.Health.SetValue(target, components.HealthData{
		Current: targetHealth,
		Max:     targetHealth,
	})
	return target
}

// CreateTargetRing places count targets evenly on a circle around the origin.
// Their first hits are staggered across one hit interval.
func CreateTargetRing(ecs *ecs.ECS, count int) []*donburi.Entry {
	targets := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		pos := mgl64.Vec3{
			math.Sin(angle) * cfg.Targets.RingRadius,
			0,
			math.Cos(angle) * cfg.Targets.RingRadius,
		}
		delay := cfg.Targets.HitInterval * (i + 1) / count
		targets = append(targets, CreateTarget(ecs, pos, delay))
	}
	return targets
}
