package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/combattext/components"
	cfg "github.com/automoto/combattext/config"
	"github.com/automoto/combattext/tags"
)

var (
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Health,
	)
	Camera = newArchetype(
		components.Camera,
	)
	FloatingText = newArchetype(
		components.FloatingText,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
