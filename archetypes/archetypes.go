package archetypes

import (
	"github.com/tasosnikitakis/sorcery-game/components"
	cfg "github.com/tasosnikitakis/sorcery-game/config"
	"github.com/tasosnikitakis/sorcery-game/tags"
	"github.com/yohamta/donburi"
	ecslib "github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Physics,
		components.Object,
		components.Animation,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	InfoPanel = newArchetype(
		components.InfoPanel,
	)
	Input = newArchetype(
		components.Input,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Fade = newArchetype(
		components.Fade,
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

func (a *archetype) Spawn(ecs *ecslib.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
