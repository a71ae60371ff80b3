package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/tasosnikitakis/sorcery-game/archetypes"
	"github.com/tasosnikitakis/sorcery-game/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFade spawns the scene fade-in overlay tween.
func CreateFade(ecs *ecs.ECS, duration float32) *donburi.Entry {
	entry := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(entry, components.FadeData{
		Tween: gween.New(1, 0, duration, ease.Linear),
		Alpha: 1,
	})
	return entry
}
