package factory

import (
	"github.com/tasosnikitakis/sorcery-game/archetypes"
	"github.com/tasosnikitakis/sorcery-game/assets"
	"github.com/tasosnikitakis/sorcery-game/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry
}
