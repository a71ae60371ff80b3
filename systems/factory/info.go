package factory

import (
	"github.com/tasosnikitakis/sorcery-game/archetypes"
	"github.com/tasosnikitakis/sorcery-game/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateInfoPanel(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.InfoPanel.Spawn(ecs)
	components.InfoPanel.SetValue(entry, components.InfoPanelData{
		Location: "in the woods",
		Carrying: "nothing",
		Energy:   99,
	})
	return entry
}
