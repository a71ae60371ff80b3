package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tasosnikitakis/sorcery-game/archetypes"
	"github.com/tasosnikitakis/sorcery-game/assets"
	"github.com/tasosnikitakis/sorcery-game/components"
	"github.com/tasosnikitakis/sorcery-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns one immutable platform: a solid-filled sprite
// plus a collision object tagged solid, registered with the space.
func CreatePlatform(ecs *ecs.ECS, def assets.PlatformDef) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(def.X, def.Y, def.Width, def.Height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, def.Width, def.Height))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Platform.SetValue(platform, components.PlatformData{Color: def.Color})

	img := ebiten.NewImage(int(def.Width), int(def.Height))
	img.Fill(def.Color)
	components.Sprite.SetValue(platform, components.SpriteData{Image: img})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return platform
}
