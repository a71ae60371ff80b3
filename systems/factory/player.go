package factory

import (
	"log"
	"math"

	"github.com/solarlune/resolv"
	"github.com/tasosnikitakis/sorcery-game/archetypes"
	"github.com/tasosnikitakis/sorcery-game/assets"
	"github.com/tasosnikitakis/sorcery-game/components"
	cfg "github.com/tasosnikitakis/sorcery-game/config"
	"github.com/tasosnikitakis/sorcery-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at (x, y) with clips extracted from
// the spritesheet per the animation table. Clip-level gaps are logged
// and left to the placeholder policy; only the sheet itself is fatal.
func CreatePlayer(ecs *ecs.ECS, sheet *assets.Spritesheet, table map[cfg.AnimationID]assets.AnimationDef, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	frames := make(map[cfg.AnimationID][]assets.Frame, len(table))
	for id, def := range table {
		clip := sheet.ExtractStrip(def.X, def.Y, def.W, def.H, def.Count, def.Spacing, cfg.Player.Scale)
		if len(clip) == 0 {
			log.Printf("no frames loaded for animation %s", id)
		}
		frames[id] = clip
	}
	if len(frames) == 0 {
		log.Printf("player has no animations, placeholder rendering everywhere")
	}

	components.Animation.SetValue(player, components.AnimationData{
		Frames:        frames,
		TicksPerFrame: cfg.Player.TicksPerFrame,
	})
	anim := components.Animation.Get(player)
	anim.Set(cfg.IdleFront)

	components.Physics.SetValue(player, components.PhysicsData{
		Position:   components.Vector{X: x, Y: y},
		SpeedPPS:   cfg.Player.SpeedPPS,
		GravityPPS: cfg.Player.GravityPPS,
	})

	w, h := anim.FrameSize()
	obj := resolv.NewObject(math.Round(x), math.Round(y), float64(w), float64(h), tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(w), float64(h)))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
