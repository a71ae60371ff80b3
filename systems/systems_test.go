package systems

import (
	"github.com/solarlune/resolv"
	"github.com/tasosnikitakis/sorcery-game/archetypes"
	"github.com/tasosnikitakis/sorcery-game/assets"
	"github.com/tasosnikitakis/sorcery-game/components"
	cfg "github.com/tasosnikitakis/sorcery-game/config"
	"github.com/tasosnikitakis/sorcery-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testFrameSize matches the player collision rect used by all tests in
// this package. Frames carry a nil image on purpose: the simulation
// only ever reads sizes.
const testFrameSize = 48

func newTestECS() (*ecs.ECS, *resolv.Space) {
	e := ecs.NewECS(donburi.NewWorld())

	entry := archetypes.Space.Spawn(e)
	space := resolv.NewSpace(cfg.C.GameAreaWidth, cfg.C.GameAreaHeight, cfg.C.TileWidth, cfg.C.TileHeight)
	components.Space.Set(entry, space)

	return e, space
}

func testFrames(count, size int) []assets.Frame {
	frames := make([]assets.Frame, count)
	for i := range frames {
		frames[i] = assets.Frame{Width: size, Height: size}
	}
	return frames
}

func spawnTestPlayer(e *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	entry := archetypes.Player.Spawn(e)

	components.Physics.SetValue(entry, components.PhysicsData{
		Position:   components.Vector{X: x, Y: y},
		SpeedPPS:   cfg.Player.SpeedPPS,
		GravityPPS: cfg.Player.GravityPPS,
	})

	obj := resolv.NewObject(x, y, testFrameSize, testFrameSize, tags.ResolvPlayer)
	space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	components.Animation.SetValue(entry, components.AnimationData{
		Frames: map[cfg.AnimationID][]assets.Frame{
			cfg.WalkLeft:  testFrames(4, testFrameSize),
			cfg.WalkRight: testFrames(4, testFrameSize),
			cfg.IdleFront: testFrames(4, testFrameSize),
		},
		Current:       cfg.IdleFront,
		TicksPerFrame: cfg.Player.TicksPerFrame,
	})

	return entry
}

func addSolid(space *resolv.Space, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	space.Add(obj)
	return obj
}

func spawnTestClock(e *ecs.ECS, dt float64) {
	entry := archetypes.Clock.Spawn(e)
	components.Clock.SetValue(entry, components.ClockData{DT: dt, Started: true})
}

func spawnTestInput(e *ecs.ECS) *components.InputData {
	entry := archetypes.Input.Spawn(e)
	return components.Input.Get(entry)
}
