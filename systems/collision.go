package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/tasosnikitakis/sorcery-game/components"
	cfg "github.com/tasosnikitakis/sorcery-game/config"
	"github.com/tasosnikitakis/sorcery-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions corrects the integrated position against the static
// platform set: horizontal pass, then vertical pass, then the world
// boundary clamp. The ordering is deliberate and can catch corners on
// tight platform gaps; see resolveVertical. None of this ever fails:
// every correction is a clamp.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontal(physics, obj.Object)
		resolveVertical(physics, obj.Object)
		clampToBounds(physics, obj.Object)

		// Resync the rect to the fully corrected position for drawing
		// and for the next frame's checks.
		obj.X = math.Round(physics.Position.X)
		obj.Y = math.Round(physics.Position.Y)
		obj.Update()
	})
}

// resolveHorizontal snaps the rect to the integrated x and clamps it
// against every overlapping platform. Corrections apply in sequence;
// with axis-aligned platforms that are never close enough to squeeze
// the player, last-applied wins.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	object.X = math.Round(physics.Position.X)
	object.Update()

	movingRight := physics.Velocity.X > 0
	movingLeft := physics.Velocity.X < 0
	if !movingRight && !movingLeft {
		return
	}

	for _, platform := range overlappingSolids(object) {
		if movingRight {
			physics.Position.X = platform.X - object.W
		} else {
			physics.Position.X = platform.X + platform.W
		}
		physics.Velocity.X = 0

		object.X = physics.Position.X
		object.Update()
	}
}

// resolveVertical snaps the rect to the integrated y and clamps against
// overlapping platforms. OnGround is derived from this pass alone: it
// resets every frame and only a downward clamp (or the floor boundary
// in clampToBounds) sets it.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object) {
	object.Y = math.Round(physics.Position.Y)
	object.Update()

	physics.OnGround = false

	movingDown := physics.Velocity.Y > 0
	movingUp := physics.Velocity.Y < 0
	if !movingDown && !movingUp {
		return
	}

	for _, platform := range overlappingSolids(object) {
		if movingDown {
			physics.Position.Y = platform.Y - object.H
			physics.OnGround = true
		} else {
			physics.Position.Y = platform.Y + platform.H
		}
		physics.Velocity.Y = 0

		object.Y = physics.Position.Y
		object.Update()
	}
}

// clampToBounds keeps the rect inside the playable area. The playable
// height excludes the info panel strip. Bottom contact grounds the
// player; the other edges only cancel outward motion.
func clampToBounds(physics *components.PhysicsData, object *resolv.Object) {
	worldW := float64(cfg.C.GameAreaWidth)
	worldH := float64(cfg.C.GameAreaHeight)

	if physics.Position.X < 0 {
		physics.Position.X = 0
		if physics.Velocity.X < 0 {
			physics.Velocity.X = 0
		}
	} else if physics.Position.X+object.W > worldW {
		physics.Position.X = worldW - object.W
		if physics.Velocity.X > 0 {
			physics.Velocity.X = 0
		}
	}

	if physics.Position.Y < 0 {
		physics.Position.Y = 0
		if physics.Velocity.Y < 0 {
			physics.Velocity.Y = 0
		}
	} else if physics.Position.Y+object.H > worldH {
		physics.Position.Y = worldH - object.H
		physics.OnGround = true
		if physics.Velocity.Y > 0 {
			physics.Velocity.Y = 0
		}
	}
}

// overlappingSolids returns the platforms the object currently
// overlaps. The resolv space narrows the candidates to shared cells;
// the exact AABB test keeps edge-touching rects out (resting on a
// platform is contact, not overlap).
func overlappingSolids(object *resolv.Object) []*resolv.Object {
	check := object.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, solid := range check.Objects {
		if object.X < solid.X+solid.W && object.X+object.W > solid.X &&
			object.Y < solid.Y+solid.H && object.Y+object.H > solid.Y {
			hits = append(hits, solid)
		}
	}
	return hits
}
