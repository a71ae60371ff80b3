package systems

import (
	"log"

	"github.com/tasosnikitakis/sorcery-game/components"
	cfg "github.com/tasosnikitakis/sorcery-game/config"
	"github.com/tasosnikitakis/sorcery-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns input into velocity and integrates the position.
// Collision resolution runs afterwards in UpdateCollisions.
func UpdatePlayer(ecs *ecs.ECS) {
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	dt := components.Clock.Get(clockEntry).DT

	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		anim := components.Animation.Get(e)

		applyMovementInput(input, physics, dt)
		applyAnimSpeedInput(input, anim)
	})
}

func applyMovementInput(input *components.InputData, physics *components.PhysicsData, dt float64) {
	movingLeft := input.Pressed(cfg.ActionMoveLeft)
	movingRight := input.Pressed(cfg.ActionMoveRight)

	// Instantaneous horizontal speed, no acceleration.
	vx := 0.0
	if movingLeft && !movingRight {
		vx = -physics.SpeedPPS
	} else if movingRight && !movingLeft {
		vx = physics.SpeedPPS
	}
	physics.Velocity.X = vx

	// Gravity is a constant target fall speed, not an integrated force;
	// up/down input substitutes a fly speed for this frame.
	up := input.Pressed(cfg.ActionMoveUp)
	down := input.Pressed(cfg.ActionMoveDown)

	vy := physics.GravityPPS
	if up {
		vy = -physics.SpeedPPS
	} else if down {
		vy = physics.SpeedPPS
	}
	if physics.OnGround && !up && !down {
		// Resting on ground: keep gravity from accumulating error.
		vy = 0
	}
	physics.Velocity.Y = vy

	// Single explicit Euler step.
	physics.Position.X += physics.Velocity.X * dt
	physics.Position.Y += physics.Velocity.Y * dt
}

// applyAnimSpeedInput services the runtime animation speed hotkeys.
// Retuning takes effect on the next tick without resetting the frame
// cursor.
func applyAnimSpeedInput(input *components.InputData, anim *components.AnimationData) {
	for action, ticks := range cfg.AnimSpeedPresets {
		if input.JustPressed(action) {
			anim.TicksPerFrame = ticks
			log.Printf("animation speed: %d ticks per frame", ticks)
		}
	}
}
