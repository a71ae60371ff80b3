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

// UpdateAnimations selects the target clip from this frame's resolved
// velocity and advances the playback cursor. Timing is tick-quantized
// on purpose: it never reads dt, so animation speed is independent of
// frame-rate fluctuations.
func UpdateAnimations(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		anim := components.Animation.Get(e)
		obj := components.Object.Get(e)

		selectAnimation(physics, anim)
		advanceAnimation(anim)
		syncObjectSize(physics, anim, obj.Object)
	})
}

// selectAnimation picks walk_left/walk_right from horizontal velocity;
// idle_front is the catch-all for vertical or zero motion. There is no
// dedicated jump/fall clip in this design.
func selectAnimation(physics *components.PhysicsData, anim *components.AnimationData) {
	threshold := cfg.Player.VelocityThreshold

	target := cfg.IdleFront
	switch {
	case physics.Velocity.X > threshold:
		target = cfg.WalkRight
	case physics.Velocity.X < -threshold:
		target = cfg.WalkLeft
	}

	anim.Set(target)
}

func advanceAnimation(anim *components.AnimationData) {
	frames, ok := anim.CurrentFrames()
	if !ok {
		return
	}

	ticksPerFrame := anim.TicksPerFrame
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	anim.TicksSinceChange++
	if anim.TicksSinceChange >= ticksPerFrame {
		anim.TicksSinceChange = 0
		anim.FrameIndex = (anim.FrameIndex + 1) % len(frames)
	}
}

// syncObjectSize re-centers the bounding rect on its previous center
// when the displayed frame size changes, so a size change between
// frames does not visually jitter the sprite.
func syncObjectSize(physics *components.PhysicsData, anim *components.AnimationData, object *resolv.Object) {
	w, h := anim.FrameSize()
	fw, fh := float64(w), float64(h)
	if object.W == fw && object.H == fh {
		return
	}

	physics.Position.X += (object.W - fw) / 2
	physics.Position.Y += (object.H - fh) / 2

	object.W = fw
	object.H = fh
	object.X = math.Round(physics.Position.X)
	object.Y = math.Round(physics.Position.Y)
	object.Update()
}
