package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tasosnikitakis/sorcery-game/components"
	cfg "github.com/tasosnikitakis/sorcery-game/config"
)

func TestClipSelectionFromResolvedVelocity(t *testing.T) {
	tests := []struct {
		name string
		vx   float64
		vy   float64
		want cfg.AnimationID
	}{
		{"walking right", cfg.Player.SpeedPPS, 0, cfg.WalkRight},
		{"walking left", -cfg.Player.SpeedPPS, 0, cfg.WalkLeft},
		{"standing", 0, 0, cfg.IdleFront},
		{"falling", 0, cfg.Player.GravityPPS, cfg.IdleFront},
		{"flying", 0, -cfg.Player.SpeedPPS, cfg.IdleFront},
		{"sub-threshold drift", cfg.Player.VelocityThreshold / 2, 0, cfg.IdleFront},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, space := newTestECS()
			player := spawnTestPlayer(e, space, 100, 100)
			physics := components.Physics.Get(player)
			physics.Velocity.X = tt.vx
			physics.Velocity.Y = tt.vy

			UpdateAnimations(e)

			anim := components.Animation.Get(player)
			assert.Equal(t, tt.want, anim.Current)
		})
	}
}

// Frame advance counts ticks, never dt: N ticks always hold each frame
// exactly TicksPerFrame ticks regardless of the clock.
func TestFrameAdvanceIsTickQuantized(t *testing.T) {
	e, space := newTestECS()
	player := spawnTestPlayer(e, space, 100, 100)
	anim := components.Animation.Get(player)

	ticksPerFrame := anim.TicksPerFrame

	for i := 0; i < ticksPerFrame; i++ {
		UpdateAnimations(e)
	}
	assert.Equal(t, 1, anim.FrameIndex)
	assert.Equal(t, 0, anim.TicksSinceChange)

	for i := 0; i < ticksPerFrame; i++ {
		UpdateAnimations(e)
	}
	assert.Equal(t, 2, anim.FrameIndex)

	// A full cycle over four frames wraps back to the start.
	for i := 0; i < 2*ticksPerFrame; i++ {
		UpdateAnimations(e)
	}
	assert.Equal(t, 0, anim.FrameIndex)
}

func TestClipSwitchResetsCursor(t *testing.T) {
	e, space := newTestECS()
	player := spawnTestPlayer(e, space, 100, 100)
	physics := components.Physics.Get(player)
	anim := components.Animation.Get(player)

	physics.Velocity.X = cfg.Player.SpeedPPS
	UpdateAnimations(e)
	anim.FrameIndex = 2
	anim.TicksSinceChange = 5

	physics.Velocity.X = -cfg.Player.SpeedPPS
	UpdateAnimations(e)

	assert.Equal(t, cfg.WalkLeft, anim.Current)
	assert.Equal(t, 0, anim.FrameIndex, "switching clips restarts playback")
	assert.Equal(t, 1, anim.TicksSinceChange)
}

func TestHoldingClipKeepsCursor(t *testing.T) {
	e, space := newTestECS()
	player := spawnTestPlayer(e, space, 100, 100)
	physics := components.Physics.Get(player)
	anim := components.Animation.Get(player)

	physics.Velocity.X = cfg.Player.SpeedPPS
	UpdateAnimations(e)
	anim.FrameIndex = 2

	UpdateAnimations(e)

	assert.Equal(t, cfg.WalkRight, anim.Current)
	assert.Equal(t, 2, anim.FrameIndex)
}

func TestZeroTicksPerFrameAdvancesEveryTick(t *testing.T) {
	e, space := newTestECS()
	player := spawnTestPlayer(e, space, 100, 100)
	anim := components.Animation.Get(player)
	anim.TicksPerFrame = 0

	UpdateAnimations(e)
	assert.Equal(t, 1, anim.FrameIndex)

	UpdateAnimations(e)
	assert.Equal(t, 2, anim.FrameIndex)
}

// With no usable clip the collision rect falls back to the placeholder
// size and re-centers, so the game keeps running on missing art.
func TestMissingClipFallsBackToPlaceholderGeometry(t *testing.T) {
	e, space := newTestECS()
	player := spawnTestPlayer(e, space, 100, 100)
	anim := components.Animation.Get(player)
	delete(anim.Frames, cfg.IdleFront)

	UpdateAnimations(e)

	obj := components.Object.Get(player)
	placeholder := float64(cfg.Player.PlaceholderSize)
	assert.Equal(t, placeholder, obj.W)
	assert.Equal(t, placeholder, obj.H)

	physics := components.Physics.Get(player)
	assert.Equal(t, 100+(testFrameSize-placeholder)/2, physics.Position.X)
	assert.Equal(t, 100+(testFrameSize-placeholder)/2, physics.Position.Y)
}
