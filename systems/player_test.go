package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tasosnikitakis/sorcery-game/components"
	cfg "github.com/tasosnikitakis/sorcery-game/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newPlayerTestWorld(t *testing.T, dt float64) (*ecs.ECS, *components.InputData, *donburi.Entry) {
	t.Helper()

	e, space := newTestECS()
	spawnTestClock(e, dt)
	input := spawnTestInput(e)
	player := spawnTestPlayer(e, space, 100, 100)

	return e, input, player
}

func TestWalkRightIntegratesPosition(t *testing.T) {
	const dt = 1.0 / 60

	e, input, player := newPlayerTestWorld(t, dt)
	physics := components.Physics.Get(player)
	physics.OnGround = true

	input.Current[cfg.ActionMoveRight] = true
	for i := 0; i < 3; i++ {
		UpdatePlayer(e)
	}

	assert.Equal(t, cfg.Player.SpeedPPS, physics.Velocity.X)
	assert.InDelta(t, 100+cfg.Player.SpeedPPS*3*dt, physics.Position.X, 1e-9)

	// Grounded with no vertical input: gravity must not creep in.
	assert.Equal(t, 0.0, physics.Velocity.Y)
	assert.Equal(t, 100.0, physics.Position.Y)
}

func TestOpposedHorizontalInputCancels(t *testing.T) {
	e, input, player := newPlayerTestWorld(t, 1.0/60)
	physics := components.Physics.Get(player)
	physics.OnGround = true

	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionMoveRight] = true
	UpdatePlayer(e)

	assert.Equal(t, 0.0, physics.Velocity.X)
	assert.Equal(t, 100.0, physics.Position.X)
}

func TestGravityAppliesWhenAirborne(t *testing.T) {
	const dt = 0.1

	e, _, player := newPlayerTestWorld(t, dt)
	physics := components.Physics.Get(player)

	UpdatePlayer(e)

	assert.Equal(t, cfg.Player.GravityPPS, physics.Velocity.Y)
	assert.InDelta(t, 100+cfg.Player.GravityPPS*dt, physics.Position.Y, 1e-9)
}

func TestFlyUpOverridesGravity(t *testing.T) {
	const dt = 0.1

	e, input, player := newPlayerTestWorld(t, dt)
	physics := components.Physics.Get(player)
	physics.OnGround = true

	input.Current[cfg.ActionMoveUp] = true
	UpdatePlayer(e)

	assert.Equal(t, -cfg.Player.SpeedPPS, physics.Velocity.Y)
	assert.InDelta(t, 100-cfg.Player.SpeedPPS*dt, physics.Position.Y, 1e-9)
}

func TestFlyDownUsesFlySpeed(t *testing.T) {
	e, input, player := newPlayerTestWorld(t, 0.1)
	physics := components.Physics.Get(player)

	input.Current[cfg.ActionMoveDown] = true
	UpdatePlayer(e)

	// Descent under input is the fly speed, not the gravity speed.
	assert.Equal(t, cfg.Player.SpeedPPS, physics.Velocity.Y)
}

func TestAnimSpeedHotkeyRetunesWithoutCursorReset(t *testing.T) {
	e, input, player := newPlayerTestWorld(t, 1.0/60)
	anim := components.Animation.Get(player)
	anim.FrameIndex = 2

	input.Current[cfg.ActionAnimSpeed3] = true
	UpdatePlayer(e)

	assert.Equal(t, cfg.AnimSpeedPresets[cfg.ActionAnimSpeed3], anim.TicksPerFrame)
	assert.Equal(t, 2, anim.FrameIndex, "retuning must not reset the frame cursor")
}

func TestAnimSpeedHotkeyIsEdgeTriggered(t *testing.T) {
	e, input, player := newPlayerTestWorld(t, 1.0/60)
	anim := components.Animation.Get(player)

	// Key held since the previous frame: no retune.
	input.Current[cfg.ActionAnimSpeed2] = true
	input.Previous[cfg.ActionAnimSpeed2] = true
	UpdatePlayer(e)

	assert.Equal(t, cfg.Player.TicksPerFrame, anim.TicksPerFrame)
}
