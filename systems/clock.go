package systems

import (
	"time"

	"github.com/tasosnikitakis/sorcery-game/components"
	"github.com/yohamta/donburi/ecs"
)

// maxDT rides out window drags and debugger stalls; one long tick must
// not teleport the player through a platform.
const maxDT = 0.25

// UpdateClock produces the per-tick elapsed wall-clock time. Must run
// first in the system order.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)

	now := time.Now()
	if !clock.Started {
		clock.Started = true
		clock.Last = now
		clock.DT = 0
		return
	}

	dt := now.Sub(clock.Last).Seconds()
	clock.Last = now
	if dt > maxDT {
		dt = maxDT
	}
	clock.DT = dt
}
