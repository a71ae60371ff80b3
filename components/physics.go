package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData carries the authoritative continuous position (top-left
// convention) and the per-frame velocity in pixels per second.
type PhysicsData struct {
	Position Vector
	Velocity Vector

	SpeedPPS   float64
	GravityPPS float64

	// Derived each frame from the vertical collision outcome only.
	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
