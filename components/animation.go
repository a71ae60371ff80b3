package components

import (
	"github.com/tasosnikitakis/sorcery-game/assets"
	"github.com/tasosnikitakis/sorcery-game/config"
	"github.com/yohamta/donburi"
)

// AnimationData holds the player's clip table and playback cursor.
// Every registered clip maps to an ordered frame slice; an empty slice
// means "exists but unusable", handled by the same fallback policy as
// a missing clip.
type AnimationData struct {
	Frames map[config.AnimationID][]assets.Frame

	Current          config.AnimationID
	FrameIndex       int
	TicksSinceChange int

	// Runtime-tunable; changing it takes effect on the next tick
	// without resetting FrameIndex.
	TicksPerFrame int
}

// CurrentFrames is the single animation lookup: ok is false when the
// current clip is missing or empty, in which case callers fall back to
// the placeholder image policy.
func (a *AnimationData) CurrentFrames() ([]assets.Frame, bool) {
	frames, found := a.Frames[a.Current]
	if !found || len(frames) == 0 {
		return nil, false
	}
	return frames, true
}

// Set switches the current clip. The frame cursor and tick counter
// reset only when the target differs from the current clip or the
// current clip has no usable frames.
func (a *AnimationData) Set(id config.AnimationID) {
	if a.Current == id {
		if _, ok := a.CurrentFrames(); ok {
			return
		}
	}
	a.Current = id
	a.FrameIndex = 0
	a.TicksSinceChange = 0
}

// CurrentFrame returns the frame under the cursor.
func (a *AnimationData) CurrentFrame() (assets.Frame, bool) {
	frames, ok := a.CurrentFrames()
	if !ok {
		return assets.Frame{}, false
	}
	if a.FrameIndex >= len(frames) {
		// Self-heal a stale cursor rather than fail.
		a.FrameIndex = 0
	}
	return frames[a.FrameIndex], true
}

// FrameSize returns the current frame's pixel size, or the configured
// placeholder size when no usable frames exist. Collision geometry is
// derived from this, so the game keeps running on missing art.
func (a *AnimationData) FrameSize() (int, int) {
	if f, ok := a.CurrentFrame(); ok {
		return f.Width, f.Height
	}
	return config.Player.PlaceholderSize, config.Player.PlaceholderSize
}

var Animation = donburi.NewComponentType[AnimationData]()
