package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionQuit
	ActionAnimSpeed1
	ActionAnimSpeed2
	ActionAnimSpeed3
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

// Ticks-per-frame values reachable from the animation speed hotkeys.
var AnimSpeedPresets = map[ActionID]int{
	ActionAnimSpeed1: 7,
	ActionAnimSpeed2: 8,
	ActionAnimSpeed3: 6,
}

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionAnimSpeed1: {
				Keys: []ebiten.Key{ebiten.KeyDigit1},
			},
			ActionAnimSpeed2: {
				Keys: []ebiten.Key{ebiten.KeyDigit2},
			},
			ActionAnimSpeed3: {
				Keys: []ebiten.Key{ebiten.KeyDigit3},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
		},
	}
}
