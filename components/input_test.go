package components

import (
	"testing"

	cfg "github.com/tasosnikitakis/sorcery-game/config"
)

func TestJustPressedIsEdgeTriggered(t *testing.T) {
	var input InputData

	input.Current[cfg.ActionQuit] = true
	if !input.JustPressed(cfg.ActionQuit) {
		t.Error("fresh press should register as just pressed")
	}
	if !input.Pressed(cfg.ActionQuit) {
		t.Error("fresh press should register as pressed")
	}

	// Held across frames: pressed, but no longer just pressed.
	input.Previous[cfg.ActionQuit] = true
	if input.JustPressed(cfg.ActionQuit) {
		t.Error("held key must not retrigger")
	}
	if !input.Pressed(cfg.ActionQuit) {
		t.Error("held key should still be pressed")
	}

	// Released: neither.
	input.Current[cfg.ActionQuit] = false
	if input.Pressed(cfg.ActionQuit) || input.JustPressed(cfg.ActionQuit) {
		t.Error("released key should report no state")
	}
}
