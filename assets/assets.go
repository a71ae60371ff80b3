package assets

import (
	"embed"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images animations.yaml
	assetFS embed.FS
)

const spritesheetPath = "images/characters.png"

var sheet *Spritesheet

// MustLoadSpritesheet loads and caches the character spritesheet.
// A missing or undecodable sheet is fatal to startup.
func MustLoadSpritesheet() *Spritesheet {
	if sheet != nil {
		return sheet
	}

	s, err := NewSpritesheet(assetFS, spritesheetPath)
	if err != nil {
		panic("failed to load spritesheet " + spritesheetPath + ": " + err.Error())
	}
	sheet = s

	return sheet
}
