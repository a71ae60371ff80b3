package assets

import (
	"fmt"
	"log"

	"github.com/tasosnikitakis/sorcery-game/config"
	"gopkg.in/yaml.v3"
)

// AnimationDef describes where a clip's frames live on the spritesheet.
type AnimationDef struct {
	X       int `yaml:"x"`
	Y       int `yaml:"y"`
	W       int `yaml:"w"`
	H       int `yaml:"h"`
	Count   int `yaml:"count"`
	Spacing int `yaml:"spacing"`
}

const animationTablePath = "animations.yaml"

// LoadAnimationTable parses the embedded animation definition table.
// Unknown clip names are logged and skipped; a zero-count clip is kept
// so a later lookup finds "exists but empty" rather than "missing".
func LoadAnimationTable() (map[config.AnimationID]AnimationDef, error) {
	raw, err := assetFS.ReadFile(animationTablePath)
	if err != nil {
		return nil, fmt.Errorf("read animation table: %w", err)
	}

	byName := map[string]AnimationDef{}
	if err := yaml.Unmarshal(raw, &byName); err != nil {
		return nil, fmt.Errorf("parse animation table: %w", err)
	}

	table := make(map[config.AnimationID]AnimationDef, len(byName))
	for name, def := range byName {
		id := config.AnimationIDByName(name)
		if id == config.AnimNone {
			log.Printf("animation table: unknown clip %q, skipping", name)
			continue
		}
		if def.Count == 0 {
			log.Printf("animation table: clip %q has no frames", name)
		}
		table[id] = def
	}

	if len(table) == 0 {
		log.Printf("animation table: no usable clips loaded")
	}

	return table, nil
}

// MustLoadAnimationTable is the startup path: a missing or malformed
// table file is fatal; clip-level gaps are not.
func MustLoadAnimationTable() map[config.AnimationID]AnimationDef {
	table, err := LoadAnimationTable()
	if err != nil {
		panic("failed to load animation table: " + err.Error())
	}
	return table
}
