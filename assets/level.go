package assets

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/lafriks/go-tiled"
	"github.com/tasosnikitakis/sorcery-game/config"
)

// PlatformDef is one static platform rectangle from the level map.
type PlatformDef struct {
	X, Y, Width, Height float64
	Color               color.RGBA
}

// Level holds the static world data parsed from a TMX map.
type Level struct {
	Name      string
	Width     int
	Height    int
	Platforms []PlatformDef
	SpawnX    float64
	SpawnY    float64
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevel parses the named map under levels/. Failure is fatal to
// startup; there is no partial-game fallback.
func (l *LevelLoader) MustLoadLevel(name string) Level {
	levelPath := filepath.Join("levels", name)
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		panic(fmt.Sprintf("failed to load level %s: %v", levelPath, err))
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,

		// Default spawn if the map defines none.
		SpawnX: float64(config.C.GameAreaWidth) / 3,
		SpawnY: float64(config.C.GameAreaHeight - config.C.TileHeight*3),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, PlatformDef{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Color:  parseHexColor(o.Properties.GetString("color")),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.SpawnX = o.X
				level.SpawnY = o.Y
			}
		}
	}

	return level
}

// parseHexColor reads a "#rrggbb" property value. The platform default
// is white, matching the original platform sprite fill.
func parseHexColor(s string) color.RGBA {
	c := config.White
	if len(s) != 7 || s[0] != '#' {
		return c
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return c
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
