package config

import "image/color"

// The base layout reproduces the original Amstrad CPC Sorcery screen:
// a 320x144 game area with a 56-pixel info panel below it (320x200
// overall), upscaled as a whole by GlobalScale.
const (
	BaseGameAreaWidth   = 320
	BaseGameAreaHeight  = 144
	BaseInfoPanelHeight = 56
	BaseScreenWidth     = BaseGameAreaWidth
	BaseScreenHeight    = BaseGameAreaHeight + BaseInfoPanelHeight

	// The original game lays its 320x144 area out as 40x18 tiles.
	BaseTileWidth  = BaseGameAreaWidth / 40
	BaseTileHeight = BaseGameAreaHeight / 18

	GlobalScale = 3
)

// Config holds the derived window and layout dimensions.
type Config struct {
	Width  int
	Height int

	// The playable area; the info panel strip sits below it.
	GameAreaWidth  int
	GameAreaHeight int

	InfoPanelHeight int
	InfoPanelY      int

	TileWidth  int
	TileHeight int
}

// PlayerConfig contains all player-related configuration values.
type PlayerConfig struct {
	// Movement (pixels per second)
	SpeedPPS   float64
	GravityPPS float64

	// Animation
	TicksPerFrame     int
	VelocityThreshold float64

	// Native (unscaled) sprite dimensions on the sheet
	SpriteWidth  int
	SpriteHeight int
	Scale        float64

	// Fallback sprite size when no animation frames are available
	PlaceholderSize int
}

// InfoPanelConfig contains the info panel text layout.
type InfoPanelConfig struct {
	Background  color.RGBA
	TextColor   color.RGBA
	FontSize    float64
	LineSpacing int
	MarginX     int
	MarginY     int
}

// Global configuration instances, built once in init and treated as
// read-only afterwards.
var C *Config
var Player PlayerConfig
var InfoPanel InfoPanelConfig

// Shared RGBA color constants
var (
	Black   = color.RGBA{A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	SkyBlue = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	Green   = color.RGBA{G: 200, A: 255}
	Grey    = color.RGBA{R: 100, G: 100, B: 100, A: 255}

	// Placeholder tints for missing art. Deliberately loud so a broken
	// animation table is visible without crashing the game.
	PlaceholderRed     = color.RGBA{R: 255, A: 128}         // no animation table at all
	PlaceholderMagenta = color.RGBA{R: 255, B: 255, A: 128} // clip exists but has no frames
	PlaceholderOrange  = color.RGBA{R: 255, G: 165, A: 128} // frame image missing
)

func init() {
	C = &Config{
		Width:  BaseScreenWidth * GlobalScale,
		Height: BaseScreenHeight * GlobalScale,

		GameAreaWidth:  BaseGameAreaWidth * GlobalScale,
		GameAreaHeight: BaseGameAreaHeight * GlobalScale,

		InfoPanelHeight: BaseInfoPanelHeight * GlobalScale,
		InfoPanelY:      BaseGameAreaHeight * GlobalScale,

		TileWidth:  BaseTileWidth * GlobalScale,
		TileHeight: BaseTileHeight * GlobalScale,
	}

	Player = PlayerConfig{
		SpeedPPS:   500,
		GravityPPS: 300,

		TicksPerFrame: 7,
		// Keeps the same perceptual sensitivity at any resolution.
		VelocityThreshold: 0.1 * GlobalScale,

		SpriteWidth:  24,
		SpriteHeight: 24,
		Scale:        GlobalScale,

		PlaceholderSize: 32 * GlobalScale,
	}

	InfoPanel = InfoPanelConfig{
		Background:  color.RGBA{B: 139, A: 255},
		TextColor:   color.RGBA{R: 255, G: 255, A: 255},
		FontSize:    10 * GlobalScale,
		LineSpacing: 2 * GlobalScale,
		MarginX:     5 * GlobalScale,
		MarginY:     5 * GlobalScale,
	}
}
