package systems

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tasosnikitakis/sorcery-game/components"
	cfg "github.com/tasosnikitakis/sorcery-game/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawBackdrop fills the playable area with the sky color.
func DrawBackdrop(ecs *ecs.ECS, screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.GameAreaWidth), float32(cfg.C.GameAreaHeight),
		cfg.SkyBlue, false)
}

// DrawSprites renders static sprite entities (platforms) at their
// collision rect positions.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}
		obj := components.Object.Get(e)

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(obj.X, obj.Y)
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// lastFallbackCause throttles the missing-art diagnostic to one log
// line per distinct cause.
var lastFallbackCause string

// DrawAnimated renders animated entities at their corrected positions.
// Missing art never crashes the game: the centralized fallback policy
// substitutes a loud flat-colored rect and logs a diagnostic.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		obj := components.Object.Get(e)

		frame, ok := anim.CurrentFrame()
		if !ok || frame.Image == nil {
			drawPlaceholder(anim, obj.X, obj.Y, screen)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(obj.X, obj.Y)
		screen.DrawImage(frame.Image, drawOp)
	})
}

func drawPlaceholder(anim *components.AnimationData, x, y float64, screen *ebiten.Image) {
	var cause string
	var tint color.RGBA
	switch {
	case len(anim.Frames) == 0:
		cause = "no animations loaded"
		tint = cfg.PlaceholderRed
	default:
		if _, ok := anim.CurrentFrames(); !ok {
			cause = "animation " + anim.Current.String() + " has no frames"
			tint = cfg.PlaceholderMagenta
		} else {
			cause = "animation " + anim.Current.String() + " frame image missing"
			tint = cfg.PlaceholderOrange
		}
	}

	if cause != lastFallbackCause {
		lastFallbackCause = cause
		log.Printf("rendering placeholder: %s", cause)
	}

	w, h := anim.FrameSize()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), tint, false)
}
