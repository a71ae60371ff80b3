package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tasosnikitakis/sorcery-game/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade advances the scene fade-in tween. Purely cosmetic.
func UpdateFade(ecs *ecs.ECS) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Done || fade.Tween == nil {
		return
	}

	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	dt := components.Clock.Get(clockEntry).DT

	alpha, finished := fade.Tween.Update(float32(dt))
	fade.Alpha = alpha
	fade.Done = finished
}

func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Done || fade.Alpha <= 0 {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h),
		color.NRGBA{A: uint8(fade.Alpha * 255)}, false)
}
