package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// PlatformData is pure collision/visual data; platform entities are
// created at world setup and never mutated afterwards.
type PlatformData struct {
	Color color.RGBA
}

var Platform = donburi.NewComponentType[PlatformData]()
