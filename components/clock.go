package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the per-tick elapsed time source. DT feeds position
// integration only; animation timing counts ticks, never DT.
type ClockData struct {
	Last    time.Time
	DT      float64
	Started bool
}

var Clock = donburi.NewComponentType[ClockData]()
