package components

import (
	"github.com/yohamta/donburi"
)

// InfoPanelData backs the text strip below the game area.
type InfoPanelData struct {
	Location string
	Carrying string
	Energy   int
}

var InfoPanel = donburi.NewComponentType[InfoPanelData]()
