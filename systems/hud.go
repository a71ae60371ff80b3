package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tasosnikitakis/sorcery-game/components"
	cfg "github.com/tasosnikitakis/sorcery-game/config"
	"github.com/tasosnikitakis/sorcery-game/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawInfoPanel renders the text strip below the game area, in the
// style of the original Sorcery status panel.
func DrawInfoPanel(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.InfoPanel.First(ecs.World)
	if !ok {
		return
	}
	info := components.InfoPanel.Get(entry)

	vector.DrawFilledRect(screen,
		0, float32(cfg.C.InfoPanelY),
		float32(cfg.C.Width), float32(cfg.C.InfoPanelHeight),
		cfg.InfoPanel.Background, false)

	lines := []string{
		fmt.Sprintf("you are %s,", info.Location),
		fmt.Sprintf("carrying %s.", info.Carrying),
		fmt.Sprintf("energy....%d%%", info.Energy),
	}

	face := fonts.Info.Get()
	lineHeight := face.Metrics().Height.Ceil()

	y := cfg.C.InfoPanelY + cfg.InfoPanel.MarginY + lineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, cfg.InfoPanel.MarginX, y, cfg.InfoPanel.TextColor)
		y += lineHeight + cfg.InfoPanel.LineSpacing
	}
}
