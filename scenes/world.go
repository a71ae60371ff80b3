package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tasosnikitakis/sorcery-game/assets"
	"github.com/tasosnikitakis/sorcery-game/components"
	cfg "github.com/tasosnikitakis/sorcery-game/config"
	"github.com/tasosnikitakis/sorcery-game/systems"
	"github.com/tasosnikitakis/sorcery-game/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the playable level
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewWorldScene creates a new world scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if entry, ok := components.Input.First(ws.ecs.World); ok {
		if components.Input.Get(entry).JustPressed(cfg.ActionQuit) {
			ws.sceneChanger.Quit()
		}
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateFade)

	ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawInfoPanel)
	ecs.AddRenderer(cfg.Default, systems.DrawFade)

	ws.ecs = ecs

	factory.CreateClock(ws.ecs)
	factory.CreateSpace(ws.ecs,
		cfg.C.GameAreaWidth,
		cfg.C.GameAreaHeight,
		cfg.C.TileWidth,
		cfg.C.TileHeight,
	)

	level := assets.NewLevelLoader().MustLoadLevel("woods.tmx")
	factory.CreateLevel(ws.ecs, &level)

	for _, def := range level.Platforms {
		factory.CreatePlatform(ws.ecs, def)
	}

	sheet := assets.MustLoadSpritesheet()
	table := assets.MustLoadAnimationTable()
	factory.CreatePlayer(ws.ecs, sheet, table, level.SpawnX, level.SpawnY)

	factory.CreateInfoPanel(ws.ecs)
	factory.CreateFade(ws.ecs, 1.0)
}
