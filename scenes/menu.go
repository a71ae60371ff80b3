package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	cfg "github.com/tasosnikitakis/sorcery-game/config"
	"github.com/tasosnikitakis/sorcery-game/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene displays the title menu
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldStart  bool
	shouldQuit   bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()

	// Keyboard shortcuts mirror the buttons
	for _, key := range cfg.Input.Bindings[cfg.ActionMenuSelect].Keys {
		if inpututil.IsKeyJustPressed(key) {
			ms.shouldStart = true
		}
	}
	for _, key := range cfg.Input.Bindings[cfg.ActionQuit].Keys {
		if inpututil.IsKeyJustPressed(key) {
			ms.shouldQuit = true
		}
	}

	if ms.shouldStart {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
		return
	}
	if ms.shouldQuit {
		ms.sceneChanger.Quit()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		func() { ms.shouldStart = true },
		func() { ms.shouldQuit = true },
	)
}
