package main

import (
	"log"

	"github.com/automoto/trapschool/assets"
	"github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/fonts"
	"github.com/automoto/trapschool/scenery"
	"github.com/automoto/trapschool/scenes"
	"github.com/automoto/trapschool/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() (*Game, error) {
	fonts.LoadDefaults()

	// The gradient falls back to flat bands without the shader
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	site, err := content.Default()
	if err != nil {
		return nil, err
	}
	stages := scenery.MustLoadBuiltin()

	// Preload sounds to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	start := content.PageID(config.Debug.StartPage)
	if _, ok := site.Page(start); !ok {
		log.Printf("Warning: Unknown start page %q, showing %q", start, content.PageHome)
		start = content.PageHome
	}

	g := &Game{}
	g.scene = scenes.NewPageScene(g, site, stages, start)
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the page reflows on resize.
func (g *Game) Layout(width, height int) (int, int) {
	config.C.Width = max(width, config.C.MinWidth)
	config.C.Height = max(height, config.C.MinHeight)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowTitle("Trap School")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowSizeLimits(config.C.MinWidth, config.C.MinHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to load site content: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
