package kinetic

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the update rate; zero keeps ebiten's default of 60.
	TPS int
	// ShowFPS draws a small FPS/TPS overlay.
	ShowFPS bool
	// OnResize runs after the viewport follows a window resize.
	OnResize func(w, h float64)
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene    *Scene
	fps      *fpsOverlay
	onResize func(w, h float64)
}

func (g *gameShell) Update() error {
	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.fps != nil {
		g.fps.update(1/float64(ebiten.TPS()), g.scene.viewport)
	}
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout keeps the page at the window size and resizes the viewport to
// match, so a window resize re-samples every observer.
func (g *gameShell) Layout(outsideW, outsideH int) (int, int) {
	v := g.scene.viewport
	if float64(outsideW) != v.Screen.Width || float64(outsideH) != v.Screen.Height {
		v.Resize(float64(outsideW), float64(outsideH))
		g.scene.root.SetSize(float64(outsideW), g.scene.root.Height)
		if g.onResize != nil {
			g.onResize(float64(outsideW), float64(outsideH))
		}
	}
	return outsideW, outsideH
}

// Run opens a resizable window and runs the scene until the window closes
// or the update function returns an error.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1024
	}
	if cfg.Height <= 0 {
		cfg.Height = 768
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	g := &gameShell{scene: s, onResize: cfg.OnResize}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	s.logger.Info("window open",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("tps", ebiten.TPS()))
	return ebiten.RunGame(g)
}
