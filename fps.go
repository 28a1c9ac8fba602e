package kinetic

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsOverlay shows FPS, TPS and scroll position in the screen's top-left
// corner. It is drawn after the page and never scrolls.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 fits three short lines of the debug font.
	return &fpsOverlay{img: ebiten.NewImage(120, 48), since: fpsRefresh}
}

func (o *fpsOverlay) update(dt float64, v *Viewport) {
	o.since += dt
	if o.since < fpsRefresh {
		return
	}
	o.since = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nY: %.0f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), v.ScrollY))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
