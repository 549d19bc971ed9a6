package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/tinsel"
)

// hudRefresh is how often, in seconds, the overlay text is rebuilt.
const hudRefresh = 0.5

// hud is a small text overlay showing mode, spin state and frame rate.
type hud struct {
	img   *ebiten.Image
	text  string
	since float64
}

func newHUD() *hud {
	// 220x80 fits six lines of the debug font.
	return &hud{img: ebiten.NewImage(220, 80), since: hudRefresh}
}

// update rebuilds the overlay every hudRefresh seconds.
func (h *hud) update(dt float64, e *tinsel.Engine) {
	h.since += dt
	if h.since < hudRefresh {
		return
	}
	h.since = 0
	h.text = hudText(e.Controller().Mode(), e.Controller().Rotating(), e.Store().Len(), ebiten.ActualFPS())

	h.img.Clear()
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.text)
}

func (h *hud) draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(8, 8)
	screen.DrawImage(h.img, &op)
}

// hudText formats the overlay lines.
func hudText(mode tinsel.MorphMode, rotating bool, particles int, fps float64) string {
	label := "CHAOS_MODE"
	if mode == tinsel.ModeTree {
		label = "TREE_FORM"
	}
	spin := "off"
	if rotating {
		spin = "on"
	}
	return fmt.Sprintf("%s\nSpin: %s\nParticles: %d\nFPS: %.1f\nSPACE morph  R spin\nF12 shot  drag/wheel",
		label, spin, particles, fps)
}
