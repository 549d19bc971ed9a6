package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/tinsel"
	"github.com/tanema/gween/ease"
)

const (
	// orbitSpeed is radians of orbit per dragged pixel.
	orbitSpeed = 0.005
	// zoomStep is the eye distance change per wheel notch.
	zoomStep = 2.5
	// zoomDuration is the wheel zoom animation length in seconds.
	zoomDuration = 0.2
)

// input tracks pointer state between frames.
type input struct {
	dragging     bool
	lastX, lastY int
	// zoomGoal accumulates wheel notches while a zoom is animating.
	zoomGoal float64
}

// keyAction is what a pressed key does.
type keyAction int

const (
	actionNone keyAction = iota
	actionToggleMode
	actionScatter
	actionTree
	actionToggleSpin
	actionScreenshot
	actionToggleDebug
)

var keyBindings = map[ebiten.Key]keyAction{
	ebiten.KeySpace:  actionToggleMode,
	ebiten.KeyDigit1: actionScatter,
	ebiten.KeyDigit2: actionTree,
	ebiten.KeyR:      actionToggleSpin,
	ebiten.KeyF12:    actionScreenshot,
	ebiten.KeyD:      actionToggleDebug,
}

// applyAction performs a key action against the engine. It returns true when
// a screenshot was requested.
func applyAction(a keyAction, e *tinsel.Engine) (screenshot bool) {
	ctrl := e.Controller()
	switch a {
	case actionToggleMode:
		ctrl.ToggleMode()
	case actionScatter:
		ctrl.SetMode(tinsel.ModeScattered)
	case actionTree:
		ctrl.SetMode(tinsel.ModeTree)
	case actionToggleSpin:
		ctrl.ToggleRotating()
	case actionToggleDebug:
		e.SetDebugMode(!e.DebugMode())
	case actionScreenshot:
		return true
	}
	return false
}

// process reads edge-triggered keys and pointer motion for this tick.
func (in *input) process(e *tinsel.Engine, cam *Camera) (screenshot bool) {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if applyAction(keyBindings[k], e) {
			screenshot = true
		}
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		in.dragging = true
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		in.dragging = false
	case in.dragging:
		cam.Orbit(float64(x-in.lastX)*orbitSpeed, float64(y-in.lastY)*orbitSpeed)
	}
	in.lastX, in.lastY = x, y

	if _, wy := ebiten.Wheel(); wy != 0 {
		if !cam.IsZooming() {
			in.zoomGoal = cam.Distance
		}
		in.zoomGoal = clampDistance(cam, in.zoomGoal-wy*zoomStep)
		cam.ZoomTo(in.zoomGoal, zoomDuration, ease.OutQuad)
	}
	return screenshot
}

func clampDistance(cam *Camera, d float64) float64 {
	return max(cam.MinDistance, min(cam.MaxDistance, d))
}
