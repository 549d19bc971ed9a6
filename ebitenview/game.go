package ebitenview

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/tinsel"
)

// RunConfig controls the window and frame options of Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels.
	Width, Height int
	// ShowHUD draws the mode and FPS overlay.
	ShowHUD bool
	// Script, when non-nil, is stepped once per tick before input.
	Script *tinsel.ScriptRunner
	// ScreenshotDir is where F12 and script screenshots are written.
	// Defaults to "screenshots".
	ScreenshotDir string
	// ClearColor fills the screen before each frame.
	ClearColor color.Color
	// QuitWhenScriptDone ends the run after a non-looping script finishes.
	QuitWhenScriptDone bool
	// OnTick, when set, runs after the engine update of every tick.
	OnTick func(e *tinsel.Engine)
}

// errScriptDone ends the game loop cleanly.
var errScriptDone = errors.New("script done")

// Game adapts a tinsel.Engine to ebiten.Game.
type Game struct {
	engine *tinsel.Engine
	proj   *tinsel.Projection
	view   *View
	input  input
	hud    *hud
	shots  screenshots
	cfg    RunConfig
}

// NewGame creates the ebiten adapter for engine. The engine's store must not
// be rebuilt afterwards since the projection holds buffers sized to it.
func NewGame(engine *tinsel.Engine, cfg RunConfig) *Game {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	if cfg.ClearColor == nil {
		cfg.ClearColor = color.Black
	}

	proj := tinsel.NewProjection(engine)
	g := &Game{
		engine: engine,
		proj:   proj,
		view:   NewView(proj, Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
		shots:  screenshots{dir: cfg.ScreenshotDir},
		cfg:    cfg,
	}
	if cfg.ShowHUD {
		g.hud = newHUD()
	}
	if cfg.Script != nil && cfg.Script.OnScreenshot == nil {
		cfg.Script.OnScreenshot = g.shots.request
	}
	return g
}

// View returns the renderer, for camera adjustments before Run.
func (g *Game) View() *View {
	return g.view
}

// Update advances one fixed tick: script, input, simulation, projection.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if s := g.cfg.Script; s != nil {
		s.Step(g.engine)
		if g.cfg.QuitWhenScriptDone && s.Done() && len(g.shots.queue) == 0 {
			return errScriptDone
		}
	}

	if g.input.process(g.engine, g.view.Camera) {
		g.shots.request("manual")
	}

	g.engine.Update(dt)
	g.proj.Sync()
	if g.cfg.OnTick != nil {
		g.cfg.OnTick(g.engine)
	}
	g.view.Camera.update(float32(dt))
	if g.hud != nil {
		g.hud.update(dt, g.engine)
	}
	return nil
}

// Draw renders the frame and writes any pending screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor)
	g.view.Draw(screen)
	if g.hud != nil {
		g.hud.draw(screen)
	}
	g.shots.flush(screen)
}

// Layout keeps the camera viewport matched to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.Camera.SetViewport(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

// Run opens a window and drives engine until the window closes.
func Run(engine *tinsel.Engine, cfg RunConfig) error {
	g := NewGame(engine, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errScriptDone) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
