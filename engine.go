package tinsel

import (
	"math"
	"time"
)

// Engine advances the particle store once per frame. It is not safe for
// concurrent use: call Update and then Projection.Sync from the frame thread.
// Only the Controller may be written from other goroutines.
type Engine struct {
	cfg   Config
	store *Store
	ctrl  *Controller
	spin  spin

	// Noise phases in radians, wrapped to [0, 2π) so long sessions keep
	// full float precision.
	needlePhase float64
	bobPhase    float64

	elapsed float64
	frames  uint64

	debug bool
	stats debugStats
}

// NewEngine builds a particle store from cfg and returns an engine driving
// it. A nil ctrl gets a fresh NewController.
func NewEngine(cfg Config, ctrl *Controller) (*Engine, error) {
	store, err := NewStore(cfg)
	if err != nil {
		return nil, err
	}
	if ctrl == nil {
		ctrl = NewController()
	}
	return &Engine{
		cfg:   cfg,
		store: store,
		ctrl:  ctrl,
		spin:  newSpin(cfg.SpinSpeed, cfg.SpinRamp),
	}, nil
}

// Store returns the particle store.
func (e *Engine) Store() *Store {
	return e.store
}

// Controller returns the mode controller the engine reads from.
func (e *Engine) Controller() *Controller {
	return e.ctrl
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Elapsed returns the total simulated time in seconds.
func (e *Engine) Elapsed() float64 {
	return e.elapsed
}

// Frames returns the number of Update calls so far.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Yaw returns the current rotation of the whole cloud about the Y axis.
func (e *Engine) Yaw() float64 {
	return e.spin.angle
}

// SpinRate returns the current yaw rate in rad/s.
func (e *Engine) SpinRate() float64 {
	return e.spin.rate
}

// Reset returns every particle to its scatter target and rewinds clocks.
// The controller state is left untouched.
func (e *Engine) Reset() {
	e.store.Reset()
	e.spin = newSpin(e.cfg.SpinSpeed, e.cfg.SpinRamp)
	e.needlePhase = 0
	e.bobPhase = 0
	e.elapsed = 0
	e.frames = 0
}

// SmoothingFactor returns the fraction of the remaining distance closed in
// dt seconds: 1 - decayBase^(dt*rate), clamped to [0, 1].
func SmoothingFactor(decayBase, dt, rate float64) float64 {
	return clamp01(1 - math.Pow(decayBase, dt*rate))
}

// Update advances the simulation by dt seconds. Negative or non-finite dt is
// treated as 0.
func (e *Engine) Update(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}

	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	mode := e.ctrl.Mode()
	rotating := e.ctrl.Rotating()

	e.needlePhase = wrapAngle(e.needlePhase + dt*e.cfg.NeedleNoise.Frequency)
	e.bobPhase = wrapAngle(e.bobPhase + dt*e.cfg.DecorationBob.Frequency)

	e.updateNeedles(dt, mode)
	e.updateDecorations(dt, mode)
	e.spin.update(dt, rotating)

	e.elapsed += dt
	e.frames++

	if e.debug {
		e.stats = debugStats{
			updateTime: time.Since(t0),
			particles:  e.store.Len(),
			mode:       mode,
		}
	}
}

func (e *Engine) updateNeedles(dt float64, mode MorphMode) {
	alpha := SmoothingFactor(e.cfg.DecayBase, dt, e.cfg.NeedleRate)
	amp := e.cfg.NeedleNoise.Amplitude
	spread := 1.0
	if mode == ModeScattered {
		spread = e.cfg.ScatterNoiseScale
	}

	needles := e.store.needles
	for i := range needles {
		p := &needles[i]
		p.Current = approach(p.Current, p.Target(mode), alpha)

		n := math.Sin(e.needlePhase+float64(p.ID)) * amp
		p.Offset = Vec3{n * spread, n, n * spread}
	}
}

func (e *Engine) updateDecorations(dt float64, mode MorphMode) {
	alpha := SmoothingFactor(e.cfg.DecayBase, dt, e.cfg.DecorationRate)
	amp := e.cfg.DecorationBob.Amplitude

	decorations := e.store.decorations
	for i := range decorations {
		p := &decorations[i]
		p.Current = approach(p.Current, p.Target(mode), alpha)

		p.Offset = Vec3{0, math.Sin(e.bobPhase+float64(p.ID)) * amp, 0}

		p.Phase = Vec3{
			wrapAngle(p.Phase[0] + p.Spin[0]*dt),
			wrapAngle(p.Phase[1] + p.Spin[1]*dt),
			wrapAngle(p.Phase[2] + p.Spin[2]*dt),
		}
	}
}

// approach moves cur toward target by fraction alpha. alpha 1 lands exactly.
func approach(cur, target Vec3, alpha float64) Vec3 {
	switch alpha {
	case 0:
		return cur
	case 1:
		return target
	}
	return Vec3{
		lerp(cur[0], target[0], alpha),
		lerp(cur[1], target[1], alpha),
		lerp(cur[2], target[2], alpha),
	}
}
