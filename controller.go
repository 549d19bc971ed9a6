package tinsel

import "sync/atomic"

// ModeListener is the interface for optional change notification.
// When set on a Controller, every effective toggle is forwarded to it.
type ModeListener interface {
	EmitModeChange(change ModeChange)
}

// ModeChange describes the controller state right after a toggle.
type ModeChange struct {
	Mode     MorphMode
	Rotating bool
	// MorphChanged is true when Mode changed, false when Rotating changed.
	MorphChanged bool
}

// Controller holds the two process-wide toggles. Setters may be called from
// any goroutine; the engine reads the latest values once per frame.
type Controller struct {
	mode     atomic.Uint32
	rotating atomic.Bool
	listener ModeListener
}

// NewController returns a controller in scattered mode with rotation on.
func NewController() *Controller {
	c := &Controller{}
	c.mode.Store(uint32(ModeScattered))
	c.rotating.Store(true)
	return c
}

// SetListener installs the change listener. Call it during setup, before
// any concurrent setter.
func (c *Controller) SetListener(l ModeListener) {
	c.listener = l
}

// Mode returns the current morph mode.
func (c *Controller) Mode() MorphMode {
	return MorphMode(c.mode.Load())
}

// Rotating reports whether the cloud spins.
func (c *Controller) Rotating() bool {
	return c.rotating.Load()
}

// SetMode selects the morph target. Setting the current mode is a no-op.
func (c *Controller) SetMode(m MorphMode) {
	if m != ModeScattered && m != ModeTree {
		return
	}
	old := c.mode.Swap(uint32(m))
	if MorphMode(old) != m {
		c.emit(true)
	}
}

// ToggleMode flips between scattered and tree and returns the new mode.
func (c *Controller) ToggleMode() MorphMode {
	for {
		old := c.mode.Load()
		next := uint32(ModeTree)
		if MorphMode(old) == ModeTree {
			next = uint32(ModeScattered)
		}
		if c.mode.CompareAndSwap(old, next) {
			c.emit(true)
			return MorphMode(next)
		}
	}
}

// SetRotating turns the spin on or off.
func (c *Controller) SetRotating(on bool) {
	if c.rotating.Swap(on) != on {
		c.emit(false)
	}
}

// ToggleRotating flips the spin and returns the new state.
func (c *Controller) ToggleRotating() bool {
	for {
		old := c.rotating.Load()
		if c.rotating.CompareAndSwap(old, !old) {
			c.emit(false)
			return !old
		}
	}
}

func (c *Controller) emit(morph bool) {
	if c.listener == nil {
		return
	}
	c.listener.EmitModeChange(ModeChange{
		Mode:         c.Mode(),
		Rotating:     c.Rotating(),
		MorphChanged: morph,
	})
}
