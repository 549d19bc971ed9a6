package tinsel

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing for one Update/Sync pair.
// Only populated when Engine.debug is true.
type debugStats struct {
	updateTime time.Duration
	syncTime   time.Duration
	particles  int
	batches    int
	mode       MorphMode
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing stats are logged to stderr after each Projection.Sync.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (e *Engine) DebugMode() bool {
	return e.debug
}

// debugLog prints timing stats to stderr.
func (e *Engine) debugLog() {
	if !e.debug {
		return
	}
	st := &e.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[tinsel] frame %d | update: %v | sync: %v | total: %v\n",
		e.frames, st.updateTime, st.syncTime, st.updateTime+st.syncTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[tinsel] particles: %d | batches: %d | mode: %s | yaw: %.3f\n",
		st.particles, st.batches, st.mode, e.spin.angle)
}
