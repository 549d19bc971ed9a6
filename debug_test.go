package tinsel

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn and returns everything it wrote to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_LogsAfterSync(t *testing.T) {
	e := newTestEngine(t, 10, 4)
	p := NewProjection(e)
	e.SetDebugMode(true)
	e.Controller().SetMode(ModeTree)

	output := captureStderr(t, func() {
		e.Update(1.0 / 60)
		p.Sync()
	})

	if !strings.Contains(output, "[tinsel] frame 1") {
		t.Errorf("expected frame line, got: %q", output)
	}
	if !strings.Contains(output, "particles: 14") || !strings.Contains(output, "mode: tree") {
		t.Errorf("expected stats line, got: %q", output)
	}
}

func TestDebugMode_SilentWhenOff(t *testing.T) {
	e := newTestEngine(t, 10, 4)
	p := NewProjection(e)

	output := captureStderr(t, func() {
		e.Update(1.0 / 60)
		p.Sync()
	})

	if output != "" {
		t.Errorf("expected no output, got: %q", output)
	}
}

func TestDebugStats_ClearedByUpdate(t *testing.T) {
	e := newTestEngine(t, 3, 0)
	e.SetDebugMode(true)
	e.stats.batches = 99
	captureStderr(t, func() { e.Update(1.0 / 60) })
	if e.stats.batches != 0 {
		t.Errorf("stale batches = %d, want 0 before Sync", e.stats.batches)
	}
	if e.stats.particles != 3 {
		t.Errorf("particles = %d, want 3", e.stats.particles)
	}
}
