package tinsel

import (
	"encoding/json"
	"fmt"
	"log"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure.
type script struct {
	Loop  bool         `json:"loop,omitempty"`
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"tree":        true,
	"scatter":     true,
	"toggle":      true,
	"spin":        true,
	"stop":        true,
	"toggle-spin": true,
	"reset":       true,
	"wait":        true,
	"screenshot":  true,
}

// ScriptRunner sequences controller toggles and waits across frames, for
// unattended demos and automated runs. Call Step once per frame before
// Engine.Update.
type ScriptRunner struct {
	// OnScreenshot is called for "screenshot" steps. Nil skips them.
	OnScreenshot func(label string)

	steps     []scriptStep
	loop      bool
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script:
//
//	{"loop": true, "steps": [
//		{"action": "tree"},
//		{"action": "wait", "frames": 240},
//		{"action": "screenshot", "label": "formed"},
//		{"action": "scatter"}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	hasWait := false
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "wait" && st.Frames > 0 {
			hasWait = true
		}
	}
	if sc.Loop && !hasWait {
		return nil, fmt.Errorf("parse script: looping script needs a wait step")
	}
	return &ScriptRunner{steps: sc.Steps, loop: sc.Loop}, nil
}

// Done reports whether all steps have run. A looping script is never done.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, executing at most one non-wait
// action.
func (r *ScriptRunner) Step(e *Engine) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		if !r.loop {
			r.done = true
			return
		}
		r.cursor = 0
	}

	st := r.steps[r.cursor]
	r.cursor++

	ctrl := e.Controller()
	switch st.Action {
	case "tree":
		ctrl.SetMode(ModeTree)
	case "scatter":
		ctrl.SetMode(ModeScattered)
	case "toggle":
		ctrl.ToggleMode()
	case "spin":
		ctrl.SetRotating(true)
	case "stop":
		ctrl.SetRotating(false)
	case "toggle-spin":
		ctrl.ToggleRotating()
	case "reset":
		e.Reset()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
		} else {
			log.Printf("tinsel: script screenshot %q skipped, no handler", st.Label)
		}
	}

	if !r.loop && r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
