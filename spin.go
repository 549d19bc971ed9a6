package tinsel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// spin integrates the yaw of the whole cloud. When a ramp is configured the
// angular rate eases toward its goal with a gween tween instead of jumping.
type spin struct {
	speed  float64 // full angular rate in rad/s
	ramp   float64 // seconds from rest to full speed
	easeFn ease.TweenFunc

	rate   float64
	goal   float64
	tween  *gween.Tween
	angle  float64
	primed bool
}

func newSpin(speed, ramp float64) spin {
	return spin{speed: speed, ramp: ramp, easeFn: ease.InOutQuad}
}

// update advances the yaw by dt seconds given the latest toggle.
func (s *spin) update(dt float64, rotating bool) {
	goal := 0.0
	if rotating {
		goal = s.speed
	}

	switch {
	case !s.primed:
		// The first frame starts at the requested state with no ramp.
		s.primed = true
		s.goal = goal
		s.rate = goal
	case goal != s.goal:
		s.goal = goal
		s.retarget()
	}

	if s.tween != nil {
		v, done := s.tween.Update(float32(dt))
		s.rate = float64(v)
		if done {
			s.rate = s.goal
			s.tween = nil
		}
	}

	s.angle = wrapAngle(s.angle + s.rate*dt)
}

// retarget starts a tween from the current rate to goal. A partial change
// takes a proportional share of the full ramp time.
func (s *spin) retarget() {
	if s.ramp <= 0 || s.speed == 0 {
		s.rate = s.goal
		s.tween = nil
		return
	}
	d := s.ramp * math.Abs(s.goal-s.rate) / math.Abs(s.speed)
	if d <= 0 {
		s.rate = s.goal
		s.tween = nil
		return
	}
	s.tween = gween.New(float32(s.rate), float32(s.goal), float32(d), s.easeFn)
}
