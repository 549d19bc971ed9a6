package ebitenview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Rect is an axis-aligned screen rectangle. Y increases downward.
type Rect struct {
	X, Y, Width, Height float64
}

// maxPitch keeps the orbit camera off the poles where LookAt degenerates.
const maxPitch = math.Pi/2 - 0.05

// Camera is a perspective orbit camera looking at Target.
type Camera struct {
	// Target is the world point the camera orbits.
	Target mgl64.Vec3
	// Distance is the eye distance from Target, clamped to
	// [MinDistance, MaxDistance].
	Distance    float64
	MinDistance float64
	MaxDistance float64
	// Yaw and Pitch are the orbit angles in radians. Zero looks down -Z.
	Yaw, Pitch float64
	// FOV is the vertical field of view in degrees.
	FOV       float64
	Near, Far float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	viewProj mgl64.Mat4
	dirty    bool

	zoomTween *gween.Tween
}

// NewCamera creates a camera 35 units out on +Z with a 50° field of view.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Distance:    35,
		MinDistance: 10,
		MaxDistance: 60,
		FOV:         50,
		Near:        0.1,
		Far:         500,
		Viewport:    viewport,
		dirty:       true,
	}
}

// SetViewport resizes the camera output.
func (c *Camera) SetViewport(vp Rect) {
	if c.Viewport != vp {
		c.Viewport = vp
		c.dirty = true
	}
}

// Orbit rotates the eye around Target. Pitch is clamped short of the poles.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+dPitch))
	c.dirty = true
}

// SetDistance moves the eye to d, clamped to the allowed range, and cancels
// any running zoom.
func (c *Camera) SetDistance(d float64) {
	c.zoomTween = nil
	c.setDistance(d)
}

func (c *Camera) setDistance(d float64) {
	if c.MaxDistance > c.MinDistance {
		d = math.Max(c.MinDistance, math.Min(c.MaxDistance, d))
	}
	c.Distance = d
	c.dirty = true
}

// ZoomTo animates the eye distance to d over duration seconds.
func (c *Camera) ZoomTo(d float64, duration float32, easeFn ease.TweenFunc) {
	if c.MaxDistance > c.MinDistance {
		d = math.Max(c.MinDistance, math.Min(c.MaxDistance, d))
	}
	if duration <= 0 {
		c.SetDistance(d)
		return
	}
	c.zoomTween = gween.New(float32(c.Distance), float32(d), duration, easeFn)
}

// IsZooming reports whether a ZoomTo animation is in progress.
func (c *Camera) IsZooming() bool {
	return c.zoomTween != nil
}

// update advances zoom animation by dt seconds.
func (c *Camera) update(dt float32) {
	if c.zoomTween == nil {
		return
	}
	v, done := c.zoomTween.Update(dt)
	c.setDistance(float64(v))
	if done {
		c.zoomTween = nil
	}
}

// Eye returns the world-space eye position.
func (c *Camera) Eye() mgl64.Vec3 {
	sp, cp := math.Sincos(c.Pitch)
	sy, cy := math.Sincos(c.Yaw)
	return c.Target.Add(mgl64.Vec3{
		c.Distance * cp * sy,
		c.Distance * sp,
		c.Distance * cp * cy,
	})
}

// ViewProjection returns the combined projection * view matrix.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	if c.dirty {
		c.computeViewProjection()
	}
	return c.viewProj
}

func (c *Camera) computeViewProjection() {
	aspect := 1.0
	if c.Viewport.Height > 0 {
		aspect = c.Viewport.Width / c.Viewport.Height
	}
	view := mgl64.LookAtV(c.Eye(), c.Target, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
	c.viewProj = proj.Mul4(view)
	c.dirty = false
}

// Project maps a world point to screen coordinates. depth is the clip-space
// w, i.e. the distance along the view axis. ok is false for points behind
// the near plane or beyond the far plane.
func (c *Camera) Project(p mgl64.Vec3) (sx, sy, depth float64, ok bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	w := clip[3]
	if w <= c.Near {
		return 0, 0, w, false
	}
	nz := clip[2] / w
	if nz > 1 {
		return 0, 0, w, false
	}
	vp := c.Viewport
	sx = vp.X + (clip[0]/w+1)*0.5*vp.Width
	sy = vp.Y + (1-clip[1]/w)*0.5*vp.Height
	return sx, sy, w, true
}

// PixelsPerUnit returns how many screen pixels one world unit covers at the
// given depth.
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	half := math.Tan(mgl64.DegToRad(c.FOV) / 2)
	return c.Viewport.Height / (2 * half * depth)
}
