package tinsel

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Vec3 is a 3D point or direction in world units. Y is up.
type Vec3 = mgl64.Vec3

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Hex parses a "#rrggbb" color literal, returning black for malformed input.
// Use ParseHex for strings that do not come from source code.
func Hex(s string) Color {
	c, _ := ParseHex(s)
	return c
}

// ParseHex parses a "#rrggbb" or "#rgb" color string.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// Blend mixes c toward other by t in linear RGB space.
func (c Color) Blend(other Color, t float64) Color {
	m := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: other.R, G: other.G, B: other.B}, t)
	return Color{R: m.R, G: m.G, B: m.B}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// MorphMode selects which target every particle moves toward.
type MorphMode uint8

const (
	ModeScattered MorphMode = iota // diffuse cloud, no silhouette
	ModeTree                       // cone-shaped tree silhouette
)

// String returns the mode name.
func (m MorphMode) String() string {
	switch m {
	case ModeScattered:
		return "scattered"
	case ModeTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Kind distinguishes the two particle populations.
type Kind uint8

const (
	KindNeedle     Kind = iota // point-cloud foliage
	KindDecoration             // instanced ornament
)

// Shape selects the instanced mesh a decoration is rendered with.
type Shape uint8

const (
	ShapeSphere Shape = iota
	ShapeBox
	ShapeOctahedron
	ShapeTorus

	shapeCount = 4
)

// Shapes lists every decoration shape in batch order.
var Shapes = [shapeCount]Shape{ShapeSphere, ShapeBox, ShapeOctahedron, ShapeTorus}

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	case ShapeOctahedron:
		return "octahedron"
	case ShapeTorus:
		return "torus"
	default:
		return "unknown"
	}
}

const twoPi = 2 * math.Pi

// wrapAngle folds a into [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		// -tiny + 2π rounds up to 2π.
		return 0
	}
	return a
}

// finite returns v, or 0 when v is NaN or infinite.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// clamp01 limits v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
