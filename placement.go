package tinsel

import (
	"math"
	"math/rand/v2"
)

// ScatterPosition returns a point distributed uniformly in the volume of a
// ball of the given radius centered at the origin.
func ScatterPosition(rng *rand.Rand, radius float64) Vec3 {
	radius = math.Abs(finite(radius))
	// Uniform direction: uniform cos(theta) and azimuth.
	cosTheta := 2*rng.Float64() - 1
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	sinPhi, cosPhi := math.Sincos(twoPi * rng.Float64())
	// Cube root keeps density constant per unit volume.
	r := radius * math.Cbrt(rng.Float64())
	return Vec3{
		r * sinTheta * cosPhi,
		r * cosTheta,
		r * sinTheta * sinPhi,
	}
}

// HeightFraction draws u^bias for uniform u in [0, 1). A bias above 1 packs
// samples toward the base, below 1 toward the apex.
func HeightFraction(rng *rand.Rand, bias float64) float64 {
	if !positive(bias) {
		bias = 1
	}
	return clamp01(math.Pow(rng.Float64(), bias))
}

// TreeShape is a cone standing on the XZ plane, centered vertically on the
// origin.
type TreeShape struct {
	Height  float64
	Radius  float64
	Falloff float64
}

// TreeShapeFromConfig extracts the cone geometry from cfg.
func TreeShapeFromConfig(cfg *Config) TreeShape {
	return TreeShape{Height: cfg.TreeHeight, Radius: cfg.TreeRadius, Falloff: cfg.TreeFalloff}
}

// RadiusAt returns the cone radius at height fraction h.
func (t TreeShape) RadiusAt(h float64) float64 {
	h = clamp01(finite(h))
	falloff := t.Falloff
	if !positive(falloff) {
		falloff = 1
	}
	return math.Abs(finite(t.Radius)) * math.Pow(1-h, falloff)
}

// Y returns the world height of fraction h.
func (t TreeShape) Y(h float64) float64 {
	height := finite(t.Height)
	return -height/2 + clamp01(finite(h))*height
}

// SurfacePosition returns a point on the lateral surface of the cone at
// height fraction h, at a uniformly random angle.
func (t TreeShape) SurfacePosition(rng *rand.Rand, h float64) Vec3 {
	return t.ring(rng, h, t.RadiusAt(h))
}

// VolumePosition returns a point inside the cone at height fraction h. The
// distance from the axis is radius(h) * u^fill: fill 0.5 is uniform over the
// cross-section, smaller values crowd toward the surface.
func (t TreeShape) VolumePosition(rng *rand.Rand, h, fill float64) Vec3 {
	if !positive(fill) {
		fill = 0.5
	}
	r := t.RadiusAt(h) * math.Pow(rng.Float64(), fill)
	return t.ring(rng, h, r)
}

func (t TreeShape) ring(rng *rand.Rand, h, r float64) Vec3 {
	sin, cos := math.Sincos(twoPi * rng.Float64())
	return Vec3{r * cos, t.Y(h), r * sin}
}
