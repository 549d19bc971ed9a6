package tinsel

import (
	"math/rand/v2"
)

// Particle holds the dual position and visual attributes of one element.
// Targets, color, shape and scale are fixed at creation; only Current,
// Offset and Phase change afterwards.
type Particle struct {
	// ID is a stable index used to desynchronize noise phases.
	ID int
	// Kind is the population this particle belongs to.
	Kind Kind
	// Shape selects the instance batch. Meaningful for decorations only.
	Shape Shape

	// ScatterTarget is the rest position while scattered.
	ScatterTarget Vec3
	// TreeTarget is the rest position while in tree mode.
	TreeTarget Vec3
	// Current is the live interpolated position.
	Current Vec3
	// Offset is this frame's ambient noise. It is added on output and never
	// fed back into Current.
	Offset Vec3

	Color Color
	// Scale is the uniform instance scale. Needles use 1.
	Scale float64

	// Phase is the accumulated spin angle per axis in radians, wrapped to
	// [0, 2π). Decorations only.
	Phase Vec3
	// Spin is the angular velocity per axis in rad/s. Decorations only.
	Spin Vec3
}

// Target returns the rest position for mode.
func (p *Particle) Target(mode MorphMode) Vec3 {
	if mode == ModeTree {
		return p.TreeTarget
	}
	return p.ScatterTarget
}

// Position returns the rendered position: Current plus Offset.
func (p *Particle) Position() Vec3 {
	return p.Current.Add(p.Offset)
}

// newNeedle creates a needle with a volume-filling tree target.
func newNeedle(id int, cfg *Config, tree TreeShape, rng *rand.Rand) Particle {
	scatter := ScatterPosition(rng, cfg.ScatterRadius)
	h := HeightFraction(rng, cfg.NeedleHeightBias)
	return Particle{
		ID:            id,
		Kind:          KindNeedle,
		ScatterTarget: scatter,
		TreeTarget:    tree.VolumePosition(rng, h, cfg.NeedleFill),
		Current:       scatter,
		Color:         cfg.NeedlePalette.Pick(rng),
		Scale:         1,
	}
}

// newDecoration creates an ornament sitting on the tree surface.
func newDecoration(id int, shape Shape, cfg *Config, tree TreeShape, rng *rand.Rand) Particle {
	scatter := ScatterPosition(rng, cfg.ScatterRadius)
	h := HeightFraction(rng, cfg.DecorationHeightBias)
	return Particle{
		ID:            id,
		Kind:          KindDecoration,
		Shape:         shape,
		ScatterTarget: scatter,
		TreeTarget:    tree.SurfacePosition(rng, h),
		Current:       scatter,
		Color:         cfg.DecorationPalette.Pick(rng),
		Scale:         cfg.DecorationScale.Random(rng),
		Spin: Vec3{
			cfg.DecorationSpin.Random(rng),
			cfg.DecorationSpin.Random(rng),
			cfg.DecorationSpin.Random(rng),
		},
	}
}
