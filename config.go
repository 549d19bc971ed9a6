package tinsel

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Oscillator describes a sine wave used for ambient motion.
type Oscillator struct {
	// Frequency is the phase advance in radians per second.
	Frequency float64 `json:"frequency"`
	// Amplitude is the peak offset in world units.
	Amplitude float64 `json:"amplitude"`
}

// Config holds every tunable of the engine. The zero value is not usable;
// start from DefaultConfig and override fields.
type Config struct {
	// NeedleCount is the number of point-cloud particles.
	NeedleCount int `json:"needleCount"`
	// DecorationCount is the number of instanced ornaments, spread evenly
	// across the four shapes.
	DecorationCount int `json:"decorationCount"`

	// TreeHeight is the cone height. The base sits at -TreeHeight/2.
	TreeHeight float64 `json:"treeHeight"`
	// TreeRadius is the cone radius at its base.
	TreeRadius float64 `json:"treeRadius"`
	// TreeFalloff shapes how the radius shrinks toward the apex:
	// radius(h) = TreeRadius * (1-h)^TreeFalloff. 1 is a straight cone.
	TreeFalloff float64 `json:"treeFalloff"`
	// ScatterRadius is the radius of the ball the chaos cloud fills.
	ScatterRadius float64 `json:"scatterRadius"`

	// DecayBase is the fraction of remaining distance left after one second
	// at rate 1. Must be in (0, 1).
	DecayBase float64 `json:"decayBase"`
	// NeedleRate and DecorationRate scale time in the smoothing exponent.
	NeedleRate     float64 `json:"needleRate"`
	DecorationRate float64 `json:"decorationRate"`

	// NeedleHeightBias and DecorationHeightBias are the exponents applied to
	// a uniform draw to get a height fraction.
	NeedleHeightBias     float64 `json:"needleHeightBias"`
	DecorationHeightBias float64 `json:"decorationHeightBias"`
	// NeedleFill is the radial exponent for volume placement. 0.5 fills the
	// cone cross-section uniformly; smaller values push toward the surface.
	NeedleFill float64 `json:"needleFill"`

	// NeedleNoise drives the hover jitter of needles.
	NeedleNoise Oscillator `json:"needleNoise"`
	// ScatterNoiseScale multiplies the horizontal needle jitter while
	// scattered.
	ScatterNoiseScale float64 `json:"scatterNoiseScale"`
	// DecorationBob drives the vertical bob of decorations.
	DecorationBob Oscillator `json:"decorationBob"`

	// DecorationScale is the range of uniform ornament scales.
	DecorationScale Range `json:"decorationScale"`
	// DecorationSpin is the range of per-axis angular speeds in rad/s.
	DecorationSpin Range `json:"decorationSpin"`

	// SpinSpeed is the yaw rate of the whole cloud while rotating, in rad/s.
	SpinSpeed float64 `json:"spinSpeed"`
	// SpinRamp is the time in seconds to ease between stopped and full
	// speed when rotation is toggled. 0 switches instantly.
	SpinRamp float64 `json:"spinRamp"`

	// NeedlePalette and DecorationPalette are the weighted color tables.
	NeedlePalette     Palette `json:"needlePalette"`
	DecorationPalette Palette `json:"decorationPalette"`

	// Seed seeds particle generation. 0 picks a random seed.
	Seed uint64 `json:"seed"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		NeedleCount:          3500,
		DecorationCount:      150,
		TreeHeight:           12,
		TreeRadius:           5,
		TreeFalloff:          1,
		ScatterRadius:        25,
		DecayBase:            0.01,
		NeedleRate:           0.8,
		DecorationRate:       1.5,
		NeedleHeightBias:     0.8,
		DecorationHeightBias: 1,
		NeedleFill:           0.5,
		NeedleNoise:          Oscillator{Frequency: 2, Amplitude: 0.02},
		ScatterNoiseScale:    5,
		DecorationBob:        Oscillator{Frequency: 3, Amplitude: 0.05},
		DecorationScale:      Range{Min: 0.2, Max: 0.45},
		DecorationSpin:       Range{Min: -1, Max: 1},
		SpinSpeed:            0.2,
		NeedlePalette:        DefaultNeedlePalette(),
		DecorationPalette:    DefaultDecorationPalette(),
	}
}

// LoadConfig decodes JSON on top of DefaultConfig and validates the result.
// Fields absent from the document keep their defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c *Config) Validate() error {
	switch {
	case c.NeedleCount < 0:
		return invalid("needleCount", c.NeedleCount)
	case c.DecorationCount < 0:
		return invalid("decorationCount", c.DecorationCount)
	case !positive(c.TreeHeight):
		return invalid("treeHeight", c.TreeHeight)
	case !positive(c.TreeRadius):
		return invalid("treeRadius", c.TreeRadius)
	case !positive(c.TreeFalloff):
		return invalid("treeFalloff", c.TreeFalloff)
	case !positive(c.ScatterRadius):
		return invalid("scatterRadius", c.ScatterRadius)
	case !(c.DecayBase > 0 && c.DecayBase < 1):
		return invalid("decayBase", c.DecayBase)
	case !nonNegative(c.NeedleRate):
		return invalid("needleRate", c.NeedleRate)
	case !nonNegative(c.DecorationRate):
		return invalid("decorationRate", c.DecorationRate)
	case !positive(c.NeedleHeightBias):
		return invalid("needleHeightBias", c.NeedleHeightBias)
	case !positive(c.DecorationHeightBias):
		return invalid("decorationHeightBias", c.DecorationHeightBias)
	case !positive(c.NeedleFill):
		return invalid("needleFill", c.NeedleFill)
	case !nonNegative(c.NeedleNoise.Amplitude) || !isFinite(c.NeedleNoise.Frequency):
		return invalid("needleNoise", c.NeedleNoise)
	case !nonNegative(c.ScatterNoiseScale):
		return invalid("scatterNoiseScale", c.ScatterNoiseScale)
	case !nonNegative(c.DecorationBob.Amplitude) || !isFinite(c.DecorationBob.Frequency):
		return invalid("decorationBob", c.DecorationBob)
	case !validRange(c.DecorationScale) || c.DecorationScale.Min < 0:
		return invalid("decorationScale", c.DecorationScale)
	case !validRange(c.DecorationSpin):
		return invalid("decorationSpin", c.DecorationSpin)
	case !isFinite(c.SpinSpeed):
		return invalid("spinSpeed", c.SpinSpeed)
	case !nonNegative(c.SpinRamp):
		return invalid("spinRamp", c.SpinRamp)
	}
	if err := c.NeedlePalette.validate(); err != nil {
		return fmt.Errorf("%w: needlePalette: %v", ErrInvalidConfig, err)
	}
	if err := c.DecorationPalette.validate(); err != nil {
		return fmt.Errorf("%w: decorationPalette: %v", ErrInvalidConfig, err)
	}
	return nil
}

func invalid(field string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidConfig, field, v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return isFinite(v) && v > 0
}

func nonNegative(v float64) bool {
	return isFinite(v) && v >= 0
}

func validRange(r Range) bool {
	return isFinite(r.Min) && isFinite(r.Max) && r.Min <= r.Max
}
