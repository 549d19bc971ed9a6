package tinsel

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
)

// Named colors used by the stock palettes.
var (
	ColorSilver     = Hex("#C0C0C0")
	ColorPink       = Hex("#FF007F")
	ColorNeonGreen  = Hex("#00FF41")
	ColorDeepPurple = Hex("#240046")
	ColorCyberBlue  = Hex("#00F0FF")
)

// Swatch is one weighted palette entry.
type Swatch struct {
	Color  Color
	Weight float64
}

// swatchJSON is the wire form of a Swatch: {"color": "#rrggbb", "weight": 1}.
type swatchJSON struct {
	Color  string  `json:"color"`
	Weight float64 `json:"weight"`
}

// UnmarshalJSON accepts a hex color string and a weight.
func (s *Swatch) UnmarshalJSON(data []byte) error {
	var w swatchJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c, err := ParseHex(w.Color)
	if err != nil {
		return err
	}
	s.Color = c
	s.Weight = w.Weight
	return nil
}

// Palette is a set of colors picked with probability proportional to weight.
type Palette []Swatch

// DefaultNeedlePalette is mostly neon green with silver and a little cyan.
func DefaultNeedlePalette() Palette {
	return Palette{
		{Color: ColorNeonGreen, Weight: 0.80},
		{Color: ColorSilver, Weight: 0.15},
		{Color: ColorCyberBlue, Weight: 0.05},
	}
}

// DefaultDecorationPalette mixes pink, silver and deep purple.
func DefaultDecorationPalette() Palette {
	return Palette{
		{Color: ColorPink, Weight: 0.4},
		{Color: ColorSilver, Weight: 0.3},
		{Color: ColorDeepPurple, Weight: 0.3},
	}
}

// Pick draws one color. An empty palette returns white.
func (p Palette) Pick(rng *rand.Rand) Color {
	if len(p) == 0 {
		return Color{1, 1, 1}
	}
	var total float64
	for _, s := range p {
		total += s.Weight
	}
	r := rng.Float64() * total
	for _, s := range p {
		if r < s.Weight {
			return s.Color
		}
		r -= s.Weight
	}
	return p[len(p)-1].Color
}

func (p Palette) validate() error {
	if len(p) == 0 {
		return errors.New("empty")
	}
	var total float64
	for _, s := range p {
		if !nonNegative(s.Weight) {
			return errors.New("negative or non-finite weight")
		}
		total += s.Weight
	}
	if total <= 0 {
		return errors.New("weights sum to zero")
	}
	return nil
}
