package tinsel

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.NeedleCount != 3500 || cfg.DecorationCount != 150 {
		t.Errorf("counts = %d/%d", cfg.NeedleCount, cfg.DecorationCount)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative needles", func(c *Config) { c.NeedleCount = -1 }},
		{"zero height", func(c *Config) { c.TreeHeight = 0 }},
		{"nan radius", func(c *Config) { c.TreeRadius = math.NaN() }},
		{"decay zero", func(c *Config) { c.DecayBase = 0 }},
		{"decay one", func(c *Config) { c.DecayBase = 1 }},
		{"negative rate", func(c *Config) { c.NeedleRate = -0.1 }},
		{"inf scatter", func(c *Config) { c.ScatterRadius = math.Inf(1) }},
		{"inverted scale", func(c *Config) { c.DecorationScale = Range{Min: 1, Max: 0.5} }},
		{"negative ramp", func(c *Config) { c.SpinRamp = -1 }},
		{"empty palette", func(c *Config) { c.NeedlePalette = nil }},
		{"zero weights", func(c *Config) { c.DecorationPalette = Palette{{Color: ColorPink}} }},
	} {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", tc.name, err)
		}
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{
		"needleCount": 100,
		"treeHeight": 20,
		"needleNoise": {"frequency": 4, "amplitude": 0.1},
		"decorationPalette": [{"color": "#ff0000", "weight": 1}],
		"seed": 99
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NeedleCount != 100 || cfg.TreeHeight != 20 || cfg.Seed != 99 {
		t.Errorf("overlay not applied: %+v", cfg)
	}
	if cfg.NeedleNoise.Frequency != 4 || cfg.NeedleNoise.Amplitude != 0.1 {
		t.Errorf("needleNoise = %+v", cfg.NeedleNoise)
	}
	// Untouched fields keep defaults.
	if cfg.DecorationCount != 150 || cfg.TreeRadius != 5 || len(cfg.NeedlePalette) != 3 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if len(cfg.DecorationPalette) != 1 || cfg.DecorationPalette[0].Color != (Color{R: 1}) {
		t.Errorf("decorationPalette = %+v", cfg.DecorationPalette)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig([]byte(`{"needleCount":`)); err == nil {
		t.Error("expected parse error")
	}
	if _, err := LoadConfig([]byte(`{"decayBase": 2}`)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
	if _, err := LoadConfig([]byte(`{"needlePalette": [{"color": "green", "weight": 1}]}`)); err == nil {
		t.Error("expected bad hex error")
	}
}

// --- Palette ---

func TestPaletteDefaults(t *testing.T) {
	assertNear(t, "pink R", ColorPink.R, 1)
	assertNear(t, "pink G", ColorPink.G, 0)
	assertNear(t, "pink B", ColorPink.B, 127.0/255)
	assertNear(t, "silver", ColorSilver.G, 192.0/255)
}

func TestPalettePickWeights(t *testing.T) {
	const n = 20000
	rng := rand.New(rand.NewPCG(3, 4))
	p := DefaultNeedlePalette()
	counts := map[Color]int{}
	for i := 0; i < n; i++ {
		counts[p.Pick(rng)]++
	}
	for _, s := range p {
		got := float64(counts[s.Color]) / n
		if math.Abs(got-s.Weight) > 0.02 {
			t.Errorf("%+v picked %.3f, want %.3f", s.Color, got, s.Weight)
		}
	}
}

func TestPalettePickEmpty(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	if c := (Palette{}).Pick(rng); c != (Color{1, 1, 1}) {
		t.Errorf("empty palette = %+v, want white", c)
	}
}

func TestColorBlend(t *testing.T) {
	c := Color{R: 1}.Blend(Color{B: 1}, 0.5)
	assertNear(t, "R", c.R, 0.5)
	assertNear(t, "B", c.B, 0.5)
}

func TestParseHexError(t *testing.T) {
	if _, err := ParseHex("nope"); err == nil {
		t.Error("expected error")
	}
	if c := Hex("nope"); c != (Color{}) {
		t.Errorf("Hex(invalid) = %+v, want black", c)
	}
}
