package tinsel

import (
	"math"
	"math/rand/v2"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

func assertFinite(t *testing.T, name string, v Vec3) {
	t.Helper()
	for i, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			t.Fatalf("%s[%d] = %v, want finite", name, i, c)
		}
	}
}

// --- ScatterPosition ---

func TestScatterPositionInsideRadius(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 5000; i++ {
		p := ScatterPosition(rng, 25)
		assertFinite(t, "p", p)
		if p.Len() > 25+epsilon {
			t.Fatalf("|p| = %v, exceeds radius 25", p.Len())
		}
	}
}

func TestScatterPositionUniformVolume(t *testing.T) {
	const (
		n = 20000
		r = 10.0
	)
	rng := testRNG()

	// For a uniform ball, P(|p| < k*R) = k^3.
	cuts := []float64{0.25, 0.5, 0.75, 0.9}
	counts := make([]int, len(cuts))
	var sum Vec3
	for i := 0; i < n; i++ {
		p := ScatterPosition(rng, r)
		sum = sum.Add(p)
		d := p.Len() / r
		for j, k := range cuts {
			if d < k {
				counts[j]++
			}
		}
	}
	for j, k := range cuts {
		got := float64(counts[j]) / n
		want := k * k * k
		if math.Abs(got-want) > 0.015 {
			t.Errorf("P(r < %.2fR) = %.4f, want %.4f", k, got, want)
		}
	}

	mean := sum.Mul(1.0 / n)
	for i := 0; i < 3; i++ {
		if math.Abs(mean[i]) > 0.3 {
			t.Errorf("mean[%d] = %.3f, want ~0", i, mean[i])
		}
	}
}

func TestScatterPositionNonFiniteRadius(t *testing.T) {
	rng := testRNG()
	for _, r := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		p := ScatterPosition(rng, r)
		assertFinite(t, "p", p)
	}
}

// --- HeightFraction ---

func TestHeightFractionRangeAndBias(t *testing.T) {
	const n = 20000
	rng := testRNG()
	for _, tc := range []struct {
		bias, mean float64
	}{
		{1, 0.5},
		{2, 1.0 / 3},   // E[u^2]
		{0.8, 1 / 1.8}, // E[u^k] = 1/(k+1)
	} {
		var sum float64
		for i := 0; i < n; i++ {
			h := HeightFraction(rng, tc.bias)
			if h < 0 || h > 1 {
				t.Fatalf("bias %v: h = %v out of [0,1]", tc.bias, h)
			}
			sum += h
		}
		got := sum / n
		if math.Abs(got-tc.mean) > 0.01 {
			t.Errorf("bias %v: mean = %.4f, want %.4f", tc.bias, got, tc.mean)
		}
	}
}

func TestHeightFractionInvalidBias(t *testing.T) {
	rng := testRNG()
	for _, b := range []float64{0, -1, math.NaN()} {
		h := HeightFraction(rng, b)
		if math.IsNaN(h) || h < 0 || h > 1 {
			t.Errorf("bias %v: h = %v", b, h)
		}
	}
}

// --- TreeShape ---

func testTree() TreeShape {
	return TreeShape{Height: 12, Radius: 5, Falloff: 1}
}

func axisDistance(p Vec3) float64 {
	return math.Hypot(p[0], p[2])
}

func TestSurfacePositionBaseAndApex(t *testing.T) {
	rng := testRNG()
	tree := testTree()
	for i := 0; i < 100; i++ {
		base := tree.SurfacePosition(rng, 0)
		assertNear(t, "base radius", axisDistance(base), 5)
		assertNear(t, "base y", base[1], -6)

		apex := tree.SurfacePosition(rng, 1)
		assertNear(t, "apex radius", axisDistance(apex), 0)
		assertNear(t, "apex y", apex[1], 6)
	}
}

func TestSurfacePositionLinearFalloff(t *testing.T) {
	rng := testRNG()
	tree := testTree()
	p := tree.SurfacePosition(rng, 0.5)
	assertNear(t, "mid radius", axisDistance(p), 2.5)
	assertNear(t, "mid y", p[1], 0)
}

func TestSurfacePositionCustomFalloff(t *testing.T) {
	tree := TreeShape{Height: 10, Radius: 4, Falloff: 2}
	assertNear(t, "RadiusAt(0.5)", tree.RadiusAt(0.5), 1)
}

func TestSurfacePositionNoSeam(t *testing.T) {
	rng := testRNG()
	tree := testTree()
	var quadrants [4]int
	for i := 0; i < 400; i++ {
		p := tree.SurfacePosition(rng, 0.2)
		q := 0
		if p[0] < 0 {
			q |= 1
		}
		if p[2] < 0 {
			q |= 2
		}
		quadrants[q]++
	}
	for q, c := range quadrants {
		if c < 60 {
			t.Errorf("quadrant %d has %d of 400 points, want roughly 100", q, c)
		}
	}
}

func TestSurfacePositionClampsInput(t *testing.T) {
	rng := testRNG()
	tree := testTree()
	for _, h := range []float64{-0.5, 1.5, math.NaN(), math.Inf(1)} {
		p := tree.SurfacePosition(rng, h)
		assertFinite(t, "p", p)
		if p[1] < -6-epsilon || p[1] > 6+epsilon {
			t.Errorf("h=%v: y = %v outside cone", h, p[1])
		}
	}
}

func TestVolumePositionInsideCone(t *testing.T) {
	rng := testRNG()
	tree := testTree()
	var inner int
	const n = 5000
	for i := 0; i < n; i++ {
		h := rng.Float64()
		p := tree.VolumePosition(rng, h, 0.5)
		assertFinite(t, "p", p)
		limit := tree.RadiusAt(h)
		d := axisDistance(p)
		if d > limit+epsilon {
			t.Fatalf("h=%v: axis distance %v exceeds radius %v", h, d, limit)
		}
		if limit > 0 && d < limit/2 {
			inner++
		}
	}
	// fill 0.5 is uniform over the disc: a quarter of the area lies
	// inside half the radius.
	got := float64(inner) / n
	if math.Abs(got-0.25) > 0.03 {
		t.Errorf("inner fraction = %.3f, want ~0.25", got)
	}
}

func TestVolumePositionInvalidFill(t *testing.T) {
	rng := testRNG()
	p := testTree().VolumePosition(rng, 0.3, math.NaN())
	assertFinite(t, "p", p)
}
