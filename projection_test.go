package tinsel

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestProjectionBufferSizes(t *testing.T) {
	e := newTestEngine(t, 100, 10)
	p := NewProjection(e)

	if p.Points.Len() != 100 || len(p.Points.Colors) != 300 {
		t.Errorf("points = %d (colors %d), want 100 (300)", p.Points.Len(), len(p.Points.Colors))
	}
	want := map[Shape]int{ShapeSphere: 3, ShapeBox: 3, ShapeOctahedron: 2, ShapeTorus: 2}
	for _, shape := range Shapes {
		b := p.Batch(shape)
		if b.Shape != shape {
			t.Errorf("batch %s has shape %s", shape, b.Shape)
		}
		if b.Len() != want[shape] || len(b.Colors) != 3*want[shape] {
			t.Errorf("%s batch = %d instances, want %d", shape, b.Len(), want[shape])
		}
	}
}

func TestProjectionColorsWrittenOnce(t *testing.T) {
	e := newTestEngine(t, 20, 8)
	p := NewProjection(e)

	if !p.Points.ColorsDirty() {
		t.Error("point colors should start dirty")
	}
	for i, n := range e.Store().Needles() {
		if p.Points.Colors[3*i] != float32(n.Color.R) || p.Points.Colors[3*i+2] != float32(n.Color.B) {
			t.Fatalf("needle %d color mismatch", i)
		}
	}
	for _, shape := range Shapes {
		b := p.Batch(shape)
		for j, d := range e.Store().DecorationsOf(shape) {
			if b.Colors[3*j+1] != float32(d.Color.G) {
				t.Fatalf("%s[%d] color mismatch", shape, j)
			}
		}
	}

	p.Points.ClearDirty()
	e.Update(1.0 / 60)
	p.Sync()
	if p.Points.ColorsDirty() {
		t.Error("colors must not be re-flagged by Sync")
	}
	if !p.Points.PositionsDirty() {
		t.Error("positions should be dirty after Sync")
	}
}

func TestProjectionDirtyFlags(t *testing.T) {
	e := newTestEngine(t, 5, 4)
	p := NewProjection(e)
	b := p.Batch(ShapeSphere)
	if !b.TransformsDirty() || !b.ColorsDirty() {
		t.Error("new batch should be dirty")
	}
	b.ClearDirty()
	if b.TransformsDirty() || b.ColorsDirty() {
		t.Error("ClearDirty did not clear")
	}
	p.Sync()
	if !b.TransformsDirty() {
		t.Error("Sync should flag transforms")
	}
}

func TestProjectionPointsFollowYaw(t *testing.T) {
	e := newTestEngine(t, 30, 0)
	e.Update(1) // rotating by default: yaw = 0.2
	p := NewProjection(e)

	yaw := mgl64.HomogRotate3DY(e.Yaw())
	for i, n := range e.Store().Needles() {
		want := yaw.Mul4x1(n.Position().Vec4(1)).Vec3()
		for a := 0; a < 3; a++ {
			if math.Abs(float64(p.Points.Positions[3*i+a])-want[a]) > 1e-4 {
				t.Fatalf("needle %d axis %d = %v, want %v", i, a, p.Points.Positions[3*i+a], want[a])
			}
		}
	}
}

func TestProjectionInstanceTransforms(t *testing.T) {
	e := newTestEngine(t, 0, 8)
	e.Controller().SetRotating(false)
	e.Controller().SetMode(ModeTree)
	e.Update(0.25)
	p := NewProjection(e)

	for _, shape := range Shapes {
		b := p.Batch(shape)
		for j, d := range e.Store().DecorationsOf(shape) {
			tr := Decompose(b.Transforms[j])
			pos := d.Position()
			for a := 0; a < 3; a++ {
				if math.Abs(float64(tr.Position[a])-pos[a]) > 1e-4 {
					t.Fatalf("%s[%d] position %v, want %v", shape, j, tr.Position, pos)
				}
			}
			if math.Abs(float64(tr.Scale)-d.Scale) > 1e-5 {
				t.Errorf("%s[%d] scale %v, want %v", shape, j, tr.Scale, d.Scale)
			}
		}
	}
}

func TestProjectionDebugSync(t *testing.T) {
	e := newTestEngine(t, 10, 4)
	e.SetDebugMode(true)
	if !e.DebugMode() {
		t.Fatal("debug mode not set")
	}
	e.Update(1.0 / 60)
	p := NewProjection(e)
	p.Sync()
	if e.stats.batches != 5 {
		t.Errorf("batches = %d, want 5", e.stats.batches)
	}
	if e.stats.particles != 14 {
		t.Errorf("particles = %d, want 14", e.stats.particles)
	}
}
