package tinsel

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// PointCloud is the GPU-facing buffer set for needles: one xyz triple and one
// rgb triple per needle, packed contiguously.
type PointCloud struct {
	Positions []float32
	Colors    []float32

	positionsDirty bool
	colorsDirty    bool
}

// Len returns the number of points.
func (pc *PointCloud) Len() int {
	return len(pc.Positions) / 3
}

// PositionsDirty reports whether Positions changed since the last
// ClearDirty.
func (pc *PointCloud) PositionsDirty() bool {
	return pc.positionsDirty
}

// ColorsDirty reports whether Colors still needs its initial upload.
func (pc *PointCloud) ColorsDirty() bool {
	return pc.colorsDirty
}

// ClearDirty marks both buffers as uploaded.
func (pc *PointCloud) ClearDirty() {
	pc.positionsDirty = false
	pc.colorsDirty = false
}

// InstanceBatch is the GPU-facing buffer set for one decoration shape. Index
// i in every slice belongs to the same instance.
type InstanceBatch struct {
	Shape      Shape
	Transforms []mgl32.Mat4
	Colors     []float32

	transformsDirty bool
	colorsDirty     bool
}

// Len returns the number of instances in the batch.
func (b *InstanceBatch) Len() int {
	return len(b.Transforms)
}

// TransformsDirty reports whether Transforms changed since the last
// ClearDirty.
func (b *InstanceBatch) TransformsDirty() bool {
	return b.transformsDirty
}

// ColorsDirty reports whether Colors still needs its initial upload.
func (b *InstanceBatch) ColorsDirty() bool {
	return b.colorsDirty
}

// ClearDirty marks both buffers as uploaded.
func (b *InstanceBatch) ClearDirty() {
	b.transformsDirty = false
	b.colorsDirty = false
}

// Projection copies engine state into render buffers. Buffers are sized once
// from the store and rewritten in place by every Sync.
type Projection struct {
	Points  PointCloud
	Batches [shapeCount]InstanceBatch

	engine *Engine
}

// NewProjection allocates buffers for every particle in e's store and writes
// the immutable colors once.
func NewProjection(e *Engine) *Projection {
	p := &Projection{engine: e}
	store := e.store

	needles := store.needles
	p.Points.Positions = make([]float32, 3*len(needles))
	p.Points.Colors = make([]float32, 3*len(needles))
	writeColors(p.Points.Colors, needles)
	p.Points.colorsDirty = true

	for si, shape := range Shapes {
		run := store.DecorationsOf(shape)
		b := &p.Batches[si]
		b.Shape = shape
		b.Transforms = make([]mgl32.Mat4, len(run))
		b.Colors = make([]float32, 3*len(run))
		writeColors(b.Colors, run)
		b.colorsDirty = true
	}

	p.Sync()
	return p
}

// Batch returns the instance batch for shape.
func (p *Projection) Batch(shape Shape) *InstanceBatch {
	return &p.Batches[shape]
}

// Sync writes the current world position of every needle and the world
// transform of every decoration, then flags each buffer dirty once. Call it
// after Engine.Update for the frame has returned.
func (p *Projection) Sync() {
	e := p.engine
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	yaw := e.Yaw()
	rot := newYawRotation(yaw)

	pos := p.Points.Positions
	for i := range e.store.needles {
		w := rot.apply(e.store.needles[i].Position())
		pos[3*i] = float32(w[0])
		pos[3*i+1] = float32(w[1])
		pos[3*i+2] = float32(w[2])
	}
	p.Points.positionsDirty = true

	yawM := mgl64.HomogRotate3DY(yaw)
	batches := 0
	if p.Points.Len() > 0 {
		batches++
	}
	for si, shape := range Shapes {
		b := &p.Batches[si]
		run := e.store.DecorationsOf(shape)
		for j := range run {
			d := &run[j]
			b.Transforms[j] = mat4f32(instanceMatrix(yawM, d.Position(), d.Phase, d.Scale))
		}
		b.transformsDirty = true
		if len(run) > 0 {
			batches++
		}
	}

	if e.debug {
		e.stats.syncTime = time.Since(t0)
		e.stats.batches = batches
		e.debugLog()
	}
}

func writeColors(dst []float32, ps []Particle) {
	for i := range ps {
		c := ps[i].Color
		dst[3*i] = float32(c.R)
		dst[3*i+1] = float32(c.G)
		dst[3*i+2] = float32(c.B)
	}
}
