package ebitenview

import (
	"cmp"
	"image"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/tinsel"
)

// maxBatchVerts caps one DrawTriangles32 submission.
const maxBatchVerts = 65532

// shapeGlow is the emissive tint each decoration shape is pulled toward.
var shapeGlow = [len(tinsel.Shapes)]struct {
	color  tinsel.Color
	amount float64
}{
	tinsel.ShapeSphere:     {tinsel.ColorDeepPurple, 0.25},
	tinsel.ShapeBox:        {tinsel.Color{}, 0},
	tinsel.ShapeOctahedron: {tinsel.ColorPink, 0.35},
	tinsel.ShapeTorus:      {tinsel.ColorCyberBlue, 0.5},
}

// instanceRef is one decoration queued for depth-sorted drawing.
type instanceRef struct {
	shape  int
	index  int
	sx, sy float64
	depth  float64
	half   float64
	roll   float64
}

// View draws a tinsel.Projection with a perspective camera. Needles become
// additive soft dots; decorations become shape sprites sorted back to front.
type View struct {
	Camera *Camera
	// PointSize is the needle dot diameter in world units.
	PointSize float64
	// PointOpacity scales needle color and alpha.
	PointOpacity float64
	// DecorationSize is the sprite diameter per unit of instance scale.
	DecorationSize float64

	proj  *tinsel.Projection
	atlas *shapeAtlas

	// Premultiplied RGBA per decoration, refreshed when a batch's colors
	// are dirty.
	tints [len(tinsel.Shapes)][]float32

	verts []ebiten.Vertex
	inds  []uint32
	order []instanceRef
}

// NewView creates a view over proj rendering into viewport.
func NewView(proj *tinsel.Projection, viewport Rect) *View {
	return &View{
		Camera:         NewCamera(viewport),
		PointSize:      0.15,
		PointOpacity:   0.8,
		DecorationSize: 2,
		proj:           proj,
		atlas:          newShapeAtlas(),
	}
}

// Draw renders the current projection buffers to target and marks them
// uploaded.
func (v *View) Draw(target *ebiten.Image) {
	v.uploadColors()
	v.drawNeedles(target)
	v.drawDecorations(target)

	v.proj.Points.ClearDirty()
	for i := range v.proj.Batches {
		v.proj.Batches[i].ClearDirty()
	}
}

// uploadColors caches tinted, premultiplied decoration colors whenever a
// batch reports new colors.
func (v *View) uploadColors() {
	for si := range v.proj.Batches {
		b := &v.proj.Batches[si]
		if !b.ColorsDirty() && v.tints[si] != nil {
			continue
		}
		glow := shapeGlow[si]
		tints := make([]float32, 4*b.Len())
		for j := 0; j < b.Len(); j++ {
			c := tinsel.Color{
				R: float64(b.Colors[3*j]),
				G: float64(b.Colors[3*j+1]),
				B: float64(b.Colors[3*j+2]),
			}
			if glow.amount > 0 {
				c = c.Blend(glow.color, glow.amount)
			}
			tints[4*j] = float32(c.R)
			tints[4*j+1] = float32(c.G)
			tints[4*j+2] = float32(c.B)
			tints[4*j+3] = 1
		}
		v.tints[si] = tints
	}
}

func (v *View) drawNeedles(target *ebiten.Image) {
	pc := &v.proj.Points
	cam := v.Camera
	src := v.atlas.dotCell()
	o := float32(v.PointOpacity)

	for i := 0; i < pc.Len(); i++ {
		p := mgl64.Vec3{
			float64(pc.Positions[3*i]),
			float64(pc.Positions[3*i+1]),
			float64(pc.Positions[3*i+2]),
		}
		sx, sy, depth, ok := cam.Project(p)
		if !ok {
			continue
		}
		half := math.Max(0.75, v.PointSize*cam.PixelsPerUnit(depth)/2)
		v.appendQuad(sx, sy, half, 0, src,
			pc.Colors[3*i]*o, pc.Colors[3*i+1]*o, pc.Colors[3*i+2]*o, o)
		if len(v.verts) >= maxBatchVerts {
			v.flush(target, ebiten.BlendLighter)
		}
	}
	v.flush(target, ebiten.BlendLighter)
}

func (v *View) drawDecorations(target *ebiten.Image) {
	cam := v.Camera
	v.order = v.order[:0]
	for si := range v.proj.Batches {
		b := &v.proj.Batches[si]
		for j := range b.Transforms {
			tr := tinsel.Decompose(b.Transforms[j])
			p := mgl64.Vec3{float64(tr.Position[0]), float64(tr.Position[1]), float64(tr.Position[2])}
			sx, sy, depth, ok := cam.Project(p)
			if !ok {
				continue
			}
			v.order = append(v.order, instanceRef{
				shape: si,
				index: j,
				sx:    sx,
				sy:    sy,
				depth: depth,
				half:  math.Max(1, float64(tr.Scale)*v.DecorationSize*cam.PixelsPerUnit(depth)/2),
				roll:  float64(tr.Roll),
			})
		}
	}

	// Far to near so closer ornaments cover farther ones.
	slices.SortFunc(v.order, func(a, b instanceRef) int {
		return cmp.Compare(b.depth, a.depth)
	})

	for _, ref := range v.order {
		t := v.tints[ref.shape][4*ref.index : 4*ref.index+4]
		v.appendQuad(ref.sx, ref.sy, ref.half, ref.roll, v.atlas.cell(ref.shape), t[0], t[1], t[2], t[3])
		if len(v.verts) >= maxBatchVerts {
			v.flush(target, ebiten.BlendSourceOver)
		}
	}
	v.flush(target, ebiten.BlendSourceOver)
}

// appendQuad appends 4 vertices and 6 indices for a square sprite of
// half-size half centered on (cx, cy), rotated by roll.
func (v *View) appendQuad(cx, cy, half, roll float64, src image.Rectangle, cr, cg, cb, ca float32) {
	sin, cos := math.Sincos(roll)
	// TL, TR, BL, BR
	lx := [4]float64{-half, half, -half, half}
	ly := [4]float64{-half, -half, half, half}
	sx := [4]float32{float32(src.Min.X), float32(src.Max.X), float32(src.Min.X), float32(src.Max.X)}
	sy := [4]float32{float32(src.Min.Y), float32(src.Min.Y), float32(src.Max.Y), float32(src.Max.Y)}

	base := uint32(len(v.verts))
	for i := 0; i < 4; i++ {
		v.verts = append(v.verts, ebiten.Vertex{
			DstX:   float32(cx + cos*lx[i] - sin*ly[i]),
			DstY:   float32(cy + sin*lx[i] + cos*ly[i]),
			SrcX:   sx[i],
			SrcY:   sy[i],
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	// Two triangles: TL-TR-BL, TR-BR-BL
	v.inds = append(v.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// flush submits accumulated vertices as a single DrawTriangles32 call.
func (v *View) flush(target *ebiten.Image, blend ebiten.Blend) {
	if len(v.verts) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = blend
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.Filter = ebiten.FilterLinear
	target.DrawTriangles32(v.verts, v.inds, v.atlas.page, &op)

	v.verts = v.verts[:0]
	v.inds = v.inds[:0]
}
