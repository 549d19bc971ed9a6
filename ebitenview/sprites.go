package ebitenview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/tinsel"
)

// cellSize is the pixel size of one shape cell in the atlas.
const cellSize = 64

// shapeAtlas is a single page holding one white sprite per decoration shape,
// laid out left to right in tinsel.Shapes order, plus a soft dot for needles
// in the last cell. Keeping everything on one page lets a whole frame of
// decorations go out in one DrawTriangles32 call.
type shapeAtlas struct {
	page *ebiten.Image
}

func newShapeAtlas() *shapeAtlas {
	n := len(tinsel.Shapes) + 1
	page := ebiten.NewImage(cellSize*n, cellSize)
	white := color.White
	half := float32(cellSize) / 2

	for i, shape := range tinsel.Shapes {
		ox := float32(i * cellSize)
		switch shape {
		case tinsel.ShapeSphere:
			vector.DrawFilledCircle(page, ox+half, half, half-2, white, true)
		case tinsel.ShapeBox:
			vector.DrawFilledRect(page, ox+10, 10, cellSize-20, cellSize-20, white, true)
		case tinsel.ShapeOctahedron:
			drawDiamond(page, ox+half, half, half-4)
		case tinsel.ShapeTorus:
			vector.StrokeCircle(page, ox+half, half, half-10, 12, white, true)
		}
	}

	// Needle dot: concentric circles with rising alpha for a soft falloff.
	ox := float32(len(tinsel.Shapes) * cellSize)
	for r := half - 2; r > 2; r -= 6 {
		a := uint8(255 * (1 - r/half) * 0.6)
		vector.DrawFilledCircle(page, ox+half, half, r, color.NRGBA{255, 255, 255, a}, true)
	}
	vector.DrawFilledCircle(page, ox+half, half, half/4, white, true)

	return &shapeAtlas{page: page}
}

// cell returns the source rectangle of shape index i.
func (a *shapeAtlas) cell(i int) image.Rectangle {
	return image.Rect(i*cellSize, 0, (i+1)*cellSize, cellSize)
}

// dotCell returns the source rectangle of the needle dot.
func (a *shapeAtlas) dotCell() image.Rectangle {
	return a.cell(len(tinsel.Shapes))
}

// drawDiamond fills a square rotated 45° as two triangles.
func drawDiamond(dst *ebiten.Image, cx, cy, r float32) {
	src := ebiten.NewImage(1, 1)
	src.Fill(color.White)
	vs := []ebiten.Vertex{
		{DstX: cx, DstY: cy - r, SrcX: 0.5, SrcY: 0.5, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: cx + r, DstY: cy, SrcX: 0.5, SrcY: 0.5, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: cx, DstY: cy + r, SrcX: 0.5, SrcY: 0.5, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: cx - r, DstY: cy, SrcX: 0.5, SrcY: 0.5, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
	}
	is := []uint32{0, 1, 2, 0, 2, 3}
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	dst.DrawTriangles32(vs, is, src, &op)
}
