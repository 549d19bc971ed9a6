package tinsel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// yawRotation rotates points about the Y axis by a precomputed angle.
// Layout matches mgl64.HomogRotate3DY.
type yawRotation struct {
	sin, cos float64
}

func newYawRotation(angle float64) yawRotation {
	s, c := math.Sincos(angle)
	return yawRotation{sin: s, cos: c}
}

func (r yawRotation) apply(p Vec3) Vec3 {
	return Vec3{
		r.cos*p[0] + r.sin*p[2],
		p[1],
		-r.sin*p[0] + r.cos*p[2],
	}
}

// instanceMatrix composes the world transform of one decoration.
//
// Composition order (applied right to left):
//
//	Scale(s) -> RotateX -> RotateY -> RotateZ -> Translate(pos) -> Yaw
//
// which is Yaw * T * Rx * Ry * Rz * S.
func instanceMatrix(yaw mgl64.Mat4, pos, phase Vec3, scale float64) mgl64.Mat4 {
	m := yaw.Mul4(mgl64.Translate3D(pos[0], pos[1], pos[2]))
	m = m.Mul4(mgl64.HomogRotate3DX(phase[0]))
	m = m.Mul4(mgl64.HomogRotate3DY(phase[1]))
	m = m.Mul4(mgl64.HomogRotate3DZ(phase[2]))
	return m.Mul4(mgl64.Scale3D(scale, scale, scale))
}

// mat4f32 narrows a double-precision matrix for GPU upload.
func mat4f32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}

// InstanceTransform is the decomposed form of an instance matrix, for hosts
// that draw billboards instead of meshes.
type InstanceTransform struct {
	Position mgl32.Vec3
	Scale    float32
	// Roll is the screen-plane rotation hint: the instance's local X axis
	// angle around the view axis, taken from the matrix.
	Roll float32
}

// Decompose extracts translation, uniform scale and a roll angle from an
// instance matrix built by Sync.
func Decompose(m mgl32.Mat4) InstanceTransform {
	x := m.Col(0).Vec3()
	return InstanceTransform{
		Position: m.Col(3).Vec3(),
		Scale:    x.Len(),
		Roll:     float32(math.Atan2(float64(x[1]), float64(x[0]))),
	}
}
