package transform

import (
	"github.com/chewxy/math32"

	"github.com/FellOffFuji/vmdlpoints/internal/model"
)

// RotationOrder is the axis application order for vmdl attachment angles:
// rotate about Y first, then Z, then X. This encodes the source format's
// angle convention and must not change.
const RotationOrder = "YZX"

// Convert turns a valid attachment record into a scene placement. The
// position passes through unchanged in document units; the angles convert
// from degrees to radians under the YZX order.
func Convert(att model.Attachment) model.Placement {
	return model.Placement{
		Name:       att.Name,
		ParentBone: att.ParentBone,
		Position: model.Vec3{
			X: float32(att.Origin[0]),
			Y: float32(att.Origin[1]),
			Z: float32(att.Origin[2]),
		},
		Rotation: EulerFromDegrees(att.Angles),
	}
}

// EulerFromDegrees builds the YZX rotation from a 3-component angle vector
// in degrees.
func EulerFromDegrees(deg []float64) model.Euler {
	return model.Euler{
		Angles: [3]float32{
			Radians(float32(deg[0])),
			Radians(float32(deg[1])),
			Radians(float32(deg[2])),
		},
		Order: RotationOrder,
	}
}

// Radians converts degrees to radians
func Radians(deg float32) float32 {
	return deg * (math32.Pi / 180)
}

// Mat3 is a row-major 3x3 rotation matrix acting on column vectors
type Mat3 [3][3]float32

// Identity returns the identity matrix
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mul returns m * n
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}

// Apply rotates v by m
func (m Mat3) Apply(v model.Vec3) model.Vec3 {
	return model.Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Matrix composes the rotation matrix for e. Rotations are intrinsic and
// applied in e.Order: with order YZX, R = Ry(a0) * Rz(a1) * Rx(a2).
func Matrix(e model.Euler) Mat3 {
	m := Identity()
	for i := 0; i < len(e.Order) && i < 3; i++ {
		m = m.Mul(axisRotation(e.Order[i], e.Angles[i]))
	}
	return m
}

// axisRotation returns the right-handed rotation about a single axis
func axisRotation(axis byte, angle float32) Mat3 {
	s, c := math32.Sincos(angle)
	switch axis {
	case 'X', 'x':
		return Mat3{
			{1, 0, 0},
			{0, c, -s},
			{0, s, c},
		}
	case 'Y', 'y':
		return Mat3{
			{c, 0, s},
			{0, 1, 0},
			{-s, 0, c},
		}
	case 'Z', 'z':
		return Mat3{
			{c, -s, 0},
			{s, c, 0},
			{0, 0, 1},
		}
	}
	return Identity()
}
