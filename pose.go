package spline

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tphakala/go-trajectory-spline/internal/lie"
	"gonum.org/v1/gonum/num/quat"
)

// Pose is a rigid transform: a rotation followed by a translation.
type Pose struct {
	Rotation    mgl64.Mat3
	Translation mgl64.Vec3
}

// IdentityPose returns the pose that leaves every point in place.
func IdentityPose() Pose {
	return Pose{Rotation: mgl64.Ident3()}
}

// NewPose builds a pose from a rotation vector (axis times angle in radians)
// and a translation.
func NewPose(rotationVector, translation mgl64.Vec3) Pose {
	return Pose{
		Rotation:    lie.Exp(rotationVector),
		Translation: translation,
	}
}

// PoseFromMatrix splits a 4×4 homogeneous transform into a Pose. The bottom
// row is ignored.
func PoseFromMatrix(m mgl64.Mat4) Pose {
	return Pose{
		Rotation:    m.Mat3(),
		Translation: m.Col(3).Vec3(),
	}
}

// Matrix returns the 4×4 homogeneous transform of the pose.
func (p Pose) Matrix() mgl64.Mat4 {
	m := p.Rotation.Mat4()
	m.SetCol(3, p.Translation.Vec4(1))
	return m
}

// RotationVector returns Log of the rotation.
func (p Pose) RotationVector() mgl64.Vec3 {
	return lie.Log(p.Rotation)
}

// Quaternion returns the rotation as a unit quaternion.
func (p Pose) Quaternion() quat.Number {
	q := mgl64.Mat4ToQuat(p.Rotation.Mat4()).Normalize()
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// Apply transforms the point v.
func (p Pose) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return p.Rotation.Mul3x1(v).Add(p.Translation)
}

// Compose returns p ∘ q, the pose that applies q first and then p.
func (p Pose) Compose(q Pose) Pose {
	return Pose{
		Rotation:    p.Rotation.Mul3(q.Rotation),
		Translation: p.Apply(q.Translation),
	}
}

// Inverse returns the pose that undoes p. The rotation is inverted by
// transposition.
func (p Pose) Inverse() Pose {
	rt := p.Rotation.Transpose()
	return Pose{
		Rotation:    rt,
		Translation: rt.Mul3x1(p.Translation).Mul(-1),
	}
}
