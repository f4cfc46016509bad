package geom

import "github.com/go-gl/mathgl/mgl32"

// Transform places an object in the world: translation, rotation, then per-axis scale.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Identity returns a transform at the origin with no rotation and unit scale.
func Identity() Transform {
	return Transform{Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}}
}

// At returns a transform at pos rotated by the XYZ Euler angles (radians).
func At(pos mgl32.Vec3, rx, ry, rz float32) Transform {
	t := Identity()
	t.Position = pos
	t.Rotation = FromEulerXYZ(rx, ry, rz)
	return t
}

// FromEulerXYZ builds a quaternion from Euler angles in XYZ order (R = Rx * Ry * Rz).
func FromEulerXYZ(rx, ry, rz float32) mgl32.Quat {
	return mgl32.AnglesToQuat(rx, ry, rz, mgl32.XYZ)
}

// Matrix returns the model matrix T * R * S.
func (t Transform) Matrix() mgl32.Mat4 {
	s := t.Scale
	if s == (mgl32.Vec3{}) {
		s = mgl32.Vec3{1, 1, 1}
	}
	return mgl32.Translate3D(t.Position.Elem()).
		Mul4(t.Rotation.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(s.Elem()))
}

// Apply maps a point from local space into world space.
func (t Transform) Apply(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, t.Matrix())
}

// Bounds returns the world AABB of a local box of the given full size centered on the origin
// after placing it with t. Zero extents are allowed (planes).
func (t Transform) Bounds(size mgl32.Vec3) AABB {
	h := size.Mul(0.5)
	corners := make([]mgl32.Vec3, 0, 8)
	for _, sx := range [2]float32{-1, 1} {
		for _, sy := range [2]float32{-1, 1} {
			for _, sz := range [2]float32{-1, 1} {
				corners = append(corners, t.Apply(mgl32.Vec3{sx * h.X(), sy * h.Y(), sz * h.Z()}))
			}
		}
	}
	return FromPoints(corners...)
}
