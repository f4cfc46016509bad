package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"stairwalk/internal/geom"
)

// Pose is the part of a body's state that visual meshes mirror.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Body is a rigid box. Static bodies are never integrated or pushed.
type Body struct {
	Pose
	Velocity    mgl32.Vec3
	HalfExtents mgl32.Vec3
	Mass        float32
	Static      bool
}

// NewBody returns a body with the given pose and box half extents. Velocity is zero.
// A non-positive mass is treated as 1.
func NewBody(pose Pose, halfExtents mgl32.Vec3, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	if pose.Rotation == (mgl32.Quat{}) {
		pose.Rotation = mgl32.QuatIdent()
	}
	return &Body{
		Pose:        pose,
		HalfExtents: halfExtents,
		Mass:        mass,
		Static:      static,
	}
}

// Bounds returns the world AABB of the rotated box.
func (b *Body) Bounds() geom.AABB {
	t := geom.Identity()
	t.Position = b.Position
	t.Rotation = b.Rotation
	return t.Bounds(b.HalfExtents.Mul(2))
}
