package geom

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned bounding box given by per-axis min/max extents.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// FromCenterAndSize returns the box centered on c with full extents size.
func FromCenterAndSize(c, size mgl32.Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{Min: c.Sub(half), Max: c.Add(half)}
}

// FromPoints returns the smallest box containing every point. Zero points give an empty box.
func FromPoints(pts ...mgl32.Vec3) AABB {
	if len(pts) == 0 {
		return AABB{}
	}
	b := AABB{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.ExpandByPoint(p)
	}
	return b
}

// ExpandByPoint grows the box so that it contains p.
func (b AABB) ExpandByPoint(p mgl32.Vec3) AABB {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
	return b
}

// Intersects reports whether the two boxes overlap on all three axes.
// Touching faces count as overlap.
func (b AABB) Intersects(o AABB) bool {
	return !(o.Max.X() < b.Min.X() || o.Min.X() > b.Max.X() ||
		o.Max.Y() < b.Min.Y() || o.Min.Y() > b.Max.Y() ||
		o.Max.Z() < b.Min.Z() || o.Min.Z() > b.Max.Z())
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the full extents of the box.
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Penetration returns the overlap depth and axis (0=X, 1=Y, 2=Z) of minimum penetration.
// If the boxes do not strictly overlap it returns (0, -1).
func (b AABB) Penetration(o AABB) (depth float32, axis int) {
	var overlap [3]float32
	for i := 0; i < 3; i++ {
		overlap[i] = min(b.Max[i], o.Max[i]) - max(b.Min[i], o.Min[i])
		if overlap[i] <= 0 {
			return 0, -1
		}
	}
	depth, axis = overlap[0], 0
	for i := 1; i < 3; i++ {
		if overlap[i] < depth {
			depth, axis = overlap[i], i
		}
	}
	return depth, axis
}
