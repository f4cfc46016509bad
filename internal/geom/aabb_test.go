package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFromCenterAndSize(t *testing.T) {
	b := FromCenterAndSize(mgl32.Vec3{12, 0.5, -15}, mgl32.Vec3{0.5, 1, 0.5})
	assert.Equal(t, mgl32.Vec3{11.75, 0, -15.25}, b.Min)
	assert.Equal(t, mgl32.Vec3{12.25, 1, -14.75}, b.Max)
	assert.Equal(t, mgl32.Vec3{12, 0.5, -15}, b.Center())
	assert.Equal(t, mgl32.Vec3{0.5, 1, 0.5}, b.Size())
}

func TestIntersects(t *testing.T) {
	unit := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	cases := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"overlap", AABB{Min: mgl32.Vec3{0.5, 0.5, 0.5}, Max: mgl32.Vec3{2, 2, 2}}, true},
		{"contained", AABB{Min: mgl32.Vec3{0.2, 0.2, 0.2}, Max: mgl32.Vec3{0.8, 0.8, 0.8}}, true},
		{"touching_face", AABB{Min: mgl32.Vec3{1, 0, 0}, Max: mgl32.Vec3{2, 1, 1}}, true},
		{"flat_box_inside", AABB{Min: mgl32.Vec3{0, 0.5, 0}, Max: mgl32.Vec3{1, 0.5, 1}}, true},
		{"apart_x", AABB{Min: mgl32.Vec3{1.1, 0, 0}, Max: mgl32.Vec3{2, 1, 1}}, false},
		{"apart_y", AABB{Min: mgl32.Vec3{0, -2, 0}, Max: mgl32.Vec3{1, -0.1, 1}}, false},
		{"apart_z", AABB{Min: mgl32.Vec3{0, 0, 3}, Max: mgl32.Vec3{1, 1, 4}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, unit.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(unit), "symmetric")
		})
	}
}

func TestPenetration(t *testing.T) {
	a := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{2, 2, 2}}
	b := AABB{Min: mgl32.Vec3{1.5, 1, 1}, Max: mgl32.Vec3{3, 3, 3}}
	depth, axis := a.Penetration(b)
	assert.Equal(t, 0, axis)
	assert.InDelta(t, 0.5, depth, 1e-6)

	depth, axis = a.Penetration(AABB{Min: mgl32.Vec3{2, 0, 0}, Max: mgl32.Vec3{3, 1, 1}})
	assert.Equal(t, -1, axis)
	assert.Zero(t, depth)
}

func TestFromPoints(t *testing.T) {
	b := FromPoints(mgl32.Vec3{1, -1, 2}, mgl32.Vec3{-3, 4, 0}, mgl32.Vec3{0, 0, 5})
	assert.Equal(t, mgl32.Vec3{-3, -1, 0}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 4, 5}, b.Max)
	assert.Equal(t, AABB{}, FromPoints())
}
