package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d of %v", i, got)
	}
}

func TestBoundsUnrotated(t *testing.T) {
	tr := At(mgl32.Vec3{12, 0.25, -15}, 0, 0, 0)
	b := tr.Bounds(mgl32.Vec3{10, 0.5, 1})
	assertVecNear(t, mgl32.Vec3{7, 0, -15.5}, b.Min)
	assertVecNear(t, mgl32.Vec3{17, 0.5, -14.5}, b.Max)
}

func TestBoundsPlaneLaidFlat(t *testing.T) {
	// A 40x80 XY plane rotated -90 degrees about X lies on the XZ plane.
	tr := At(mgl32.Vec3{}, -math.Pi/2, 0, 0)
	b := tr.Bounds(mgl32.Vec3{40, 80, 0})
	assertVecNear(t, mgl32.Vec3{-20, 0, -40}, b.Min)
	assertVecNear(t, mgl32.Vec3{20, 0, 40}, b.Max)
}

func TestMatrixZeroScaleDefaultsToUnit(t *testing.T) {
	tr := Transform{Position: mgl32.Vec3{1, 2, 3}, Rotation: mgl32.QuatIdent()}
	assertVecNear(t, mgl32.Vec3{2, 3, 4}, tr.Apply(mgl32.Vec3{1, 1, 1}))
}
