package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stairwalk/internal/geom"
)

func groundBody() *Body {
	rot := geom.FromEulerXYZ(-mgl32.DegToRad(90), 0, 0)
	return NewBody(Pose{Rotation: rot}, mgl32.Vec3{20, 40, 0.1}, 0, true)
}

func TestGroundBodyBoundsLieFlat(t *testing.T) {
	b := groundBody().Bounds()
	assert.InDelta(t, -20, b.Min.X(), 1e-4)
	assert.InDelta(t, 20, b.Max.X(), 1e-4)
	assert.InDelta(t, -0.1, b.Min.Y(), 1e-4)
	assert.InDelta(t, 0.1, b.Max.Y(), 1e-4)
	assert.InDelta(t, -40, b.Min.Z(), 1e-4)
	assert.InDelta(t, 40, b.Max.Z(), 1e-4)
}

func TestStaticWorldStepIsNoop(t *testing.T) {
	w := NewWorld(mgl32.Vec3{0, -9.82, 0})
	g := groundBody()
	w.AddBody(g)
	before := g.Pose
	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60)
	}
	assert.Equal(t, before, g.Pose)
	assert.Equal(t, mgl32.Vec3{}, g.Velocity)
}

func TestDynamicBodyLandsOnGround(t *testing.T) {
	w := NewWorld(mgl32.Vec3{0, -9.82, 0})
	w.AddBody(groundBody())
	box := NewBody(Pose{Position: mgl32.Vec3{0, 2, 0}}, mgl32.Vec3{0.5, 0.5, 0.5}, 1, false)
	w.AddBody(box)
	for i := 0; i < 240; i++ {
		w.Step(1.0 / 60)
	}
	assert.InDelta(t, 0.6, box.Position.Y(), 0.05, "rests on top of the ground slab")
}

func TestSyncCopiesPoseKeepsScale(t *testing.T) {
	w := NewWorld(mgl32.Vec3{})
	g := groundBody()
	g.Position = mgl32.Vec3{1, 2, 3}
	w.AddBody(g)

	mesh := geom.Identity()
	mesh.Scale = mgl32.Vec3{40, 80, 1}
	w.Bind(g, &mesh)
	require.NoError(t, w.Sync())

	assert.Equal(t, g.Position, mesh.Position)
	assert.Equal(t, g.Rotation, mesh.Rotation)
	assert.Equal(t, mgl32.Vec3{40, 80, 1}, mesh.Scale)
}

func TestNewBodyDefaults(t *testing.T) {
	b := NewBody(Pose{}, mgl32.Vec3{1, 1, 1}, -3, false)
	assert.Equal(t, float32(1), b.Mass)
	assert.Equal(t, mgl32.QuatIdent(), b.Rotation)
}
