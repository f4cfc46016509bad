package stairs

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stairwalk/internal/geom"
	"stairwalk/internal/layout"
)

func defaultStaircase() *Staircase {
	l := layout.Default()
	return New(l.Stairs.Transforms(), l.Stairs.StepSize())
}

func TestBoxesAscend(t *testing.T) {
	s := defaultStaircase()
	require.Equal(t, 15, s.Len())
	for i := 0; i < s.Len()-1; i++ {
		a, b := s.Box(i), s.Box(i+1)
		assert.Less(t, a.Min.Y(), b.Min.Y(), "step %d min.y", i)
		assert.Greater(t, a.Min.Z(), b.Min.Z(), "step %d min.z", i)
	}
}

func TestFirstStepBox(t *testing.T) {
	b := defaultStaircase().Box(0)
	assert.InDelta(t, 0, b.Min.Y(), 1e-6)
	assert.InDelta(t, 0.5, b.Max.Y(), 1e-6)
	assert.InDelta(t, -15.5, b.Min.Z(), 1e-6)
	assert.InDelta(t, -14.5, b.Max.Z(), 1e-6)
	assert.InDelta(t, 7, b.Min.X(), 1e-6)
	assert.InDelta(t, 17, b.Max.X(), 1e-6)
}

func TestResolveClimbsFirstStep(t *testing.T) {
	s := defaultStaircase()
	pos := mgl32.Vec3{12, 0.5, -15.1}
	res := s.Resolve(&pos)
	assert.True(t, res.OnStair)
	assert.Equal(t, 0, res.Step)
	// Raised to 0.6, then by the full penetration of 1.
	assert.InDelta(t, 1.6, pos.Y(), 1e-5)
	assert.GreaterOrEqual(t, pos.Y(), float32(0.6))
	assert.Equal(t, float32(12), pos.X(), "only height changes")
	assert.Equal(t, float32(-15.1), pos.Z())
}

func TestResolveFirstMatchWins(t *testing.T) {
	low := geom.AABB{Min: mgl32.Vec3{-1, 0, -1}, Max: mgl32.Vec3{1, 0.2, 1}}
	high := geom.AABB{Min: mgl32.Vec3{-1, 0.1, -1}, Max: mgl32.Vec3{1, 5, 1}}
	s := FromBoxes([]geom.AABB{low, high})
	pos := mgl32.Vec3{0, 0.5, 0}
	res := s.Resolve(&pos)
	assert.Equal(t, 0, res.Step)
	// max(0.5, 0.3) = 0.5, then penetration 1.0 - 0 = 1.
	assert.InDelta(t, 1.5, pos.Y(), 1e-6)
	assert.Less(t, pos.Y(), high.Max.Y()+StepClearance, "second box never consulted")
}

func TestResolveNoPenetrationWhenAboveBottom(t *testing.T) {
	// Camera box top exactly touches the box bottom, so penetration is zero.
	box := geom.AABB{Min: mgl32.Vec3{-1, 1, -1}, Max: mgl32.Vec3{1, 1.2, 1}}
	s := FromBoxes([]geom.AABB{box})
	pos := mgl32.Vec3{0, 0.5, 0} // camera box y in [0, 1], touching
	res := s.Resolve(&pos)
	assert.True(t, res.OnStair)
	assert.InDelta(t, 1.3, pos.Y(), 1e-6, "only the clearance raise applies")
}

func TestResolveFalls(t *testing.T) {
	s := defaultStaircase()
	cases := []struct {
		name  string
		start float32
		want  float32
	}{
		{"high", 5, 4.9},
		{"near_floor", 0.55, 0.5},
		{"at_floor", 0.5, 0.5},
		{"below_floor", 0.3, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos := mgl32.Vec3{12, c.start, 30}
			res := s.Resolve(&pos)
			assert.False(t, res.OnStair)
			assert.Equal(t, -1, res.Step)
			assert.InDelta(t, c.want, pos.Y(), 1e-5)
		})
	}
}

func TestResolveNeverBelowMatchedStepTop(t *testing.T) {
	s := defaultStaircase()
	rng := rand.New(rand.NewSource(7))
	hits := 0
	for n := 0; n < 5000; n++ {
		pos := mgl32.Vec3{
			6 + rng.Float32()*12,
			rng.Float32() * 9,
			-31 + rng.Float32()*18,
		}
		cam := CameraBox(pos)
		first := -1
		for i, b := range s.Boxes() {
			if cam.Intersects(b) {
				first = i
				break
			}
		}
		res := s.Resolve(&pos)
		require.Equal(t, first, res.Step)
		if res.OnStair {
			hits++
			assert.GreaterOrEqual(t, pos.Y(), s.Box(res.Step).Max.Y()+StepClearance)
		}
	}
	assert.Positive(t, hits, "sample should hit some steps")
}
