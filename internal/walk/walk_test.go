package walk

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"stairwalk/internal/controls"
	"stairwalk/internal/input"
	"stairwalk/internal/layout"
	"stairwalk/internal/stairs"
)

func newWalker(pos mgl32.Vec3) *Walker {
	l := layout.Default()
	st := stairs.New(l.Stairs.Transforms(), l.Stairs.StepSize())
	return New(input.New(), controls.New(pos), st)
}

func TestIdleFrameLeavesCameraUntouched(t *testing.T) {
	for _, start := range []mgl32.Vec3{{12, 5, 30}, {12, 0.5, -15}, {0, 3.3, 0}} {
		w := newWalker(start)
		w.Keys.SetKey("Space", true)
		f := w.Tick()
		assert.False(t, f.Moved)
		assert.Equal(t, start, w.Camera.Position, "no gravity without movement")
	}
}

func TestClimbFirstStep(t *testing.T) {
	w := newWalker(mgl32.Vec3{12, 0.5, -15})
	w.Keys.SetKey(input.ArrowUp, true)
	f := w.Tick()
	assert.True(t, f.Moved)
	assert.True(t, f.OnStair)
	assert.Equal(t, 0, f.Step)
	assert.GreaterOrEqual(t, w.Camera.Position.Y(), float32(0.6))
}

func TestFallWhileWalkingAway(t *testing.T) {
	w := newWalker(mgl32.Vec3{12, 5, 30})
	w.Keys.SetKey(input.ArrowDown, true)
	f := w.Tick()
	assert.True(t, f.Moved)
	assert.False(t, f.OnStair)
	assert.InDelta(t, 4.9, w.Camera.Position.Y(), 1e-5)
	assert.InDelta(t, 30.1, w.Camera.Position.Z(), 1e-5)

	for i := 0; i < 100; i++ {
		w.Tick()
	}
	assert.Equal(t, float32(stairs.MinHeight), w.Camera.Position.Y())
}

func TestFallStopsWhenKeysReleased(t *testing.T) {
	w := newWalker(mgl32.Vec3{0, 3, 0})
	w.Keys.SetKey(input.ArrowRight, true)
	w.Tick()
	w.Keys.SetKey(input.ArrowRight, false)
	y := w.Camera.Position.Y()
	for i := 0; i < 10; i++ {
		w.Tick()
	}
	assert.Equal(t, y, w.Camera.Position.Y(), "suspended mid-air")
}

func TestOppositeKeysCancelButStillResolve(t *testing.T) {
	w := newWalker(mgl32.Vec3{0, 2, 0})
	w.Keys.SetKey(input.ArrowLeft, true)
	w.Keys.SetKey(input.ArrowRight, true)
	f := w.Tick()
	assert.True(t, f.Moved)
	assert.InDelta(t, 0, w.Camera.Position.X(), 1e-6)
	assert.InDelta(t, 1.9, w.Camera.Position.Y(), 1e-5)
}

func TestWalkUpTheStaircase(t *testing.T) {
	w := newWalker(mgl32.Vec3{12, 1, 5})
	w.Keys.SetKey(input.ArrowUp, true)
	maxStep := -1
	for i := 0; i < 600; i++ {
		f := w.Tick()
		maxStep = max(maxStep, f.Step)
	}
	assert.Greater(t, maxStep, 0, "reached beyond the first step")
	assert.Less(t, w.Camera.Position.Z(), float32(-15))
}
