package walk

import (
	"stairwalk/internal/controls"
	"stairwalk/internal/input"
	"stairwalk/internal/stairs"
)

// DefaultSpeed is the distance moved per frame per pressed key.
const DefaultSpeed = 0.1

// Frame reports what one Tick did.
type Frame struct {
	Moved   bool
	OnStair bool
	Step    int // matched step index, -1 if none or not moved
}

// Walker applies directional keys to the camera and resolves stairs once per frame.
type Walker struct {
	Keys   *input.State
	Camera *controls.FirstPerson
	Stairs *stairs.Staircase
	Speed  float32
}

// New returns a Walker moving DefaultSpeed per frame.
func New(keys *input.State, cam *controls.FirstPerson, st *stairs.Staircase) *Walker {
	return &Walker{Keys: keys, Camera: cam, Stairs: st, Speed: DefaultSpeed}
}

// Tick runs one frame of movement. Every pressed key applies, so opposite keys cancel.
// Stair resolution and falling only run when at least one key is pressed: a camera that
// stops mid-fall stays where it is until the next key press.
func (w *Walker) Tick() Frame {
	moved := false
	if w.Keys.IsPressed(input.ArrowUp) {
		w.Camera.MoveForward(w.Speed)
		moved = true
	}
	if w.Keys.IsPressed(input.ArrowDown) {
		w.Camera.MoveForward(-w.Speed)
		moved = true
	}
	if w.Keys.IsPressed(input.ArrowLeft) {
		w.Camera.MoveRight(-w.Speed)
		moved = true
	}
	if w.Keys.IsPressed(input.ArrowRight) {
		w.Camera.MoveRight(w.Speed)
		moved = true
	}
	if !moved {
		return Frame{Step: -1}
	}
	res := w.Stairs.Resolve(&w.Camera.Position)
	return Frame{Moved: true, OnStair: res.OnStair, Step: res.Step}
}
