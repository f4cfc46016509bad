package stairs

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"stairwalk/internal/geom"
)

const (
	// StepClearance is how far above a step's top the camera is lifted.
	StepClearance = 0.1
	// FallStep is the per-frame descent when the camera is not on a step.
	FallStep = 0.1
	// MinHeight is the lowest the camera may fall to.
	MinHeight = 0.5
)

// CameraSize is the full extents of the box tested against the steps.
var CameraSize = mgl32.Vec3{0.5, 1, 0.5}

// Staircase holds the step boxes, bottom step first. Boxes never change after New.
type Staircase struct {
	boxes []geom.AABB
}

// New computes one box per placed step of the given full size.
func New(placements []geom.Transform, stepSize mgl32.Vec3) *Staircase {
	boxes := make([]geom.AABB, len(placements))
	for i, p := range placements {
		boxes[i] = p.Bounds(stepSize)
	}
	return &Staircase{boxes: boxes}
}

// FromBoxes wraps precomputed boxes. The slice is copied.
func FromBoxes(boxes []geom.AABB) *Staircase {
	return &Staircase{boxes: append([]geom.AABB(nil), boxes...)}
}

// Len returns the number of steps.
func (s *Staircase) Len() int { return len(s.boxes) }

// Box returns the box of step i.
func (s *Staircase) Box(i int) geom.AABB { return s.boxes[i] }

// Boxes returns a copy of all step boxes in order.
func (s *Staircase) Boxes() []geom.AABB {
	return append([]geom.AABB(nil), s.boxes...)
}

// CameraBox returns the collision box centered on pos.
func CameraBox(pos mgl32.Vec3) geom.AABB {
	return geom.FromCenterAndSize(pos, CameraSize)
}

// Result describes one resolution pass.
type Result struct {
	OnStair bool
	Step    int // index of the matched step, -1 when OnStair is false
}

// Resolve adjusts pos.Y against the steps and reports which step, if any, it stood on.
//
// The first step whose box touches the camera box wins; later steps are not checked.
// On a match the camera is raised to at least the step top plus StepClearance, and then
// additionally by the camera box's penetration below the step bottom, measured with the
// box from before the raise. Without a match the camera drops FallStep, never below
// MinHeight. The test is against the current position only, not swept.
func (s *Staircase) Resolve(pos *mgl32.Vec3) Result {
	cam := CameraBox(*pos)
	for i, box := range s.boxes {
		if !cam.Intersects(box) {
			continue
		}
		pos[1] = math32.Max(pos[1], box.Max.Y()+StepClearance)
		// Applied on top of the raise above; both corrections land in the same frame.
		if pen := cam.Max.Y() - box.Min.Y(); pen > 0 {
			pos[1] += pen
		}
		return Result{OnStair: true, Step: i}
	}
	pos[1] = math32.Max(pos[1]-FallStep, MinHeight)
	return Result{Step: -1}
}
