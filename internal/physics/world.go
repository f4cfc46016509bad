package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"

	"stairwalk/internal/geom"
)

// binding ties a body to the transform of the mesh that draws it.
type binding struct {
	body   *Body
	target *geom.Transform
}

// World holds bodies and runs a simple step: gravity, integration, AABB push-apart.
type World struct {
	Gravity  mgl32.Vec3
	Bodies   []*Body
	bindings []binding
}

// NewWorld returns a world with the given gravity (Y-up, so "down" is -Y).
func NewWorld(gravity mgl32.Vec3) *World {
	return &World{Gravity: gravity}
}

// AddBody appends a body. Order is preserved.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Bind makes Sync copy b's pose into target. target keeps its own scale.
func (w *World) Bind(b *Body, target *geom.Transform) {
	w.bindings = append(w.bindings, binding{body: b, target: target})
}

// Sync copies every bound body's position and rotation onto its mesh transform.
func (w *World) Sync() error {
	for _, bd := range w.bindings {
		if err := copier.Copy(bd.target, &bd.body.Pose); err != nil {
			return fmt.Errorf("physics: sync: %w", err)
		}
	}
	return nil
}

// Step advances the simulation by dt seconds. A world holding only static bodies is unchanged.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
	}

	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bi.Static && bj.Static {
				continue
			}
			depth, axis := bi.Bounds().Penetration(bj.Bounds())
			if axis < 0 {
				continue
			}
			// Push apart along the minimum axis; j moves toward +axis unless it is static.
			var moveI, moveJ float32
			switch {
			case bi.Static:
				moveJ = depth
			case bj.Static:
				moveI = -depth
			default:
				total := bi.Mass + bj.Mass
				moveI = -depth * (bj.Mass / total)
				moveJ = depth * (bi.Mass / total)
			}
			if bi.Position[axis] > bj.Position[axis] {
				moveI, moveJ = -moveI, -moveJ
			}
			if !bi.Static {
				bi.Position[axis] += moveI
				bi.Velocity[axis] = 0
			}
			if !bj.Static {
				bj.Position[axis] += moveJ
				bj.Velocity[axis] = 0
			}
		}
	}
}
