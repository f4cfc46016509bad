package view

import "github.com/go-gl/mathgl/mgl32"

// Perspective tracks the projection parameters and the render target size.
// Fovy is the vertical field of view in degrees.
type Perspective struct {
	Fovy   float32
	Near   float32
	Far    float32
	Aspect float32
	Width  int
	Height int
}

// NewPerspective returns a projection sized to width x height.
func NewPerspective(fovy, near, far float32, width, height int) *Perspective {
	p := &Perspective{Fovy: fovy, Near: near, Far: far}
	p.Resize(width, height)
	return p
}

// Resize updates the aspect ratio and render size. Calling it again with the same
// dimensions leaves the state unchanged. A zero height (minimized window) keeps the
// previous aspect.
func (p *Perspective) Resize(width, height int) {
	p.Width, p.Height = width, height
	if height > 0 {
		p.Aspect = float32(width) / float32(height)
	}
}

// Matrix returns the projection matrix.
func (p *Perspective) Matrix() mgl32.Mat4 {
	aspect := p.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(p.Fovy), aspect, p.Near, p.Far)
}
