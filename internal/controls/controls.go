package controls

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// lookScale converts mouse delta pixels to radians at PointerSpeed 1.
	lookScale = 0.002
	// maxPitch keeps the camera from flipping over the poles.
	maxPitch = math32.Pi / 2
)

// WorldUp is the up axis used to flatten movement onto the ground plane.
var WorldUp = mgl32.Vec3{0, 1, 0}

// FirstPerson is a pointer-locked first-person camera. Orientation is yaw about world Y
// followed by pitch about the camera's X axis; yaw 0, pitch 0 faces -Z.
// Movement helpers only change Position; collision is the caller's job.
type FirstPerson struct {
	Position     mgl32.Vec3
	Yaw          float32
	Pitch        float32
	PointerSpeed float32
	locked       bool
}

// New returns controls at pos facing -Z with pointer speed 1. The pointer starts unlocked.
func New(pos mgl32.Vec3) *FirstPerson {
	return &FirstPerson{Position: pos, PointerSpeed: 1}
}

// Lock captures the pointer so Look starts turning the camera.
func (c *FirstPerson) Lock() { c.locked = true }

// Unlock releases the pointer. Keyboard movement still applies while unlocked.
func (c *FirstPerson) Unlock() { c.locked = false }

// IsLocked reports whether mouse look is active.
func (c *FirstPerson) IsLocked() bool { return c.locked }

// Look turns the camera by a mouse delta in pixels. Ignored while unlocked.
func (c *FirstPerson) Look(dx, dy float32) {
	if !c.locked {
		return
	}
	c.Yaw -= dx * lookScale * c.PointerSpeed
	c.Pitch -= dy * lookScale * c.PointerSpeed
	c.Pitch = math32.Max(-maxPitch, math32.Min(maxPitch, c.Pitch))
}

// Right returns the camera's local X axis in world space. Pitch does not affect it.
func (c *FirstPerson) Right() mgl32.Vec3 {
	s, co := math32.Sincos(c.Yaw)
	return mgl32.Vec3{co, 0, -s}
}

// Forward returns the walking direction: the camera heading flattened onto the XZ plane.
func (c *FirstPerson) Forward() mgl32.Vec3 {
	return WorldUp.Cross(c.Right())
}

// Direction returns the full view direction including pitch.
func (c *FirstPerson) Direction() mgl32.Vec3 {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	return mgl32.Vec3{-sy * cp, sp, -cy * cp}
}

// Target returns a point one unit ahead of the camera along Direction.
func (c *FirstPerson) Target() mgl32.Vec3 {
	return c.Position.Add(c.Direction())
}

// MoveForward walks distance along Forward; negative walks backward.
func (c *FirstPerson) MoveForward(distance float32) {
	c.Position = c.Position.Add(c.Forward().Mul(distance))
}

// MoveRight strafes distance along Right; negative strafes left.
func (c *FirstPerson) MoveRight(distance float32) {
	c.Position = c.Position.Add(c.Right().Mul(distance))
}
