package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: text is rebuilt every N frames to limit allocations.
	updateInterval = 30
)

// Debug draws optional top-right overlays: FPS, heap use and the walker's position.
// All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowPosition bool
	frameCount   uint32
	fpsText      string
	memText      string
	posText      string
	memStats     runtime.MemStats
	position     mgl32.Vec3
	onStair      bool
	step         int
}

// New returns a Debug with every overlay hidden.
func New() *Debug {
	return &Debug{}
}

// SetWalker records the camera state shown by the position overlay. Call once per frame.
func (d *Debug) SetWalker(pos mgl32.Vec3, onStair bool, step int) {
	d.position, d.onStair, d.step = pos, onStair, step
}

// PositionText formats the position overlay line.
func PositionText(pos mgl32.Vec3, onStair bool, step int) string {
	if onStair {
		return fmt.Sprintf("Pos: %.2f, %.2f, %.2f  stair %d", pos.X(), pos.Y(), pos.Z(), step)
	}
	return fmt.Sprintf("Pos: %.2f, %.2f, %.2f", pos.X(), pos.Y(), pos.Z())
}

// Draw renders the enabled overlays. Call after the 3D scene.
func (d *Debug) Draw() {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0
	y := int32(padding)
	if d.ShowFPS {
		if refresh || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if refresh || d.memText == "" {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		drawRight(d.memText, y)
		y += lineHeight
	}
	if d.ShowPosition {
		// Position changes every frame while walking; no throttling.
		d.posText = PositionText(d.position, d.onStair, d.step)
		drawRight(d.posText, y)
	}
}

func drawRight(text string, y int32) {
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
