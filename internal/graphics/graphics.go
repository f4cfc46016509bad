package graphics

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window. Width or Height 0 uses the primary monitor's size.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
}

// Loop is driven once per display frame.
type Loop interface {
	// Resize runs once after the window opens and again whenever its size changes.
	Resize(width, height int)
	// Update runs input and simulation for the frame.
	Update()
	// Draw renders between BeginDrawing and EndDrawing after the screen is cleared.
	Draw()
	// Close releases GPU resources while the context is still current.
	Close()
}

// Run opens the window and drives loop until the window is closed or ctx ends.
// Exactly one frame runs at a time; EndDrawing blocks until the next frame is due.
// Escape does not quit, so it can release the pointer.
func Run(ctx context.Context, opts Options, loop Loop) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(opts.TargetFPS))

	defer loop.Close()

	loop.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if rl.IsWindowResized() {
			loop.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		loop.Update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		loop.Draw()
		rl.EndDrawing()
	}
}
