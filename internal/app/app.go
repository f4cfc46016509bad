package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"stairwalk/internal/commands"
	"stairwalk/internal/controls"
	"stairwalk/internal/debug"
	"stairwalk/internal/engineconfig"
	"stairwalk/internal/input"
	"stairwalk/internal/layout"
	"stairwalk/internal/logger"
	"stairwalk/internal/physics"
	"stairwalk/internal/scene"
	"stairwalk/internal/stairs"
	"stairwalk/internal/terminal"
	"stairwalk/internal/view"
	"stairwalk/internal/walk"
)

const hintText = "Click to look around. Arrow keys walk. ` opens the console."

// arrowKeys maps raylib key codes to the walk loop's identifiers.
var arrowKeys = []struct {
	key int32
	id  string
}{
	{rl.KeyUp, input.ArrowUp},
	{rl.KeyDown, input.ArrowDown},
	{rl.KeyLeft, input.ArrowLeft},
	{rl.KeyRight, input.ArrowRight},
}

// Config is everything App needs from the entry point.
type Config struct {
	Layout     layout.Layout
	TextureDir string
	Prefs      engineconfig.EnginePrefs
	PrefsPath  string
	Log        *logger.Logger
}

// App is the application context: it owns the camera, input, stairs, physics world,
// scene and overlays, and is driven by graphics.Run one frame at a time.
type App struct {
	log       *logger.Logger
	prefs     engineconfig.EnginePrefs
	prefsPath string
	watcher   *engineconfig.Watcher

	keys   *input.State
	cam    *controls.FirstPerson
	walker *walk.Walker
	world  *physics.World
	scene  *scene.Scene
	view   *view.Perspective
	debug  *debug.Debug
	term   *terminal.Terminal
	cmds   *commands.Registry
	last   walk.Frame
	start  mgl32.Vec3
}

// New builds the scene, physics world and controls from cfg. No window is needed yet.
func New(cfg Config) *App {
	l := cfg.Layout
	a := &App{
		log:       cfg.Log,
		prefsPath: cfg.PrefsPath,
		keys:      input.New(),
		debug:     debug.New(),
		cmds:      commands.NewRegistry(),
		last:      walk.Frame{Step: -1},
	}
	a.start = mgl32.Vec3{l.Camera.Position[0], l.Camera.Position[1], l.Camera.Position[2]}
	a.cam = controls.New(a.start)
	a.view = view.NewPerspective(l.Camera.Fovy, l.Camera.Near, l.Camera.Far, 0, 0)

	st := stairs.New(l.Stairs.Transforms(), l.Stairs.StepSize())
	a.walker = walk.New(a.keys, a.cam, st)

	a.scene = scene.New(l, cfg.TextureDir, cfg.Log)

	a.world = physics.NewWorld(mgl32.Vec3{l.Physics.Gravity[0], l.Physics.Gravity[1], l.Physics.Gravity[2]})
	g := l.Physics.Ground
	gt := g.Transform()
	ground := physics.NewBody(
		physics.Pose{Position: gt.Position, Rotation: gt.Rotation},
		mgl32.Vec3{g.HalfExtents[0], g.HalfExtents[1], g.HalfExtents[2]},
		g.Mass, g.Static,
	)
	a.world.AddBody(ground)
	a.world.Bind(ground, a.scene.Ground())

	a.term = terminal.New(cfg.Log, a.cmds)
	a.term.OnToggle = a.onConsoleToggle
	a.registerCommands()
	a.applyPrefs(cfg.Prefs)

	a.log.Logf("app: %d meshes, %d stairs, camera at %v", a.scene.Meshes(), st.Len(), a.start)
	return a
}

// WatchPrefs makes the frame loop apply preferences reloaded by w.
func (a *App) WatchPrefs(w *engineconfig.Watcher) {
	a.watcher = w
}

// Resize updates the projection and render size.
func (a *App) Resize(width, height int) {
	a.view.Resize(width, height)
	a.scene.SetProjection(a.view.Fovy, a.view.Matrix())
	a.log.Logf("app: viewport %dx%d aspect %.3f", a.view.Width, a.view.Height, a.view.Aspect)
}

// Update runs one frame: pending preference reloads, console, pointer lock, key
// transitions, walking and stair resolution, physics and mesh sync.
func (a *App) Update() {
	a.drainPrefs()
	a.term.Update()
	if !a.term.IsOpen() {
		a.updatePointerLock()
		a.pumpKeys()
	}
	if a.cam.IsLocked() {
		d := rl.GetMouseDelta()
		a.cam.Look(d.X, d.Y)
	}

	a.last = a.walker.Tick()

	a.world.Step(rl.GetFrameTime())
	if err := a.world.Sync(); err != nil {
		a.log.Log(err.Error())
	}

	a.scene.SetCamera(a.cam.Position, a.cam.Target(), stairs.CameraBox(a.cam.Position))
	a.debug.SetWalker(a.cam.Position, a.last.OnStair, a.last.Step)
}

// Draw renders the scene and overlays.
func (a *App) Draw() {
	a.scene.Draw()
	if !a.cam.IsLocked() && !a.term.IsOpen() {
		rl.DrawText(hintText, 12, 12, 20, rl.RayWhite)
	}
	a.term.Draw()
	a.debug.Draw()
}

// Close releases GPU resources. graphics.Run calls it before closing the window.
func (a *App) Close() {
	a.scene.Unload()
}

// updatePointerLock captures the mouse on click and releases it on Escape.
func (a *App) updatePointerLock() {
	switch {
	case !a.cam.IsLocked() && rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		rl.DisableCursor()
		a.cam.Lock()
	case a.cam.IsLocked() && rl.IsKeyPressed(rl.KeyEscape):
		rl.EnableCursor()
		a.cam.Unlock()
	}
}

// pumpKeys turns this frame's key transitions into input events.
func (a *App) pumpKeys() {
	for _, k := range arrowKeys {
		if rl.IsKeyPressed(k.key) {
			a.keys.SetKey(k.id, true)
		}
		if rl.IsKeyReleased(k.key) {
			a.keys.SetKey(k.id, false)
		}
	}
}

func (a *App) onConsoleToggle(open bool) {
	if !open {
		return
	}
	a.keys.Reset()
	if a.cam.IsLocked() {
		rl.EnableCursor()
		a.cam.Unlock()
	}
}

func (a *App) applyPrefs(p engineconfig.EnginePrefs) {
	a.prefs = p
	a.debug.ShowFPS = p.ShowFPS
	a.debug.ShowMemAlloc = p.ShowMemAlloc
	a.debug.ShowPosition = p.ShowPosition
	a.scene.ShowBoxes = p.ShowBoxes
	a.scene.GridVisible = p.GridVisible
	a.walker.Speed = p.MoveSpeed
	a.cam.PointerSpeed = p.PointerSpeed
}

func (a *App) savePrefs() {
	if err := engineconfig.SaveTo(a.prefsPath, a.prefs); err != nil {
		a.log.Log(err.Error())
	}
}

// drainPrefs applies reloaded preferences without blocking the frame.
func (a *App) drainPrefs() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case p, ok := <-a.watcher.Updates:
			if !ok {
				a.watcher = nil
				return
			}
			if p.TargetFPS != a.prefs.TargetFPS {
				rl.SetTargetFPS(int32(p.TargetFPS))
			}
			a.applyPrefs(p)
			a.log.Log("app: preferences reloaded")
		case err, ok := <-a.watcher.Errors:
			if ok {
				a.log.Logf("app: preferences: %v", err)
			}
		default:
			return
		}
	}
}
