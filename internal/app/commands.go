package app

import (
	"flag"
	"fmt"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// registerCommands installs the debug console commands.
func (a *App) registerCommands() {
	a.registerToggle("fps", "fps --show|--hide", func(on bool) {
		a.prefs.ShowFPS, a.debug.ShowFPS = on, on
	})
	a.registerToggle("memalloc", "memalloc --show|--hide", func(on bool) {
		a.prefs.ShowMemAlloc, a.debug.ShowMemAlloc = on, on
	})
	a.registerToggle("pos", "pos --show|--hide", func(on bool) {
		a.prefs.ShowPosition, a.debug.ShowPosition = on, on
	})
	a.registerToggle("boxes", "boxes --show|--hide", func(on bool) {
		a.prefs.ShowBoxes, a.scene.ShowBoxes = on, on
	})
	a.registerToggle("grid", "grid --show|--hide", func(on bool) {
		a.prefs.GridVisible, a.scene.GridVisible = on, on
	})

	a.cmds.Register("teleport", "teleport x y z", nil, func(args []string) error {
		v, err := parseFloats(args, 3)
		if err != nil {
			return fmt.Errorf("teleport: %w", err)
		}
		a.cam.Position = mgl32.Vec3{v[0], v[1], v[2]}
		a.log.Logf("teleported to %.2f, %.2f, %.2f", v[0], v[1], v[2])
		return nil
	})
	a.cmds.Register("reset", "reset", nil, func([]string) error {
		a.cam.Position = a.start
		a.cam.Yaw, a.cam.Pitch = 0, 0
		return nil
	})
	a.cmds.Register("speed", "speed units-per-frame", nil, func(args []string) error {
		v, err := parseFloats(args, 1)
		if err != nil || v[0] <= 0 {
			return fmt.Errorf("speed: want one positive number")
		}
		a.walker.Speed, a.prefs.MoveSpeed = v[0], v[0]
		a.savePrefs()
		return nil
	})
	a.cmds.Register("sensitivity", "sensitivity pointer-speed", nil, func(args []string) error {
		v, err := parseFloats(args, 1)
		if err != nil || v[0] <= 0 {
			return fmt.Errorf("sensitivity: want one positive number")
		}
		a.cam.PointerSpeed, a.prefs.PointerSpeed = v[0], v[0]
		a.savePrefs()
		return nil
	})

	winFS := flag.NewFlagSet("window", flag.ContinueOnError)
	fullscreen := winFS.Bool("fullscreen", false, "switch to fullscreen")
	windowed := winFS.Bool("windowed", false, "switch to a window")
	a.cmds.Register("window", "window --fullscreen|--windowed", winFS, func([]string) error {
		defer func() { *fullscreen, *windowed = false, false }()
		want := rl.IsWindowFullscreen()
		switch {
		case *fullscreen:
			want = true
		case *windowed:
			want = false
		default:
			return fmt.Errorf("window: use --fullscreen or --windowed")
		}
		if want != rl.IsWindowFullscreen() {
			rl.ToggleFullscreen()
		}
		a.prefs.Fullscreen = want
		a.savePrefs()
		return nil
	})

	a.cmds.Register("help", "help", nil, func([]string) error {
		for _, name := range a.cmds.Names() {
			a.log.Log("  " + a.cmds.Usage(name))
		}
		return nil
	})
}

// registerToggle adds a command taking --show or --hide. The new state is saved.
func (a *App) registerToggle(name, usage string, set func(on bool)) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	show := fs.Bool("show", false, "show")
	hide := fs.Bool("hide", false, "hide")
	a.cmds.Register(name, usage, fs, func([]string) error {
		// Flag values persist across Parse calls.
		defer func() { *show, *hide = false, false }()
		switch {
		case *show:
			set(true)
		case *hide:
			set(false)
		default:
			return fmt.Errorf("%s: use --show or --hide", name)
		}
		a.savePrefs()
		return nil
	})
}

func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) != n {
		return nil, fmt.Errorf("want %d numbers, got %d", n, len(args))
	}
	out := make([]float32, n)
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}
