package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"stairwalk/internal/app"
	"stairwalk/internal/engineconfig"
	"stairwalk/internal/env"
	"stairwalk/internal/graphics"
	"stairwalk/internal/layout"
	"stairwalk/internal/logger"
)

func main() {
	log := logger.New(logger.LogFilePath, os.Stderr)
	defer log.Close()
	if err := env.Load(".env"); err != nil {
		log.Log(err.Error())
	}

	prefs, err := engineconfig.Load()
	if err != nil {
		log.Logf("%v (using defaults)", err)
	}

	layoutPath := env.Get(env.LayoutPath, layout.DefaultPath)
	l, err := layout.Load(layoutPath)
	if err != nil {
		log.Log(err.Error())
		os.Exit(1)
	}
	textureDir := env.Get(env.AssetsDir, l.TextureDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(app.Config{
		Layout:     l,
		TextureDir: textureDir,
		Prefs:      prefs,
		PrefsPath:  engineconfig.EngineConfigPath,
		Log:        log,
	})
	if w, err := engineconfig.Watch(ctx, engineconfig.EngineConfigPath); err != nil {
		log.Logf("%v (hot reload disabled)", err)
	} else {
		a.WatchPrefs(w)
	}

	graphics.Run(ctx, graphics.Options{
		Title:      "stairwalk",
		Width:      prefs.Width,
		Height:     prefs.Height,
		Fullscreen: prefs.Fullscreen,
		TargetFPS:  prefs.TargetFPS,
	}, a)
	log.Log("stairwalk: exit")
}
