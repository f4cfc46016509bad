package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EngineConfigPath is the preferences file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds window, overlay and movement preferences. Persisted across runs.
// Width or Height 0 means the primary monitor's size.
type EnginePrefs struct {
	ShowFPS      bool    `json:"show_fps"`
	ShowMemAlloc bool    `json:"show_memalloc"`
	ShowPosition bool    `json:"show_position"`
	ShowBoxes    bool    `json:"show_boxes"`
	GridVisible  bool    `json:"grid_visible"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Fullscreen   bool    `json:"fullscreen"`
	TargetFPS    int     `json:"target_fps"`
	PointerSpeed float32 `json:"pointer_speed"`
	MoveSpeed    float32 `json:"move_speed"`
}

// Default returns the preferences used when no file exists: overlays off, 60 FPS,
// unit pointer speed, 0.1 units per frame.
func Default() EnginePrefs {
	return EnginePrefs{
		TargetFPS:    60,
		PointerSpeed: 1,
		MoveSpeed:    0.1,
	}
}

// normalize replaces out-of-range values with defaults.
func (p EnginePrefs) normalize() EnginePrefs {
	d := Default()
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.PointerSpeed <= 0 {
		p.PointerSpeed = d.PointerSpeed
	}
	if p.MoveSpeed <= 0 {
		p.MoveSpeed = d.MoveSpeed
	}
	if p.Width < 0 || p.Height < 0 {
		p.Width, p.Height = 0, 0
	}
	return p
}

// Load reads preferences from EngineConfigPath.
func Load() (EnginePrefs, error) {
	return LoadFrom(EngineConfigPath)
}

// LoadFrom reads preferences from path. A missing file gives Default() and no error;
// an unreadable or invalid file gives Default() and the error so the caller can log it.
// Fields absent from the file keep their default values.
func LoadFrom(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("engineconfig: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: %s: %w", path, err)
	}
	return p.normalize(), nil
}

// Save writes preferences to EngineConfigPath.
func Save(p EnginePrefs) error {
	return SaveTo(EngineConfigPath, p)
}

// SaveTo writes preferences to path, creating its directory if needed.
func SaveTo(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	return nil
}
