package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the prefs file, relative to the process working
// directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds engine-only preferences (debug overlays, grid).
// Persisted across runs; scene state is not.
type EnginePrefs struct {
	ShowFPS      bool `json:"show_fps"`
	ShowMemAlloc bool `json:"show_memalloc"`
	GridVisible  bool `json:"grid_visible"`
}

// Default returns the default preferences: overlays off, grid on.
func Default() EnginePrefs {
	return EnginePrefs{GridVisible: true}
}

// Load reads preferences from config/engine.json. A missing or invalid file
// yields Default() without error and without creating a file.
func Load() (EnginePrefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p EnginePrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/engine.json, creating the config
// directory if needed.
func Save(p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(EngineConfigPath), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}
