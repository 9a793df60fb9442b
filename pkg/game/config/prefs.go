package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Prefs is the part of the settings kept in the preferences file. Zero
// values mean "not set".
type Prefs struct {
	TileSize         int               `json:"tile_size,omitempty"`
	Renderer         string            `json:"renderer,omitempty"`
	Language         string            `json:"language,omitempty"`
	BaseRadius       float64           `json:"light_radius,omitempty"`
	FlashlightRadius float64           `json:"flashlight_radius,omitempty"`
	Metric           string            `json:"metric,omitempty"`
	Bindings         map[string]string `json:"bindings,omitempty"`
}

// LoadPrefs reads the preferences file. A missing file gives empty Prefs.
func LoadPrefs(path string) (Prefs, error) {
	var p Prefs
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("failed to read preferences %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse preferences %s: %w", path, err)
	}
	return p, nil
}

// SavePrefs writes p to path, creating the directory if needed.
func SavePrefs(path string, p Prefs) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// applyPrefs copies preferences into c, skipping settings named in
// overridden (flag names given on the command line).
func (c *Config) applyPrefs(p Prefs, overridden map[string]bool) {
	if p.TileSize != 0 && !overridden["tile-size"] {
		c.TileSize = p.TileSize
	}
	if p.Renderer != "" && !overridden["renderer"] {
		c.Renderer = p.Renderer
	}
	if p.Language != "" && !overridden["lang"] {
		c.Language = p.Language
	}
	if p.BaseRadius != 0 && !overridden["light-radius"] {
		c.BaseRadius = p.BaseRadius
	}
	if p.FlashlightRadius != 0 && !overridden["flashlight-radius"] {
		c.FlashlightRadius = p.FlashlightRadius
	}
	if p.Metric != "" && !overridden["metric"] {
		c.Metric = p.Metric
	}
	if len(p.Bindings) > 0 {
		c.Bindings = p.Bindings
	}
}

// SetTileSize changes the tile size and saves it to the preferences file so
// the zoom level survives a restart.
func (c *Config) SetTileSize(size int) error {
	if size < MinTileSize || size > MaxTileSize {
		return fmt.Errorf("tile size %d outside %d..%d", size, MinTileSize, MaxTileSize)
	}
	c.TileSize = size

	p, err := LoadPrefs(c.PrefsPath)
	if err != nil {
		return err
	}
	p.TileSize = size
	return SavePrefs(c.PrefsPath, p)
}
