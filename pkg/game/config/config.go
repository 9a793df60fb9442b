// Package config holds game settings. Values come from built-in defaults,
// then the preferences file, then command-line flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"campuslockdown/pkg/engine/input"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/lighting"
)

// Tile size limits for zooming
const (
	MinTileSize     = 16
	MaxTileSize     = 96
	TileSizeStep    = 4
	DefaultTileSize = 50
)

// Renderer names
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Config is the full set of game settings.
type Config struct {
	WindowWidth  int
	WindowHeight int
	TileSize     int
	FPS          int

	StartMap string
	MapsDir  string

	Renderer  string
	Language  string
	LocaleDir string

	BaseRadius       float64
	FlashlightRadius float64
	DarknessAlpha    int
	Metric           string

	InventoryCapacity int
	StartHealth       int
	DumpDir           string

	Bindings map[string]string

	PrefsPath string
}

// Defaults returns the built-in settings.
func Defaults() *Config {
	light := lighting.Default()
	return &Config{
		WindowWidth:       1000,
		WindowHeight:      800,
		TileSize:          DefaultTileSize,
		FPS:               60,
		StartMap:          "campus",
		Renderer:          RendererEbiten,
		Language:          "en_GB",
		LocaleDir:         "locales",
		BaseRadius:        light.BaseRadius,
		FlashlightRadius:  light.FlashlightRadius,
		DarknessAlpha:     int(light.MaxAlpha),
		Metric:            light.Metric.String(),
		InventoryCapacity: items.DefaultCapacity,
		StartHealth:       50,
		DumpDir:           ".",
		PrefsPath:         DefaultPrefsPath(),
	}
}

// DefaultPrefsPath returns ~/.config/campuslockdown/prefs.json, or "" when
// there is no user config directory.
func DefaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "campuslockdown", "prefs.json")
}

// RegisterFlags binds command-line flags to the fields of c.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window height in pixels")
	fs.IntVar(&c.TileSize, "tile-size", c.TileSize, "tile size in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "target frames per second")
	fs.StringVar(&c.StartMap, "map", c.StartMap, "id of the starting map")
	fs.StringVar(&c.MapsDir, "maps", c.MapsDir, "directory of map files (default: built-in maps)")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer to use: ebiten or tui")
	fs.StringVar(&c.Language, "lang", c.Language, "language for game text")
	fs.StringVar(&c.LocaleDir, "locales", c.LocaleDir, "directory of translation files")
	fs.Float64Var(&c.BaseRadius, "light-radius", c.BaseRadius, "visible radius in tiles without the flashlight")
	fs.Float64Var(&c.FlashlightRadius, "flashlight-radius", c.FlashlightRadius, "visible radius in tiles with the flashlight")
	fs.IntVar(&c.DarknessAlpha, "darkness", c.DarknessAlpha, "darkness of unlit tiles (0-255)")
	fs.StringVar(&c.Metric, "metric", c.Metric, "light distance metric: euclidean or chebyshev")
	fs.IntVar(&c.InventoryCapacity, "capacity", c.InventoryCapacity, "inventory capacity (0 for unlimited)")
	fs.StringVar(&c.DumpDir, "dump-dir", c.DumpDir, "directory for F12 map dumps")
	fs.StringVar(&c.PrefsPath, "prefs", c.PrefsPath, "preferences file")
}

// Load parses args, then fills in anything not given on the command line
// from the preferences file.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := Defaults()
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	prefs, err := LoadPrefs(c.PrefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring preferences: %v\n", err)
	} else {
		c.applyPrefs(prefs, set)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the settings can run a game.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TileSize < MinTileSize || c.TileSize > MaxTileSize {
		return fmt.Errorf("tile size %d outside %d..%d", c.TileSize, MinTileSize, MaxTileSize)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", c.FPS)
	}
	if c.Renderer != RendererEbiten && c.Renderer != RendererTUI {
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	if c.DarknessAlpha < 0 || c.DarknessAlpha > 255 {
		return fmt.Errorf("darkness %d outside 0..255", c.DarknessAlpha)
	}
	if c.InventoryCapacity < 0 {
		return fmt.Errorf("invalid inventory capacity %d", c.InventoryCapacity)
	}
	if _, err := c.Lighting(); err != nil {
		return err
	}
	for name := range c.Bindings {
		if _, ok := input.ActionFromName(name); !ok {
			return fmt.Errorf("binding for unknown action %q", name)
		}
	}
	return nil
}

// Lighting builds the darkness overlay from the settings.
func (c *Config) Lighting() (lighting.Overlay, error) {
	metric, err := lighting.ParseMetric(c.Metric)
	if err != nil {
		return lighting.Overlay{}, err
	}
	o := lighting.Default()
	o.BaseRadius = c.BaseRadius
	o.FlashlightRadius = c.FlashlightRadius
	o.MaxAlpha = uint8(c.DarknessAlpha)
	o.Metric = metric
	if err := o.Validate(); err != nil {
		return lighting.Overlay{}, err
	}
	return o, nil
}

// ApplyBindings installs the key bindings from preferences.
func (c *Config) ApplyBindings() {
	for name, code := range c.Bindings {
		if action, ok := input.ActionFromName(name); ok {
			input.SetSingleBinding(action, code)
		}
	}
}

var current = Defaults()

// Current returns the active settings.
func Current() *Config {
	return current
}

// SetCurrent replaces the active settings.
func SetCurrent(c *Config) {
	current = c
}
