package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"campuslockdown/pkg/engine/input"
	"campuslockdown/pkg/game/lighting"
)

func newFlagSet(t *testing.T) *flag.FlagSet {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writePrefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	c := Defaults()
	if c.WindowWidth != 1000 || c.WindowHeight != 800 || c.TileSize != 50 || c.FPS != 60 {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults don't validate: %v", err)
	}
}

func TestLoad_PrefsThenFlags(t *testing.T) {
	path := writePrefs(t, `{"tile_size": 32, "renderer": "tui", "metric": "chebyshev"}`)

	c, err := Load(newFlagSet(t), []string{"-prefs", path, "-renderer", "ebiten"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.TileSize != 32 {
		t.Errorf("TileSize = %d, want 32 from prefs", c.TileSize)
	}
	if c.Renderer != RendererEbiten {
		t.Errorf("Renderer = %q, flag should win over prefs", c.Renderer)
	}
	o, err := c.Lighting()
	if err != nil || o.Metric != lighting.Chebyshev {
		t.Errorf("Lighting() = %+v, %v", o, err)
	}
}

func TestLoad_MissingPrefs(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")
	c, err := Load(newFlagSet(t), []string{"-prefs", missing})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.TileSize != DefaultTileSize {
		t.Errorf("TileSize = %d, want default", c.TileSize)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"tile too small", []string{"-tile-size", "4"}},
		{"bad renderer", []string{"-renderer", "opengl"}},
		{"flashlight dimmer than base", []string{"-light-radius", "5", "-flashlight-radius", "2"}},
		{"bad metric", []string{"-metric", "taxicab"}},
		{"darkness out of range", []string{"-darkness", "300"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-prefs", ""}, tt.args...)
			if _, err := Load(newFlagSet(t), args); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}

func TestSetTileSize_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "prefs.json")
	c := Defaults()
	c.PrefsPath = path

	if err := c.SetTileSize(40); err != nil {
		t.Fatalf("SetTileSize: %v", err)
	}
	if c.TileSize != 40 {
		t.Errorf("TileSize = %d", c.TileSize)
	}
	p, err := LoadPrefs(path)
	if err != nil || p.TileSize != 40 {
		t.Errorf("saved prefs = %+v, %v", p, err)
	}

	if err := c.SetTileSize(1000); err == nil {
		t.Error("SetTileSize(1000) should fail")
	}
}

func TestApplyBindings(t *testing.T) {
	defer input.ResetBindings()

	path := writePrefs(t, `{"bindings": {"Flashlight": "t"}}`)
	c, err := Load(newFlagSet(t), []string{"-prefs", path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.ApplyBindings()

	got := input.MapToIntent(input.DebouncedInput{Code: "t"})
	if got.Action != input.ActionToggleFlashlight {
		t.Errorf("t = %v, want Flashlight", input.ActionName(got.Action))
	}

	bad := writePrefs(t, `{"bindings": {"Dance": "x"}}`)
	if _, err := Load(newFlagSet(t), []string{"-prefs", bad}); err == nil {
		t.Error("binding for an unknown action should fail validation")
	}
}
