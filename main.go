package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"campuslockdown/maps"
	"campuslockdown/pkg/game/config"
	"campuslockdown/pkg/game/gameplay"
	"campuslockdown/pkg/game/renderer"
	ebitenrenderer "campuslockdown/pkg/game/renderer/ebiten"
	"campuslockdown/pkg/game/renderer/tui"
	"campuslockdown/pkg/game/tiles"
)

func initGettext(cfg *config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")
}

// mapFS returns the directory given with -maps, or the built-in maps
func mapFS(cfg *config.Config) fs.FS {
	if cfg.MapsDir == "" {
		return maps.FS
	}
	return os.DirFS(cfg.MapsDir)
}

func newRenderer(cfg *config.Config) renderer.Renderer {
	if cfg.Renderer == config.RendererTUI {
		return tui.New(os.Stdout, cfg.FPS)
	}
	return ebitenrenderer.New(cfg)
}

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	config.SetCurrent(cfg)
	cfg.ApplyBindings()

	initGettext(cfg)

	reg, err := tiles.Default()
	if err != nil {
		log.Fatalf("tile registry: %v", err)
	}

	g, err := gameplay.BuildGame(cfg, mapFS(cfg), reg)
	if err != nil {
		log.Fatalf("could not start game: %v", err)
	}

	r := newRenderer(cfg)
	renderer.SetRenderer(r)
	if err := r.Init(); err != nil {
		log.Fatalf("renderer: %v", err)
	}
	if err := r.Run(g); err != nil {
		log.Fatalf("game loop: %v", err)
	}
}
