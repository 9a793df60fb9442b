package gameplay

import (
	"io/fs"
	"log"

	"campuslockdown/pkg/game/campusmap"
	"campuslockdown/pkg/game/config"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/player"
	"campuslockdown/pkg/game/state"
	"campuslockdown/pkg/game/tiles"
)

// BuildGame creates a new game from cfg. If the starting map can't be
// loaded the built-in sample map is used instead.
func BuildGame(cfg *config.Config, fsys fs.FS, reg *tiles.Registry) (*state.Game, error) {
	light, err := cfg.Lighting()
	if err != nil {
		return nil, err
	}

	start, err := campusmap.Load(fsys, cfg.StartMap, reg)
	if err != nil {
		log.Printf("could not load map %q, using the sample map: %v", cfg.StartMap, err)
		start = campusmap.Sample(reg)
	}

	inv := items.NewInventory(cfg.InventoryCapacity)
	p := player.New(start.Spawn, cfg.StartHealth, inv)

	g := state.NewGame(reg, fsys, start, p, light)
	g.DumpDir = cfg.DumpDir

	logMessage(g, "Welcome to ROOM{%s}!", start.Name)
	ShowControlsHint(g)
	ShowMapHint(g, start)

	return g, nil
}
