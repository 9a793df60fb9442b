package state

import (
	"io/fs"

	"github.com/zyedidia/generic/mapset"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/campusmap"
	"campuslockdown/pkg/game/lighting"
	"campuslockdown/pkg/game/player"
	"campuslockdown/pkg/game/tiles"
)

// Location is a cell on a specific map. Facing is the direction the player
// was walking when they stepped onto it.
type Location struct {
	MapID  string
	Cell   world.Point
	Facing world.Direction
}

// Game represents the game state for Campus Lockdown
type Game struct {
	Registry *tiles.Registry
	MapFS    fs.FS

	// Map is the current map. It is only ever replaced as a whole.
	Map    *campusmap.Map
	Player *player.Player

	Lighting lighting.Overlay

	Messages []string

	// MessageSerial counts every message ever added, so renderers can tell
	// which entries of Messages are new
	MessageSerial int

	// Visited holds the ids of every map the player has been on
	Visited mapset.Set[string]

	// ReturnTo is where return doors lead: the door the player last
	// entered a building through.
	ReturnTo *Location

	// Home is the map return doors lead to when ReturnTo is unset
	Home string

	DumpDir string

	// Elapsed is total game time in seconds, used for animations
	Elapsed float64

	Quit bool

	maps map[string]*campusmap.Map
}

// NewGame creates a new game on start with the player at its spawn point
func NewGame(reg *tiles.Registry, fsys fs.FS, start *campusmap.Map, p *player.Player, light lighting.Overlay) *Game {
	g := &Game{
		Registry: reg,
		MapFS:    fsys,
		Player:   p,
		Lighting: light,
		Messages: make([]string, 0),
		Visited:  mapset.New[string](),
		DumpDir:  ".",
		Home:     start.ID,
		maps:     make(map[string]*campusmap.Map),
	}
	g.EnterMap(start, start.Spawn)
	return g
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)
	g.MessageSerial++

	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// LoadMap returns the map with the given id, loading and caching it on
// first use. Cached maps keep their state, so collected items stay gone.
func (g *Game) LoadMap(id string) (*campusmap.Map, error) {
	if m, ok := g.maps[id]; ok {
		return m, nil
	}
	m, err := campusmap.Load(g.MapFS, id, g.Registry)
	if err != nil {
		return nil, err
	}
	g.maps[id] = m
	return m, nil
}

// EnterMap makes m the current map and puts the player on cell.
func (g *Game) EnterMap(m *campusmap.Map, cell world.Point) {
	g.maps[m.ID] = m
	g.Map = m
	g.Player.Teleport(cell)
	g.Visited.Put(m.ID)
}

// CachedMaps returns the number of maps loaded so far.
func (g *Game) CachedMaps() int {
	return len(g.maps)
}

// CurrentTile returns the tile under the player.
func (g *Game) CurrentTile() *tiles.Tile {
	return g.Map.TileAt(g.Player.Cell())
}
