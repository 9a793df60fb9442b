package campusmap

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/tiles"
)

// DefaultMinSpawnDistance keeps scattered items away from the spawn point.
const DefaultMinSpawnDistance = 3

// ScatterConfig places random items on a map. Kinds maps an item kind to an
// inclusive [min, max] count. A zero Seed derives one from the map id so
// the layout is stable between runs.
type ScatterConfig struct {
	Seed             uint64            `json:"seed"`
	MinSpawnDistance *float64          `json:"min_spawn_distance"`
	Kinds            map[string][2]int `json:"kinds"`
}

// DefaultScatter is the standard campus item mix: 8-12 potions,
// 5-8 scrolls and 3-5 keys.
func DefaultScatter() ScatterConfig {
	return ScatterConfig{
		Kinds: map[string][2]int{
			string(items.Potion): {8, 12},
			string(items.Scroll): {5, 8},
			string(items.Key):    {3, 5},
		},
	}
}

// Scatter places items on cells reachable from the spawn point that hold no
// item or door and lie farther than the minimum distance from it. It stops
// quietly when it runs out of free cells.
func Scatter(m *Map, cfg ScatterConfig) error {
	minDist := float64(DefaultMinSpawnDistance)
	if cfg.MinSpawnDistance != nil {
		minDist = *cfg.MinSpawnDistance
	}

	counts := make(map[items.Kind][2]int, len(cfg.Kinds))
	for name, rng := range cfg.Kinds {
		kind, err := items.ParseKind(name)
		if err != nil {
			return fmt.Errorf("scatter: %w", err)
		}
		if rng[0] < 0 || rng[1] < rng[0] {
			return fmt.Errorf("scatter: invalid range %v for %s", rng, kind)
		}
		if cells := m.Width() * m.Height(); rng[1] > cells {
			return fmt.Errorf("scatter: %d %s items won't fit on %d cells", rng[1], kind, cells)
		}
		counts[kind] = rng
	}

	seed := cfg.Seed
	if seed == 0 {
		h := fnv.New64a()
		h.Write([]byte(m.ID))
		seed = h.Sum64()
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	reach := Reachable(m, m.Spawn)
	var free []world.Point
	m.ForEachTile(func(p world.Point, t *tiles.Tile) {
		if !t.Walkable || !reach.Has(p) || m.ItemAt(p) != nil {
			return
		}
		if _, door := m.DoorAt(p); door {
			return
		}
		dist := math.Hypot(float64(p.X-m.Spawn.X), float64(p.Y-m.Spawn.Y))
		if dist > minDist {
			free = append(free, p)
		}
	})

	// Fixed kind order so the same seed always gives the same layout.
	for _, kind := range items.AllKinds() {
		rng, ok := counts[kind]
		if !ok {
			continue
		}
		n := rng[0] + r.IntN(rng[1]-rng[0]+1)
		for i := 0; i < n && len(free) > 0; i++ {
			j := r.IntN(len(free))
			p := free[j]
			free[j] = free[len(free)-1]
			free = free[:len(free)-1]
			m.placeItem(items.New(kind, p, "", ""))
		}
	}
	return nil
}
