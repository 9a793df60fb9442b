package campusmap

import (
	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/tiles"
)

// SampleID is the id of the built-in fallback map.
const SampleID = "sample"

var sampleRows = []string{
	"BBBBBBBBBBBBBBBBBBBB",
	"BGGGGGGGGGGGGGGGGGGB",
	"BGTGGWWWGGGTGGGGTGGB",
	"BGGGGWWWGGGGGGBBGGGB",
	"BGGGGWWWGGGGGGBBGGGB",
	"BGTGGGGGGGGGGGGGGTGB",
	"BGGGGGGGGBBBGGGGGGGB",
	"BGGGGGGGGBEBGGGGGGGB",
	"BGGGGGGGGBBBGGGGGGGB",
	"BGTGGGGGGGGGGGGGGTGB",
	"BGGGGWWWGGGGGGGGGGGB",
	"BGGGGWWWGGGGGTGGGGGB",
	"BGGGGWWWGGGGGGGGGGGB",
	"BGTGGGGGGGGGGGGGTGGB",
	"BGGGGGGGGGGGGGGGGGGB",
	"BBBBBBBBBBBBBBBBBBBB",
}

// Sample returns the built-in 20x16 map used when the campus map can't be
// loaded. It has no doors and scatters the default item mix.
func Sample(reg *tiles.Registry) *Map {
	m := newMap(SampleID, "Sample Campus", len(sampleRows[0]), len(sampleRows))
	for y, row := range sampleRows {
		for x, c := range row {
			t, ok := reg.ByChar(c)
			if !ok {
				t = tiles.Unknown
			}
			m.grid.Set(world.Pt(x, y), t)
		}
	}
	spawn, err := resolveSpawn(m, nil)
	if err == nil {
		m.Spawn = spawn
	}
	_ = Scatter(m, DefaultScatter())
	return m
}
