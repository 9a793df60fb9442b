// Package tiles is the static registry of tile kinds: names, colors,
// walkability and the legend characters used by map files.
package tiles

import (
	"errors"
	"fmt"
	"image/color"
	"unicode"

	"github.com/zyedidia/generic/mapset"
)

// Kind identifies a tile type. Values are the lowercase names used in map
// legends.
type Kind string

// Tile kinds
const (
	Empty          Kind = "empty"
	Grass          Kind = "grass"
	Water          Kind = "water"
	Wall           Kind = "wall"
	Tree           Kind = "tree"
	Pathway        Kind = "pathway"
	Library        Kind = "library"
	Cafeteria      Kind = "cafeteria"
	Dormitory      Kind = "dormitory"
	SportsField    Kind = "sports_field"
	ParkingLot     Kind = "parking_lot"
	Door           Kind = "door"
	Bookshelf      Kind = "bookshelf"
	Desk           Kind = "desk"
	Chair          Kind = "chair"
	DiningTable    Kind = "dining_table"
	KitchenCounter Kind = "kitchen_counter"
	ServingCounter Kind = "serving_counter"
	Bed            Kind = "bed"
	Wardrobe       Kind = "wardrobe"
	Bathroom       Kind = "bathroom"
	ParkingSpace   Kind = "parking_space"
	DrivingLane    Kind = "driving_lane"
	Sidewalk       Kind = "sidewalk"
	LibraryDoor    Kind = "library_door"
	CafeteriaDoor  Kind = "cafeteria_door"
	DormitoryDoor  Kind = "dormitory_door"
	ParkingDoor    Kind = "parking_door"
	UnknownKind    Kind = "unknown"
)

// ErrUnknownKind is returned by Lookup for kinds the registry doesn't know.
var ErrUnknownKind = errors.New("unknown tile kind")

// DoorTarget describes where a door tile leads. An empty Map with Return set
// means "back to wherever the player came from".
type DoorTarget struct {
	Map    string
	Return bool
}

// Tile is the immutable definition shared by every cell of the same kind.
type Tile struct {
	Kind     Kind
	Char     rune
	Name     string
	Color    color.RGBA
	Accent   color.RGBA
	Walkable bool
	Door     *DoorTarget
}

// IsDoor reports whether stepping onto this tile can trigger a transition.
func (t *Tile) IsDoor() bool {
	return t != nil && t.Door != nil
}

// HasAccent reports whether the tile draws an accent border.
func (t *Tile) HasAccent() bool {
	return t.Accent != t.Color
}

// WithOverrides returns a copy of t with the given attributes replaced. Used
// for map-local legend entries; the registry entry itself is never modified.
func (t *Tile) WithOverrides(walkable *bool, clr *color.RGBA) *Tile {
	c := *t
	if walkable != nil {
		c.Walkable = *walkable
	}
	if clr != nil {
		c.Color = *clr
		c.Accent = *clr
	}
	return &c
}

func (t *Tile) String() string {
	return fmt.Sprintf("%s(%c)", t.Kind, t.Char)
}

// Unknown is the fallback tile for kinds the registry can't resolve.
var Unknown = &Tile{
	Kind:   UnknownKind,
	Char:   '?',
	Name:   "Unknown",
	Color:  rgb(255, 0, 255),
	Accent: rgb(255, 0, 255),
}

// Registry is a read-only lookup from kind and legend character to tiles.
type Registry struct {
	byKind map[Kind]*Tile
	byChar map[rune]*Tile
	order  []Kind
	doors  mapset.Set[Kind]
}

// NewRegistry builds a registry from tile definitions. Kinds and characters
// must be unique.
func NewRegistry(defs []Tile) (*Registry, error) {
	r := &Registry{
		byKind: make(map[Kind]*Tile, len(defs)),
		byChar: make(map[rune]*Tile, len(defs)),
		doors:  mapset.New[Kind](),
	}
	for i := range defs {
		t := defs[i]
		if t.Kind == "" {
			return nil, fmt.Errorf("tile %d has no kind", i)
		}
		if _, dup := r.byKind[t.Kind]; dup {
			return nil, fmt.Errorf("duplicate tile kind %q", t.Kind)
		}
		if t.Char != 0 {
			t.Char = unicode.ToUpper(t.Char)
			if prev, dup := r.byChar[t.Char]; dup {
				return nil, fmt.Errorf("character %q used by both %s and %s", t.Char, prev.Kind, t.Kind)
			}
		}
		tile := &t
		r.byKind[t.Kind] = tile
		if t.Char != 0 {
			r.byChar[t.Char] = tile
		}
		if tile.IsDoor() {
			r.doors.Put(t.Kind)
		}
		r.order = append(r.order, t.Kind)
	}
	return r, nil
}

// Lookup returns the tile for kind, or Unknown and ErrUnknownKind.
func (r *Registry) Lookup(kind Kind) (*Tile, error) {
	if t, ok := r.byKind[kind]; ok {
		return t, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// ByChar resolves a legend character. Matching is case-insensitive.
func (r *Registry) ByChar(c rune) (*Tile, bool) {
	t, ok := r.byChar[unicode.ToUpper(c)]
	return t, ok
}

// IsDoorKind reports whether kind carries a door target.
func (r *Registry) IsDoorKind(kind Kind) bool {
	return r.doors.Has(kind)
}

// Kinds returns every registered kind in definition order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.order)
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
