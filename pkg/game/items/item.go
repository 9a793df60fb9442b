// Package items defines collectible items and the player's inventory.
package items

import (
	"fmt"
	"image/color"
	"strings"

	"campuslockdown/pkg/engine/world"
)

// Kind is the type of a collectible item.
type Kind string

// Item kinds
const (
	Potion Kind = "potion"
	Scroll Kind = "scroll"
	Key    Kind = "key"
)

// Info holds the display defaults for an item kind.
type Info struct {
	Name        string
	Description string
	Color       color.RGBA
}

// Catalog lists the known item kinds with their default name, description
// and color.
var Catalog = map[Kind]Info{
	Potion: {Name: "Health Potion", Description: "Restores health when consumed", Color: color.RGBA{R: 255, G: 100, B: 100, A: 255}},
	Scroll: {Name: "Magic Scroll", Description: "Contains ancient magical knowledge", Color: color.RGBA{R: 100, G: 100, B: 255, A: 255}},
	Key:    {Name: "Golden Key", Description: "Opens locked doors and chests", Color: color.RGBA{R: 255, G: 215, B: 0, A: 255}},
}

// AllKinds returns item kinds in display order.
func AllKinds() []Kind {
	return []Kind{Potion, Scroll, Key}
}

// PotionHeal is how much health a potion restores.
const PotionHeal = 25

// ParseKind resolves a kind name from a map file.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := Catalog[k]; !ok {
		return "", fmt.Errorf("unknown item kind %q", s)
	}
	return k, nil
}

// Item is a collectible. Location is nil once the item has been picked up.
type Item struct {
	Kind        Kind
	Name        string
	Description string
	Color       color.RGBA
	Location    *world.Point
}

// New creates an item at p. Empty name or description fall back to the
// catalog defaults.
func New(kind Kind, p world.Point, name, description string) *Item {
	info := Catalog[kind]
	if name == "" {
		name = info.Name
	}
	if description == "" {
		description = info.Description
	}
	loc := p
	return &Item{
		Kind:        kind,
		Name:        name,
		Description: description,
		Color:       info.Color,
		Location:    &loc,
	}
}

// Collected reports whether the item has left the map.
func (i *Item) Collected() bool {
	return i.Location == nil
}

func (i *Item) String() string {
	return i.Name
}
