package items

import (
	"errors"

	"github.com/zyedidia/generic/mapset"
)

// DefaultCapacity is the number of items the player can carry.
const DefaultCapacity = 20

// ErrInventoryFull is returned by Add when the inventory is at capacity.
var ErrInventoryFull = errors.New("inventory is full")

// ErrAlreadyOwned is returned by Add when the item is already in the inventory.
var ErrAlreadyOwned = errors.New("item already in inventory")

// Inventory is the ordered list of collected items.
type Inventory struct {
	items    []*Item
	owned    mapset.Set[*Item]
	capacity int
	visible  bool
}

// NewInventory creates an empty inventory. A capacity of 0 means unlimited.
func NewInventory(capacity int) *Inventory {
	return &Inventory{
		owned:    mapset.New[*Item](),
		capacity: capacity,
	}
}

// Add appends item. It fails without side effects when the inventory is full
// or already holds the item.
func (inv *Inventory) Add(item *Item) error {
	if inv.owned.Has(item) {
		return ErrAlreadyOwned
	}
	if inv.IsFull() {
		return ErrInventoryFull
	}
	inv.items = append(inv.items, item)
	inv.owned.Put(item)
	return nil
}

// Remove takes item out of the inventory. Returns false if it wasn't there.
func (inv *Inventory) Remove(item *Item) bool {
	if !inv.owned.Has(item) {
		return false
	}
	for i, it := range inv.items {
		if it == item {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			break
		}
	}
	inv.owned.Remove(item)
	return true
}

// Use removes and returns the oldest item of the given kind, or nil.
func (inv *Inventory) Use(kind Kind) *Item {
	for _, it := range inv.items {
		if it.Kind == kind {
			inv.Remove(it)
			return it
		}
	}
	return nil
}

// Has reports whether item is in the inventory.
func (inv *Inventory) Has(item *Item) bool {
	return inv.owned.Has(item)
}

// Count returns how many items of kind are held.
func (inv *Inventory) Count(kind Kind) int {
	n := 0
	for _, it := range inv.items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}

// Items returns a copy of the held items in pickup order.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of held items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Capacity returns the maximum number of items, 0 for unlimited.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// IsFull reports whether another item would be rejected.
func (inv *Inventory) IsFull() bool {
	return inv.capacity > 0 && len(inv.items) >= inv.capacity
}

// ToggleVisible flips the inventory panel and returns the new state.
func (inv *Inventory) ToggleVisible() bool {
	inv.visible = !inv.visible
	return inv.visible
}

// Visible reports whether the inventory panel is shown.
func (inv *Inventory) Visible() bool {
	return inv.visible
}
