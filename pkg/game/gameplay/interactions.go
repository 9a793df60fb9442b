package gameplay

import (
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/player"
	"campuslockdown/pkg/game/state"
)

// PickUpItem collects the item under the player, if any. The item only
// leaves the map once the inventory has accepted it, so when the bag is
// full it stays where it is. Returns true if an item was taken.
func PickUpItem(g *state.Game) bool {
	cell := g.Player.Cell()
	item := g.Map.ItemAt(cell)
	if item == nil {
		return false
	}

	inv := g.Player.Inventory()
	if inv.IsFull() {
		logMessage(g, "Your bag is full, the ITEM{%s} stays here.", item.Name)
		return false
	}

	if err := inv.Add(item); err != nil {
		logMessage(g, "Could not pick up ITEM{%s}: %v", item.Name, err)
		return false
	}
	g.Map.TakeItem(cell)
	logMessage(g, "Picked up: ITEM{%s}", item.Name)
	return true
}

// UsePotion drinks the oldest potion in the inventory. Nothing is used up
// when the player is already at full health.
func UsePotion(g *state.Game) {
	inv := g.Player.Inventory()
	if inv.Count(items.Potion) == 0 {
		logMessage(g, "You have no potions.")
		return
	}
	if g.Player.Health() >= player.MaxHealth {
		logMessage(g, "You are already at full health.")
		return
	}

	potion := inv.Use(items.Potion)
	healed := g.Player.Heal(items.PotionHeal)
	logMessage(g, "You drink the ITEM{%s} and recover ACTION{%d} health.", potion.Name, healed)
}
