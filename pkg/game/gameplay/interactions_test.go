package gameplay

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	engineinput "campuslockdown/pkg/engine/input"
	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/player"
	"campuslockdown/pkg/game/state"
	"campuslockdown/pkg/game/tiles"
)

// shedGame builds a game on a 4x1 strip with two items east of the player
func shedGame(t *testing.T, capacity int) *state.Game {
	t.Helper()
	fsys := fstest.MapFS{
		"shed.json": {Data: []byte(`{
			"name": "Shed",
			"map_data": ["GGGG"],
			"spawn_point": {"x": 0, "y": 0},
			"items": [
				{"x": 1, "y": 0, "kind": "potion"},
				{"x": 2, "y": 0, "kind": "scroll", "name": "Old Map"}
			]
		}`)},
	}
	cfg := testConfig(t)
	cfg.StartMap = "shed"
	cfg.InventoryCapacity = capacity
	g, err := BuildGame(cfg, fsys, tiles.MustDefault())
	if err != nil {
		t.Fatalf("BuildGame: %v", err)
	}
	return g
}

func TestPickUp_OnArrival(t *testing.T) {
	g := shedGame(t, 0)

	walk(t, g, engineinput.ActionMoveEast)

	inv := g.Player.Inventory()
	if inv.Count(items.Potion) != 1 {
		t.Fatalf("potions = %d, want 1", inv.Count(items.Potion))
	}
	if g.Map.ItemAt(world.Pt(1, 0)) != nil {
		t.Error("item still on the map")
	}
	if !hasMessage(g, "Picked up: ITEM{Health Potion}") {
		t.Errorf("messages = %v", g.Messages)
	}

	walk(t, g, engineinput.ActionMoveWest)
	walk(t, g, engineinput.ActionMoveEast)
	if inv.Len() != 1 {
		t.Errorf("inventory has %d items after revisiting, want 1", inv.Len())
	}
}

func TestPickUp_FullInventoryLeavesItem(t *testing.T) {
	g := shedGame(t, 1)

	walk(t, g, engineinput.ActionMoveEast)
	walk(t, g, engineinput.ActionMoveEast)

	if g.Player.Inventory().Len() != 1 {
		t.Errorf("inventory len = %d", g.Player.Inventory().Len())
	}
	if g.Map.ItemAt(world.Pt(2, 0)) == nil {
		t.Error("scroll should stay on the map")
	}
	if !hasMessage(g, "Old Map") {
		t.Errorf("messages = %v", g.Messages)
	}
}

func TestPickUp_RejectedItemStaysOnMap(t *testing.T) {
	g := shedGame(t, 0)
	cell := world.Pt(1, 0)
	potion := g.Map.ItemAt(cell)
	if err := g.Player.Inventory().Add(potion); err != nil {
		t.Fatalf("Add: %v", err)
	}

	g.Player.Teleport(cell)
	if PickUpItem(g) {
		t.Fatal("PickUpItem = true for an item the inventory refused")
	}
	if g.Map.ItemAt(cell) != potion || potion.Collected() {
		t.Error("refused item left the map")
	}
	if g.Player.Inventory().Len() != 1 {
		t.Errorf("inventory len = %d, want 1", g.Player.Inventory().Len())
	}
	if !hasMessage(g, "Could not pick up") {
		t.Errorf("messages = %v", g.Messages)
	}
}

func TestUsePotion(t *testing.T) {
	g := shedGame(t, 0)

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionUsePotion})
	if !hasMessage(g, "no potions") {
		t.Errorf("messages = %v", g.Messages)
	}

	walk(t, g, engineinput.ActionMoveEast)
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionUsePotion})
	if g.Player.Health() != 50+items.PotionHeal {
		t.Errorf("health = %d", g.Player.Health())
	}
	if g.Player.Inventory().Count(items.Potion) != 0 {
		t.Error("potion not used up")
	}
}

func TestUsePotion_FullHealthKeepsPotion(t *testing.T) {
	g := shedGame(t, 0)
	walk(t, g, engineinput.ActionMoveEast)
	g.Player.SetHealth(player.MaxHealth)

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionUsePotion})
	if g.Player.Inventory().Count(items.Potion) != 1 {
		t.Error("potion used at full health")
	}
}

func TestToggles(t *testing.T) {
	g := shedGame(t, 0)

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionToggleFlashlight})
	if !g.Player.FlashlightOn() || LightRadius(g) != g.Lighting.FlashlightRadius {
		t.Errorf("flashlight on=%v radius=%v", g.Player.FlashlightOn(), LightRadius(g))
	}
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionToggleFlashlight})
	if g.Player.FlashlightOn() || LightRadius(g) != g.Lighting.BaseRadius {
		t.Error("flashlight should be off again")
	}

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionToggleInventory})
	if !g.Player.Inventory().Visible() {
		t.Error("inventory panel not shown")
	}
}

func TestMapDump(t *testing.T) {
	g := shedGame(t, 0)

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMapDump})

	if _, err := os.Stat(filepath.Join(g.DumpDir, "map.txt")); err != nil {
		t.Errorf("dump file: %v", err)
	}
	if !hasMessage(g, "Map dumped to") {
		t.Errorf("messages = %v", g.Messages)
	}
}
