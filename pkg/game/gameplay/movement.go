package gameplay

import (
	"fmt"
	"os"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/campusmap"
	"campuslockdown/pkg/game/renderer"
	"campuslockdown/pkg/game/state"
)

// MovePlayer starts a one-cell move in dir. It returns false when the
// player is already moving or the target cell is blocked.
func MovePlayer(g *state.Game, dir world.Direction) bool {
	return g.Player.TryMove(dir, g.Map)
}

// OnArrival runs the triggers for the cell the player just reached. Items
// are picked up before any door is used.
func OnArrival(g *state.Game) {
	PickUpItem(g)

	if door, ok := g.Map.DoorAt(g.Player.Cell()); ok {
		if err := EnterDoor(g, door); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
}

// EnterDoor moves the player through door. Return doors lead back to where
// the player last came in; other doors load their target map. If the
// destination can't be loaded the player stays where they are.
func EnterDoor(g *state.Game, door campusmap.Door) error {
	if door.Return || door.Target == "" {
		return leaveBuilding(g, door)
	}

	dest, err := g.LoadMap(door.Target)
	if err != nil {
		logMessage(g, "The door won't open.")
		return fmt.Errorf("door at %v: %w", door.Pos, err)
	}

	cell := dest.Spawn
	if door.Spawn != nil {
		if dest.IsWalkable(*door.Spawn) {
			cell = *door.Spawn
		} else {
			fmt.Fprintf(os.Stderr, "Warning: door spawn %v on %s is not walkable, using map spawn\n", *door.Spawn, dest.ID)
		}
	}

	from := state.Location{MapID: g.Map.ID, Cell: door.Pos, Facing: g.Player.Facing()}
	firstVisit := !g.Visited.Has(dest.ID)
	g.EnterMap(dest, cell)
	g.ReturnTo = &from
	logMessage(g, "You enter ROOM{%s}", dest.Name)
	if firstVisit {
		ShowMapHint(g, dest)
	}
	return nil
}

// leaveBuilding follows a return door. The player comes out beside the
// entrance they used, on the side they walked in from.
func leaveBuilding(g *state.Game, door campusmap.Door) error {
	back := g.ReturnTo
	if back == nil {
		if g.Map.ID == g.Home {
			if door.Target == "" {
				return nil
			}
			back = &state.Location{MapID: door.Target, Cell: world.Pt(-1, -1)}
		} else {
			back = &state.Location{MapID: g.Home, Cell: world.Pt(-1, -1)}
		}
	}

	dest, err := g.LoadMap(back.MapID)
	if err != nil {
		logMessage(g, "The door won't open.")
		return fmt.Errorf("return door at %v: %w", door.Pos, err)
	}

	cell := dest.Spawn
	if dest.InBounds(back.Cell) {
		cell = dest.ExitNear(back.Cell, back.Facing.Opposite())
	}
	g.EnterMap(dest, cell)
	g.ReturnTo = nil
	logMessage(g, "You step out into ROOM{%s}", dest.Name)
	return nil
}

func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.ApplyMarkup(msg, a...))
}
