package player

import (
	"math"
	"testing"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
)

// openCells is a Walker where only the listed cells are walkable.
type openCells map[world.Point]bool

func (o openCells) IsWalkable(p world.Point) bool { return o[p] }

func corridor(t *testing.T, n int) openCells {
	t.Helper()
	o := openCells{}
	for x := 0; x < n; x++ {
		o[world.Pt(x, 0)] = true
	}
	return o
}

func newPlayer(t *testing.T) *Player {
	t.Helper()
	return New(world.Pt(0, 0), 50, items.NewInventory(items.DefaultCapacity))
}

// step runs Update with a fixed frame time until the move completes.
func step(t *testing.T, p *Player) int {
	t.Helper()
	for frame := 1; frame <= 120; frame++ {
		if p.Update(1.0 / 60) {
			return frame
		}
	}
	t.Fatal("move never completed")
	return 0
}

func TestTryMove_Walkable(t *testing.T) {
	p := newPlayer(t)
	w := corridor(t, 3)

	if !p.TryMove(world.East, w) {
		t.Fatal("TryMove(East) rejected")
	}
	if p.State() != Moving || p.Target() != world.Pt(1, 0) || p.Cell() != world.Pt(0, 0) {
		t.Errorf("after TryMove: state=%v cell=%v target=%v", p.State(), p.Cell(), p.Target())
	}

	frames := step(t, p)
	// 8 cells/s at 60 fps takes 8 frames
	if frames != 8 {
		t.Errorf("move took %d frames, want 8", frames)
	}
	if p.State() != Idle || p.Cell() != world.Pt(1, 0) {
		t.Errorf("after arrival: state=%v cell=%v", p.State(), p.Cell())
	}
}

func TestTryMove_Blocked(t *testing.T) {
	p := newPlayer(t)
	w := corridor(t, 3)

	if p.TryMove(world.North, w) {
		t.Error("TryMove into a wall accepted")
	}
	if p.State() != Idle || p.Cell() != world.Pt(0, 0) {
		t.Errorf("blocked move changed state: %v %v", p.State(), p.Cell())
	}
	if p.Facing() != world.North {
		t.Errorf("facing = %v, want North even when blocked", p.Facing())
	}
	if p.TryMove(world.None, w) {
		t.Error("TryMove(None) accepted")
	}
}

func TestTryMove_IgnoredWhileMoving(t *testing.T) {
	p := newPlayer(t)
	w := corridor(t, 3)
	w[world.Pt(0, 1)] = true

	p.TryMove(world.East, w)
	p.Update(1.0 / 60)
	if p.TryMove(world.South, w) {
		t.Error("TryMove accepted mid-move")
	}
	if p.Target() != world.Pt(1, 0) || p.Facing() != world.East {
		t.Errorf("mid-move input changed target=%v facing=%v", p.Target(), p.Facing())
	}
}

func TestMove_OneCellPerCompletedStep(t *testing.T) {
	p := newPlayer(t)
	w := corridor(t, 5)

	arrivals := 0
	for frame := 0; frame < 600; frame++ {
		p.TryMove(world.East, w)
		if p.Update(1.0 / 60) {
			arrivals++
			if p.Cell().X != arrivals {
				t.Fatalf("after %d arrivals cell = %v", arrivals, p.Cell())
			}
		}
		if !w.IsWalkable(p.Cell()) || !w.IsWalkable(p.Target()) {
			t.Fatalf("player on unwalkable cell %v -> %v", p.Cell(), p.Target())
		}
	}
	if arrivals != 4 || p.Cell() != world.Pt(4, 0) {
		t.Errorf("arrivals=%d cell=%v, want 4 arrivals ending at (4, 0)", arrivals, p.Cell())
	}
}

func TestPosition_Interpolates(t *testing.T) {
	p := newPlayer(t)
	p.TryMove(world.East, corridor(t, 2))

	x, y := p.Position(50)
	if x != 0 || y != 0 {
		t.Errorf("start position = %v,%v, want 0,0", x, y)
	}

	// Half way through the move smoothstep is exactly 0.5
	p.Update(0.5 / p.StepsPerSecond)
	x, _ = p.Position(50)
	if math.Abs(x-25) > 1e-9 {
		t.Errorf("mid position x = %v, want 25", x)
	}

	step(t, p)
	x, _ = p.Position(50)
	if x != 50 {
		t.Errorf("end position x = %v, want 50", x)
	}
	cx, cy := p.Center()
	if cx != 1.5 || cy != 0.5 {
		t.Errorf("Center = %v,%v, want 1.5,0.5", cx, cy)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.25, 0.15625}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Smoothstep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFlashlightToggleWhileMoving(t *testing.T) {
	p := newPlayer(t)
	p.TryMove(world.East, corridor(t, 2))
	if !p.ToggleFlashlight() || !p.FlashlightOn() {
		t.Error("flashlight should turn on mid-move")
	}
	if p.State() != Moving {
		t.Error("toggling the flashlight interrupted the move")
	}
}

func TestTeleport(t *testing.T) {
	p := newPlayer(t)
	p.TryMove(world.East, corridor(t, 2))
	p.Teleport(world.Pt(7, 7))
	if p.State() != Idle || p.Cell() != world.Pt(7, 7) || p.Target() != world.Pt(7, 7) {
		t.Errorf("after Teleport: %v %v %v", p.State(), p.Cell(), p.Target())
	}
	if p.Update(1) {
		t.Error("Teleport must not report an arrival")
	}
}

func TestHeal(t *testing.T) {
	p := newPlayer(t)
	if got := p.Heal(25); got != 25 || p.Health() != 75 {
		t.Errorf("Heal(25) = %d, health %d", got, p.Health())
	}
	if got := p.Heal(50); got != 25 || p.Health() != MaxHealth {
		t.Errorf("Heal(50) = %d, health %d, want clamp to %d", got, p.Health(), MaxHealth)
	}
	p.SetHealth(-5)
	if p.Health() != 0 {
		t.Errorf("SetHealth(-5) = %d, want 0", p.Health())
	}
}
