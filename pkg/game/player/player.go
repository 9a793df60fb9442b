// Package player implements the grid-locked player with smooth movement
// between cells.
package player

import (
	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
)

// DefaultStepsPerSecond is how many cells per second the player crosses.
const DefaultStepsPerSecond = 8.0

// MaxHealth caps the player's health.
const MaxHealth = 100

// State is the movement state of the player.
type State int

// Movement states
const (
	Idle State = iota
	Moving
)

func (s State) String() string {
	if s == Moving {
		return "Moving"
	}
	return "Idle"
}

// Walker answers whether a cell can be entered. *campusmap.Map satisfies it.
type Walker interface {
	IsWalkable(p world.Point) bool
}

// Player is the controllable character.
type Player struct {
	StepsPerSecond float64

	cell       world.Point
	target     world.Point
	progress   float64
	state      State
	facing     world.Direction
	flashlight bool
	health     int
	inventory  *items.Inventory
}

// New creates an idle player standing on cell.
func New(cell world.Point, health int, inv *items.Inventory) *Player {
	p := &Player{
		StepsPerSecond: DefaultStepsPerSecond,
		cell:           cell,
		target:         cell,
		facing:         world.South,
		inventory:      inv,
	}
	p.SetHealth(health)
	return p
}

// TryMove starts a move one cell in dir. It is ignored while a move is in
// progress or when the destination isn't walkable. Facing changes whenever
// the player is idle, even if the move is blocked.
func (p *Player) TryMove(dir world.Direction, w Walker) bool {
	if p.state == Moving || !dir.IsValid() {
		return false
	}
	p.facing = dir
	next := p.cell.Add(dir)
	if !w.IsWalkable(next) {
		return false
	}
	p.target = next
	p.progress = 0
	p.state = Moving
	return true
}

// Update advances an in-progress move by dt seconds. It returns true on the
// frame the player arrives on the target cell.
func (p *Player) Update(dt float64) bool {
	if p.state != Moving {
		return false
	}
	p.progress += p.StepsPerSecond * dt
	if p.progress < 1 {
		return false
	}
	p.progress = 0
	p.cell = p.target
	p.state = Idle
	return true
}

// Teleport places the player on cell immediately, cancelling any move.
// No arrival is reported, so door and item triggers don't fire.
func (p *Player) Teleport(cell world.Point) {
	p.cell = cell
	p.target = cell
	p.progress = 0
	p.state = Idle
}

// Cell returns the cell the player occupies. While moving this is the cell
// being left.
func (p *Player) Cell() world.Point { return p.cell }

// Target returns the cell the player is moving to, or Cell when idle.
func (p *Player) Target() world.Point { return p.target }

// State returns Idle or Moving.
func (p *Player) State() State { return p.state }

// Progress returns how far the current move is, from 0 to 1.
func (p *Player) Progress() float64 { return p.progress }

// Facing returns the last direction the player tried to move in.
func (p *Player) Facing() world.Direction { return p.facing }

// Position returns the interpolated top-left pixel position for the given
// tile size, eased with smoothstep.
func (p *Player) Position(tileSize int) (x, y float64) {
	t := Smoothstep(p.progress)
	ts := float64(tileSize)
	x = (float64(p.cell.X) + float64(p.target.X-p.cell.X)*t) * ts
	y = (float64(p.cell.Y) + float64(p.target.Y-p.cell.Y)*t) * ts
	return x, y
}

// Center returns the interpolated position of the player's centre in tile
// units, used for lighting.
func (p *Player) Center() (x, y float64) {
	t := Smoothstep(p.progress)
	x = float64(p.cell.X) + float64(p.target.X-p.cell.X)*t + 0.5
	y = float64(p.cell.Y) + float64(p.target.Y-p.cell.Y)*t + 0.5
	return x, y
}

// ToggleFlashlight flips the flashlight and returns the new state.
func (p *Player) ToggleFlashlight() bool {
	p.flashlight = !p.flashlight
	return p.flashlight
}

// FlashlightOn reports whether the flashlight is on.
func (p *Player) FlashlightOn() bool { return p.flashlight }

// SetFlashlight switches the flashlight on or off.
func (p *Player) SetFlashlight(on bool) { p.flashlight = on }

// Health returns current health.
func (p *Player) Health() int { return p.health }

// SetHealth sets health, clamped to 0..MaxHealth.
func (p *Player) SetHealth(h int) {
	p.health = max(0, min(h, MaxHealth))
}

// Heal adds n health up to MaxHealth and returns how much was restored.
func (p *Player) Heal(n int) int {
	before := p.health
	p.SetHealth(p.health + n)
	return p.health - before
}

// Inventory returns the player's inventory.
func (p *Player) Inventory() *items.Inventory { return p.inventory }

// Smoothstep eases t in [0, 1] as t*t*(3-2t).
func Smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
