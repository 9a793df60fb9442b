// Package ebiten provides an Ebiten-based 2D graphical renderer for Campus Lockdown.
package ebiten

import (
	"time"

	"campuslockdown/pkg/game/renderer"
)

// trackMessages copies messages added since the last frame, stamping them
// with the current time so they can fade out.
func (e *EbitenRenderer) trackMessages() {
	g := e.game
	added := g.MessageSerial - e.lastSerial
	if added <= 0 {
		return
	}
	e.lastSerial = g.MessageSerial

	added = min(added, len(g.Messages))
	now := time.Now()
	for _, msg := range g.Messages[len(g.Messages)-added:] {
		e.trackedMessages = append(e.trackedMessages, messageEntry{Text: msg, Timestamp: now})
	}

	// Drop messages that have fully faded
	kept := e.trackedMessages[:0]
	for _, m := range e.trackedMessages {
		if now.Sub(m.Timestamp) < messageLifetime {
			kept = append(kept, m)
		}
	}
	e.trackedMessages = kept
}

// updateSnapshot builds the frame Draw will show
func (e *EbitenRenderer) updateSnapshot() {
	e.trackMessages()
	e.snapshot = renderer.BuildFrame(e.game, e.windowWidth, e.windowHeight, e.tileSize)
	e.snapshotValid = true
}
