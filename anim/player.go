package anim

import "image"

// Sequence names one of the player's two frame sets.
type Sequence int

const (
	Walk Sequence = iota
	Idle
)

func (s Sequence) String() string {
	if s == Idle {
		return "idle"
	}
	return "walk"
}

// Player cycles through two named frame sequences. It is a pure state
// machine driven by Tick and Toggle, with no display or timer dependency,
// so playback behavior is testable without a terminal.
//
// The zero cursor points at the first frame; Tick advances it modulo the
// active sequence's length; Toggle swaps the active sequence and rewinds.
type Player struct {
	walk, idle []image.Image
	active     Sequence
	cursor     int
}

// NewPlayer returns a player positioned at the first walk frame.
func NewPlayer(walk, idle []image.Image) *Player {
	return &Player{walk: walk, idle: idle}
}

// Sequence reports the active sequence.
func (p *Player) Sequence() Sequence { return p.active }

// Cursor reports the index of the frame currently shown.
func (p *Player) Cursor() int { return p.cursor }

// Frame returns the frame under the cursor.
func (p *Player) Frame() image.Image { return p.frames()[p.cursor] }

// Tick advances the cursor by one frame, wrapping at the end of the active
// sequence.
func (p *Player) Tick() {
	p.cursor = (p.cursor + 1) % len(p.frames())
}

// Toggle swaps the active sequence and rewinds to its first frame.
func (p *Player) Toggle() {
	if p.active == Walk {
		p.active = Idle
	} else {
		p.active = Walk
	}
	p.cursor = 0
}

func (p *Player) frames() []image.Image {
	if p.active == Idle {
		return p.idle
	}
	return p.walk
}
