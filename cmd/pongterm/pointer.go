package main

import "github.com/lguibr/solopong/utils"

// keyAction is what a key press asks the client to do.
type keyAction int

const (
	keyIgnored keyAction = iota
	keyMoved
	keyQuit
)

// virtualPointer stands in for a mouse: keys nudge a y coordinate that is
// sent to the server like a pointer position.
type virtualPointer struct {
	y      float64
	step   float64
	height float64
}

func newVirtualPointer(height, step float64) *virtualPointer {
	return &virtualPointer{y: height / 2, step: step, height: height}
}

func (p *virtualPointer) handleKey(b byte) keyAction {
	switch b {
	case 'w', 'W', 'k', 'K':
		p.y = utils.Clamp(p.y-p.step, 0, p.height)
	case 's', 'S', 'j', 'J':
		p.y = utils.Clamp(p.y+p.step, 0, p.height)
	case 'q', 'Q', 3: // 3 is Ctrl-C in raw mode
		return keyQuit
	default:
		return keyIgnored
	}
	return keyMoved
}
