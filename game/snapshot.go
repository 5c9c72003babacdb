package game

import "strings"

// Events flags what happened during one tick.
type Events uint8

const (
	EventWallBounce Events = 1 << iota
	EventPlayerHit
	EventOpponentHit
	EventPlayerScored   // ball left past the opponent's wall
	EventOpponentScored // ball left past the player's wall
)

var eventNames = []struct {
	flag Events
	name string
}{
	{EventWallBounce, "wall"},
	{EventPlayerHit, "playerHit"},
	{EventOpponentHit, "opponentHit"},
	{EventPlayerScored, "playerScored"},
	{EventOpponentScored, "opponentScored"},
}

func (e Events) Has(flag Events) bool { return e&flag != 0 }

func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	names := make([]string, 0, len(eventNames))
	for _, en := range eventNames {
		if e.Has(en.flag) {
			names = append(names, en.name)
		}
	}
	return strings.Join(names, "|")
}

// BallState is the drawable part of the ball plus its velocity.
type BallState struct {
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
	Size float64 `json:"size" msgpack:"size"`
	Vx   float64 `json:"vx" msgpack:"vx"`
	Vy   float64 `json:"vy" msgpack:"vy"`
}

// Snapshot is the read-only view of a simulation handed to presentations.
// It is a value: holding one never aliases simulation state.
type Snapshot struct {
	Tick     uint64    `json:"tick" msgpack:"tick"`
	Field    Playfield `json:"field" msgpack:"field"`
	Player   Rect      `json:"player" msgpack:"player"`
	Opponent Rect      `json:"opponent" msgpack:"opponent"`
	Ball     BallState `json:"ball" msgpack:"ball"`
	Rally    int       `json:"rally" msgpack:"rally"`
	Events   Events    `json:"events" msgpack:"events"`
}
