package game

import (
	"math"
	"math/rand"

	"github.com/lguibr/solopong/utils"
)

type Ball struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Vx   float64 `json:"vx"`
	Vy   float64 `json:"vy"`
	Size float64 `json:"size"`
}

// Move integrates the velocity over scale reference steps.
func (b *Ball) Move(scale float64) {
	b.X += b.Vx * scale
	b.Y += b.Vy * scale
}

func (b *Ball) CenterY() float64 { return b.Y + b.Size/2 }

// CollideWalls reflects the ball off the top and bottom walls. The
// reflection is exact and y is clamped back into the field.
func (b *Ball) CollideWalls(fieldHeight float64) bool {
	if b.Y > 0 && b.Y+b.Size < fieldHeight {
		return false
	}
	b.Vy = -b.Vy
	b.Y = utils.Clamp(b.Y, 0, fieldHeight-b.Size)
	return true
}

func (b *Ball) InterceptsPaddle(p *Paddle) bool {
	return utils.Overlaps(b.X, b.Y, b.Size, b.Size, p.X, p.Y, p.Width, p.Height)
}

// BounceOff sends the ball back from face of p: x snaps to the paddle edge,
// vx reverses and grows, vy is set from the offset between the ball center
// and the paddle center.
func (b *Ball) BounceOff(p *Paddle, face Face, r Bounce) {
	switch face {
	case FaceRight:
		b.X = p.X + p.Width
	case FaceLeft:
		b.X = p.X - b.Size
	}
	b.Vx *= -r.SpeedFactor
	if r.MaxSpeed > 0 && math.Abs(b.Vx) > r.MaxSpeed {
		b.Vx = math.Copysign(r.MaxSpeed, b.Vx)
	}
	b.Vy = r.Spin * (b.CenterY() - p.CenterY())
}

// OutOfBounds reports which way the ball left the field horizontally:
// -1 past the left wall, +1 past the right wall, 0 still in play.
func (b *Ball) OutOfBounds(fieldWidth float64) int {
	switch {
	case b.X < 0:
		return -1
	case b.X > fieldWidth:
		return 1
	}
	return 0
}

// Reset centers the ball and serves it with base speeds, drawing the sign
// of each axis independently.
func (b *Ball) Reset(field Playfield, speedX, speedY float64, rng *rand.Rand) {
	b.X = (field.Width - b.Size) / 2
	b.Y = (field.Height - b.Size) / 2
	b.Vx = speedX * utils.RandomSign(rng)
	b.Vy = speedY * utils.RandomSign(rng)
}
