package game

import "github.com/lguibr/solopong/utils"

type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewPaddle(x, width, height, fieldHeight float64) Paddle {
	return Paddle{
		X:      x,
		Y:      (fieldHeight - height) / 2,
		Width:  width,
		Height: height,
	}
}

func (p *Paddle) CenterY() float64 { return p.Y + p.Height/2 }

func (p *Paddle) MaxY(fieldHeight float64) float64 { return fieldHeight - p.Height }

// SetY moves the paddle, clamped to [0, fieldHeight-Height].
func (p *Paddle) SetY(y, fieldHeight float64) {
	p.Y = utils.Clamp(y, 0, p.MaxY(fieldHeight))
}

// Track moves the paddle one step toward targetY unless the paddle center
// is already within deadZone of it. It reports whether the paddle moved.
func (p *Paddle) Track(targetY, deadZone, step, fieldHeight float64) bool {
	before := p.Y
	center := p.CenterY()
	switch {
	case center < targetY-deadZone:
		p.SetY(p.Y+step, fieldHeight)
	case center > targetY+deadZone:
		p.SetY(p.Y-step, fieldHeight)
	default:
		return false
	}
	return p.Y != before
}

func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}
