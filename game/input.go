package game

import (
	"math"

	"github.com/lguibr/solopong/utils"
)

// InputAdapter turns pointer positions into a player paddle target. Only
// the latest pointer position matters; earlier ones are overwritten.
type InputAdapter struct {
	paddleHeight float64
	fieldHeight  float64
	target       float64
}

// NewInputAdapter starts with the target centered, where the player
// paddle starts.
func NewInputAdapter(cfg utils.Config) *InputAdapter {
	return &InputAdapter{
		paddleHeight: cfg.PaddleHeight,
		fieldHeight:  cfg.Height,
		target:       (cfg.Height - cfg.PaddleHeight) / 2,
	}
}

// OnPointerMove centers the paddle on pointerY, clamped to the field. A
// NaN coordinate is ignored and the previous target kept.
func (a *InputAdapter) OnPointerMove(pointerY float64) float64 {
	if math.IsNaN(pointerY) {
		return a.target
	}
	a.target = utils.Clamp(pointerY-a.paddleHeight/2, 0, a.fieldHeight-a.paddleHeight)
	return a.target
}

// Target is the last computed paddle position.
func (a *InputAdapter) Target() float64 { return a.target }
