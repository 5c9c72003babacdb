package game

// Face is the side of a paddle the ball is sent back from.
type Face int

const (
	// FaceRight is the player paddle's face, looking into the field from
	// the left wall.
	FaceRight Face = iota
	// FaceLeft is the opponent paddle's face, looking back from the right
	// wall.
	FaceLeft
)

func (f Face) String() string {
	if f == FaceLeft {
		return "left"
	}
	return "right"
}

// Bounce holds the response applied when the ball meets a paddle.
type Bounce struct {
	SpeedFactor float64 // |vx| multiplier
	Spin        float64 // vy per unit offset from paddle center
	MaxSpeed    float64 // cap on |vx|, 0 for none
}
