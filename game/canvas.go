package game

// Playfield is the fixed rectangle the game is played in. Its origin is
// the top-left corner; y grows downwards.
type Playfield struct {
	Width  float64 `json:"width" msgpack:"width"`
	Height float64 `json:"height" msgpack:"height"`
}

// CenterX is the x of the vertical guide line presentations draw.
func (f Playfield) CenterX() float64 { return f.Width / 2 }

// Rect is an axis-aligned box in playfield coordinates.
type Rect struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Width  float64 `json:"width" msgpack:"width"`
	Height float64 `json:"height" msgpack:"height"`
}
