package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaddle_Centered(t *testing.T) {
	p := NewPaddle(10, 10, 80, 500)
	assert.Equal(t, 210.0, p.Y)
	assert.Equal(t, 250.0, p.CenterY())
	assert.Equal(t, Rect{X: 10, Y: 210, Width: 10, Height: 80}, p.Rect())
}

func TestPaddle_SetYClamps(t *testing.T) {
	p := NewPaddle(10, 10, 80, 500)

	p.SetY(-30, 500)
	assert.Equal(t, 0.0, p.Y)

	p.SetY(1000, 500)
	assert.Equal(t, 420.0, p.Y)

	p.SetY(123.5, 500)
	assert.Equal(t, 123.5, p.Y)
}

func TestPaddle_Track(t *testing.T) {
	testCases := []struct {
		name      string
		y, target float64
		wantY     float64
		moved     bool
	}{
		{"within dead-zone", 210, 255, 210, false},
		{"target below", 210, 300, 213.2, true},
		{"target above", 210, 200, 206.8, true},
		{"pinned at top", 1, 0, 0, true},
		{"already at top", 0, -100, 0, false},
		{"pinned at bottom", 419, 499, 420, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paddle{X: 770, Y: tc.y, Width: 10, Height: 80}
			moved := p.Track(tc.target, 10, 3.2, 500)
			assert.InDelta(t, tc.wantY, p.Y, 1e-9)
			assert.Equal(t, tc.moved, moved)
		})
	}
}
