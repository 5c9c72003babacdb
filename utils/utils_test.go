package utils

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 7.5, Clamp(7.5, 0, 10))
	assert.Equal(t, 3.0, Clamp(9, 3, 1), "inverted bounds resolve to lo")
}

func TestRandomSign(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := map[float64]int{}
	for i := 0; i < 1000; i++ {
		s := RandomSign(rng)
		assert.Contains(t, []float64{-1, 1}, s)
		seen[s]++
	}
	assert.Greater(t, seen[1], 400)
	assert.Greater(t, seen[-1], 400)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [4]float64
		want bool
	}{
		{"inside", [4]float64{5, 5, 2, 2}, [4]float64{0, 0, 10, 10}, true},
		{"partial", [4]float64{8, 8, 4, 4}, [4]float64{0, 0, 10, 10}, true},
		{"touching right edge", [4]float64{10, 0, 2, 2}, [4]float64{0, 0, 10, 10}, false},
		{"touching bottom edge", [4]float64{0, 10, 2, 2}, [4]float64{0, 0, 10, 10}, false},
		{"apart", [4]float64{20, 20, 2, 2}, [4]float64{0, 0, 10, 10}, false},
	}
	for _, tc := range tests {
		got := Overlaps(tc.a[0], tc.a[1], tc.a[2], tc.a[3], tc.b[0], tc.b[1], tc.b[2], tc.b[3])
		assert.Equal(t, tc.want, got, tc.name)
	}
}
