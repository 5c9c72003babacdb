// File: game/testutils_test.go
package game

import (
	"math/rand"
	"testing"

	"github.com/lguibr/solopong/utils"
)

// --- Test Helpers ---

// newTestSimulation builds a seeded simulation on the default config.
func newTestSimulation(t *testing.T) *Simulation {
	t.Helper()
	return newTestSimulationWithConfig(t, utils.DefaultConfig())
}

func newTestSimulationWithConfig(t *testing.T, cfg utils.Config) *Simulation {
	t.Helper()
	sim, err := NewSimulation(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return sim
}

// placeBall parks the ball at (x, y) with the given velocity.
func placeBall(sim *Simulation, x, y, vx, vy float64) {
	b := &sim.World().Ball
	b.X, b.Y, b.Vx, b.Vy = x, y, vx, vy
}

// centeredTarget is the player paddle position that leaves the paddle
// where it starts.
func centeredTarget(cfg utils.Config) float64 {
	return (cfg.Height - cfg.PaddleHeight) / 2
}
