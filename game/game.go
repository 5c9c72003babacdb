package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lguibr/solopong/utils"
)

// World is the complete mutable state of one session.
type World struct {
	Field    Playfield
	Player   Paddle
	Opponent Paddle
	Ball     Ball
	Tick     uint64
	Rally    int // paddle hits since the last serve
}

// Simulation owns a World and advances it one tick at a time. It is not
// safe for concurrent use; a session drives it from a single goroutine.
type Simulation struct {
	cfg        utils.Config
	world      World
	rng        *rand.Rand
	bounce     Bounce
	lastEvents Events
}

// NewSimulation validates cfg and builds a session with both paddles
// centered and the ball served from the middle. A nil rng is seeded from
// cfg.Seed, or from the clock when the seed is zero.
func NewSimulation(cfg utils.Config, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	s := &Simulation{
		cfg: cfg,
		rng: rng,
		bounce: Bounce{
			SpeedFactor: cfg.BounceSpeedFactor,
			Spin:        cfg.SpinFactor,
			MaxSpeed:    cfg.MaxBallSpeed,
		},
	}
	s.Reset()
	return s, nil
}

// Reset puts the session back to its starting state.
func (s *Simulation) Reset() {
	field := Playfield{Width: s.cfg.Width, Height: s.cfg.Height}
	s.world = World{
		Field:    field,
		Player:   NewPaddle(s.cfg.PlayerX(), s.cfg.PaddleWidth, s.cfg.PaddleHeight, field.Height),
		Opponent: NewPaddle(s.cfg.OpponentX(), s.cfg.PaddleWidth, s.cfg.PaddleHeight, field.Height),
		Ball:     Ball{Size: s.cfg.BallSize},
	}
	s.serve()
	s.lastEvents = 0
}

func (s *Simulation) serve() {
	s.world.Ball.Reset(s.world.Field, s.cfg.BallSpeedX, s.cfg.BallSpeedY, s.rng)
	s.world.Rally = 0
}

// World exposes the live state. Callers must not retain it across ticks
// from another goroutine.
func (s *Simulation) World() *World { return &s.world }

func (s *Simulation) Config() utils.Config { return s.cfg }

// Scale converts a tick duration into reference steps. Non-positive
// durations count as one reference step.
func (s *Simulation) Scale(dt time.Duration) float64 {
	if dt <= 0 {
		return 1
	}
	return float64(dt) / float64(s.cfg.ReferenceStep)
}

// Advance runs one tick: player paddle, ball motion, walls, paddles,
// scoring, then the opponent. It returns the resulting snapshot.
func (s *Simulation) Advance(dt time.Duration, playerTargetY float64) Snapshot {
	w := &s.world
	scale := s.Scale(dt)
	var events Events

	w.Player.SetY(playerTargetY, w.Field.Height)

	w.Ball.Move(scale)

	if w.Ball.CollideWalls(w.Field.Height) {
		events |= EventWallBounce
	}

	// Both paddles are tested; geometry allows at most one to apply.
	if w.Ball.InterceptsPaddle(&w.Player) {
		w.Ball.BounceOff(&w.Player, FaceRight, s.bounce)
		w.Rally++
		events |= EventPlayerHit
	}
	if w.Ball.InterceptsPaddle(&w.Opponent) {
		w.Ball.BounceOff(&w.Opponent, FaceLeft, s.bounce)
		w.Rally++
		events |= EventOpponentHit
	}

	switch w.Ball.OutOfBounds(w.Field.Width) {
	case -1:
		events |= EventOpponentScored
		s.serve()
	case 1:
		events |= EventPlayerScored
		s.serve()
	}

	w.Opponent.Track(w.Ball.CenterY(), s.cfg.OpponentDeadZone, s.cfg.OpponentSpeed*scale, w.Field.Height)

	w.Tick++
	s.lastEvents = events
	return s.Snapshot()
}

// Snapshot returns the current state with the events of the last tick.
func (s *Simulation) Snapshot() Snapshot {
	w := &s.world
	return Snapshot{
		Tick:     w.Tick,
		Field:    w.Field,
		Player:   w.Player.Rect(),
		Opponent: w.Opponent.Rect(),
		Ball: BallState{
			X:    w.Ball.X,
			Y:    w.Ball.Y,
			Size: w.Ball.Size,
			Vx:   w.Ball.Vx,
			Vy:   w.Ball.Vy,
		},
		Rally:  w.Rally,
		Events: s.lastEvents,
	}
}
