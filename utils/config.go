// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned (wrapped) by Validate and LoadConfig when a
// configuration cannot host a session.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configurable game parameters.
type Config struct {
	// Timing
	TickPeriod    time.Duration `json:"tickPeriod" toml:"tick_period"`       // Time between session ticks
	ReferenceStep time.Duration `json:"referenceStep" toml:"reference_step"` // Step at which per-tick speeds apply unscaled

	// Playfield
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`

	// Paddles
	PaddleWidth  float64 `json:"paddleWidth" toml:"paddle_width"`
	PaddleHeight float64 `json:"paddleHeight" toml:"paddle_height"`
	PaddleInset  float64 `json:"paddleInset" toml:"paddle_inset"` // Gap between a paddle and its wall

	// Ball
	BallSize          float64 `json:"ballSize" toml:"ball_size"`
	BallSpeedX        float64 `json:"ballSpeedX" toml:"ball_speed_x"`               // |vx| after a reset
	BallSpeedY        float64 `json:"ballSpeedY" toml:"ball_speed_y"`               // |vy| after a reset
	BounceSpeedFactor float64 `json:"bounceSpeedFactor" toml:"bounce_speed_factor"` // |vx| multiplier per paddle hit
	SpinFactor        float64 `json:"spinFactor" toml:"spin_factor"`                // vy per unit of offset from paddle center
	MaxBallSpeed      float64 `json:"maxBallSpeed" toml:"max_ball_speed"`           // Cap on |vx|; 0 leaves growth unbounded

	// Opponent
	OpponentSpeed    float64 `json:"opponentSpeed" toml:"opponent_speed"`
	OpponentDeadZone float64 `json:"opponentDeadZone" toml:"opponent_dead_zone"`

	// Host
	Seed       int64  `json:"seed" toml:"seed"` // 0 seeds from the clock
	ListenAddr string `json:"listenAddr" toml:"listen_addr"`
	LogLevel   string `json:"logLevel" toml:"log_level"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Timing
		TickPeriod:    time.Second / 60,
		ReferenceStep: time.Second / 60,

		// Playfield
		Width:  800,
		Height: 500,

		// Paddles
		PaddleWidth:  10,
		PaddleHeight: 80,
		PaddleInset:  10,

		// Ball
		BallSize:          12,
		BallSpeedX:        4,
		BallSpeedY:        3,
		BounceSpeedFactor: 1.1,
		SpinFactor:        0.2,
		MaxBallSpeed:      0,

		// Opponent
		OpponentSpeed:    3.2,
		OpponentDeadZone: 10,

		// Host
		Seed:       0,
		ListenAddr: ":3001",
		LogLevel:   "info",
	}
}

// PlayerX is the fixed left edge of the player paddle.
func (c Config) PlayerX() float64 { return c.PaddleInset }

// OpponentX is the fixed left edge of the opponent paddle, near the far wall.
func (c Config) OpponentX() float64 { return c.Width - c.PaddleWidth - c.PaddleInset }

// Validate checks the preconditions a session relies on. It is run once,
// at session start, never per tick.
func (c Config) Validate() error {
	if name, ok := c.firstNonFinite(); ok {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidConfig, name)
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: playfield %gx%g must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle %gx%g must be positive", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case c.PaddleHeight > c.Height:
		return fmt.Errorf("%w: paddle height %g exceeds playfield height %g", ErrInvalidConfig, c.PaddleHeight, c.Height)
	case c.BallSize <= 0 || c.BallSize > c.Height || c.BallSize > c.Width:
		return fmt.Errorf("%w: ball size %g does not fit a %gx%g playfield", ErrInvalidConfig, c.BallSize, c.Width, c.Height)
	case c.PaddleInset < 0:
		return fmt.Errorf("%w: paddle inset %g is negative", ErrInvalidConfig, c.PaddleInset)
	case c.PlayerX()+c.PaddleWidth >= c.OpponentX():
		return fmt.Errorf("%w: paddles overlap on a playfield %g wide", ErrInvalidConfig, c.Width)
	case c.BallSpeedX <= 0 || c.BallSpeedY < 0:
		return fmt.Errorf("%w: ball speeds (%g, %g) out of range", ErrInvalidConfig, c.BallSpeedX, c.BallSpeedY)
	case c.BounceSpeedFactor <= 0:
		return fmt.Errorf("%w: bounce speed factor %g must be positive", ErrInvalidConfig, c.BounceSpeedFactor)
	case c.MaxBallSpeed < 0:
		return fmt.Errorf("%w: max ball speed %g is negative", ErrInvalidConfig, c.MaxBallSpeed)
	case c.OpponentSpeed < 0 || c.OpponentDeadZone < 0:
		return fmt.Errorf("%w: opponent speed %g / dead-zone %g is negative", ErrInvalidConfig, c.OpponentSpeed, c.OpponentDeadZone)
	case c.ReferenceStep <= 0 || c.TickPeriod <= 0:
		return fmt.Errorf("%w: tick period %v and reference step %v must be positive", ErrInvalidConfig, c.TickPeriod, c.ReferenceStep)
	}
	return nil
}

func (c Config) firstNonFinite() (string, bool) {
	fields := []struct {
		name  string
		value float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"paddle_width", c.PaddleWidth},
		{"paddle_height", c.PaddleHeight},
		{"paddle_inset", c.PaddleInset},
		{"ball_size", c.BallSize},
		{"ball_speed_x", c.BallSpeedX},
		{"ball_speed_y", c.BallSpeedY},
		{"bounce_speed_factor", c.BounceSpeedFactor},
		{"spin_factor", c.SpinFactor},
		{"max_ball_speed", c.MaxBallSpeed},
		{"opponent_speed", c.OpponentSpeed},
		{"opponent_dead_zone", c.OpponentDeadZone},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return f.name, true
		}
	}
	return "", false
}

// LoadConfig decodes a TOML file over DefaultConfig and validates the
// result. Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
