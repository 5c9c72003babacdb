package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10.0, cfg.PlayerX())
	assert.Equal(t, cfg.Width-30, cfg.OpponentX())
	assert.Equal(t, 0.0, cfg.MaxBallSpeed, "speed growth is uncapped unless configured")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"paddle taller than field", func(c *Config) { c.PaddleHeight = c.Height + 1 }},
		{"ball larger than field", func(c *Config) { c.BallSize = c.Height + 1 }},
		{"zero ball", func(c *Config) { c.BallSize = 0 }},
		{"paddles overlap", func(c *Config) { c.Width = 40 }},
		{"negative inset", func(c *Config) { c.PaddleInset = -2 }},
		{"zero ball speed", func(c *Config) { c.BallSpeedX = 0 }},
		{"zero bounce factor", func(c *Config) { c.BounceSpeedFactor = 0 }},
		{"negative cap", func(c *Config) { c.MaxBallSpeed = -1 }},
		{"negative opponent speed", func(c *Config) { c.OpponentSpeed = -3 }},
		{"zero reference step", func(c *Config) { c.ReferenceStep = 0 }},
		{"zero tick period", func(c *Config) { c.TickPeriod = 0 }},
		{"NaN width", func(c *Config) { c.Width = math.NaN() }},
		{"infinite height", func(c *Config) { c.Height = math.Inf(1) }},
		{"NaN paddle height", func(c *Config) { c.PaddleHeight = math.NaN() }},
		{"NaN ball size", func(c *Config) { c.BallSize = math.NaN() }},
		{"infinite ball speed", func(c *Config) { c.BallSpeedY = math.Inf(-1) }},
		{"NaN spin", func(c *Config) { c.SpinFactor = math.NaN() }},
		{"infinite cap", func(c *Config) { c.MaxBallSpeed = math.Inf(1) }},
		{"NaN dead-zone", func(c *Config) { c.OpponentDeadZone = math.NaN() }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.toml")
	content := `
width = 640.0
height = 480.0
tick_period = "10ms"
opponent_speed = 2.5
listen_addr = ":8080"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 640.0, cfg.Width)
	assert.Equal(t, 480.0, cfg.Height)
	assert.Equal(t, 10*time.Millisecond, cfg.TickPeriod)
	assert.Equal(t, 2.5, cfg.OpponentSpeed)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultConfig().PaddleHeight, cfg.PaddleHeight)
	assert.Equal(t, DefaultConfig().ReferenceStep, cfg.ReferenceStep)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("width = -5.0\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	nonFinite := filepath.Join(dir, "nan.toml")
	require.NoError(t, os.WriteFile(nonFinite, []byte("height = nan\nball_speed_x = inf\n"), 0o644))
	_, err = LoadConfig(nonFinite)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
