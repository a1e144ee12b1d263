// Package config holds the plain, read-only configuration value the engine
// and server are constructed from. Loading it from disk is a thin external
// concern (see LoadYAML) kept out of the core engine package entirely.
package config

import (
	"fmt"
	"time"
)

// Config is a flat struct of tunables, built once and handed around
// read-only.
type Config struct {
	// Grid & players
	GridWidth  int32 `yaml:"gridWidth"`
	GridHeight int32 `yaml:"gridHeight"`
	MaxClients int   `yaml:"maxClients"`

	// Pacing
	TargetFrameTime time.Duration `yaml:"targetFrameTime"`
	CommBudget      time.Duration `yaml:"commBudget"`

	// Trail growth
	InitialMaxTrailLength int `yaml:"initialMaxTrailLength"`
	TrailGrowthEveryTicks int `yaml:"trailGrowthEveryTicks"`

	// Accept loop
	AcceptBackoff time.Duration `yaml:"acceptBackoff"`
	ListenBacklog int           `yaml:"listenBacklog"`
}

// DefaultConfig returns the values the engine documents explicitly:
// 55-cell starting trail growing by 1 every 100 frames, 100ms comm budget,
// ~30fps pacing (33ms), 16-connection backlog, 10ms accept back-off.
func DefaultConfig() Config {
	return Config{
		GridWidth:             64,
		GridHeight:            64,
		MaxClients:            16,
		TargetFrameTime:       33 * time.Millisecond,
		CommBudget:            100 * time.Millisecond,
		InitialMaxTrailLength: 55,
		TrailGrowthEveryTicks: 100,
		AcceptBackoff:         10 * time.Millisecond,
		ListenBacklog:         16,
	}
}

// Validate enforces the configuration invariants: non-positive dimensions
// or max_clients > 255 are rejected at construction rather than discovered
// later.
func (c Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return fmt.Errorf("config: grid dimensions must be positive, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if int64(c.GridWidth)*int64(c.GridHeight) > 1<<31 {
		return fmt.Errorf("config: grid_width * grid_height must be <= 2^31")
	}
	if c.MaxClients <= 0 || c.MaxClients > 255 {
		return fmt.Errorf("config: max_clients must be in [1, 255], got %d", c.MaxClients)
	}
	return nil
}
